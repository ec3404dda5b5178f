package transfer

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence/models"
)

// Backup is the export-file format. The four collections use the same JSON
// shapes as the stored documents, so a backup can be re-imported as-is.
type Backup struct {
	AllInventory   []models.BatchDocument         `json:"allInventory"`
	SalesRecords   []models.SalesRecordDocument   `json:"salesRecords"`
	ProductionLogs []models.ProductionLogDocument `json:"productionLogs"`
	FinishedGoods  []models.FinishedGoodDocument  `json:"finishedGoods"`
	ExportDate     time.Time                      `json:"exportDate"`
}

// importPayload mirrors Backup with optional fields: absent collections are
// left untouched on import.
type importPayload struct {
	AllInventory   *[]models.BatchDocument         `json:"allInventory"`
	SalesRecords   *[]models.SalesRecordDocument   `json:"salesRecords"`
	ProductionLogs *[]models.ProductionLogDocument `json:"productionLogs"`
	FinishedGoods  *[]models.FinishedGoodDocument  `json:"finishedGoods"`
}

// Service exports and imports full ledger backups
type Service struct {
	store  *persistence.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the transfer service
func NewService(store *persistence.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// Export captures the full ledger as a backup document
func (s *Service) Export(ctx context.Context) *Backup {
	state := s.store.Snapshot()
	doc := models.StateFromDomain(state)
	return &Backup{
		AllInventory:   doc.Batches,
		SalesRecords:   doc.SalesRecords,
		ProductionLogs: doc.ProductionLogs,
		FinishedGoods:  doc.FinishedGoods,
		ExportDate:     s.now(),
	}
}

// Import replaces ledger collections from a backup payload. Each of the
// four collections is replaced only when present in the payload; the others
// keep their current content. The whole import applies atomically.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var payload importPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Warn("rejected malformed import payload", zap.Error(err))
		return shared.ErrImportParse
	}

	err := s.store.Update(ctx, func(state *ledger.State) error {
		if payload.AllInventory != nil {
			state.Batches = models.BatchesToDomain(*payload.AllInventory)
		}
		if payload.SalesRecords != nil {
			state.SalesRecords = models.SalesRecordsToDomain(*payload.SalesRecords)
		}
		if payload.ProductionLogs != nil {
			state.ProductionLogs = models.ProductionLogsToDomain(*payload.ProductionLogs)
		}
		if payload.FinishedGoods != nil {
			state.FinishedGoods = models.FinishedGoodsToDomain(*payload.FinishedGoods)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("ledger imported",
		zap.Bool("inventory", payload.AllInventory != nil),
		zap.Bool("sales", payload.SalesRecords != nil),
		zap.Bool("production_logs", payload.ProductionLogs != nil),
		zap.Bool("finished_goods", payload.FinishedGoods != nil))
	return nil
}
