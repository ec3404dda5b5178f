package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/Zxyilyy/cooked/internal/infrastructure/config"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
)

// Service handles raw-material and asset bookkeeping: batch receipts,
// manual stock corrections, the aggregated material view, and the derived
// capital summary.
type Service struct {
	store        *persistence.Store
	logger       *zap.Logger
	miscExpenses decimal.Decimal
	activeCycle  string
	now          func() time.Time
}

// NewService creates the inventory service
func NewService(store *persistence.Store, cfg *config.LedgerConfig, logger *zap.Logger) *Service {
	return &Service{
		store:        store,
		logger:       logger,
		miscExpenses: decimal.NewFromFloat(cfg.MiscExpenses),
		activeCycle:  cfg.ActiveCycle,
		now:          time.Now,
	}
}

// ReceiveStockInput describes one purchased lot being booked in
type ReceiveStockInput struct {
	Name     string
	Type     string
	Unit     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Count    decimal.Decimal
	// Date labels the batch; empty means today
	Date string
}

// ListBatches returns every batch in collection order
func (s *Service) ListBatches(ctx context.Context) []*inventory.Batch {
	return s.store.Snapshot().Batches
}

// ReceiveStock books a purchased lot into the ledger. The new batch is
// prepended, so it is consumed before older batches of the same material.
func (s *Service) ReceiveStock(ctx context.Context, input ReceiveStockInput) (*inventory.Batch, error) {
	itemType := inventory.ItemType(input.Type)
	if strings.TrimSpace(input.Name) == "" || !itemType.IsValid() {
		return nil, shared.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) || !input.Count.GreaterThan(decimal.Zero) {
		return nil, shared.ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return nil, shared.ErrInvalidInput
	}

	date := input.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	batch := inventory.NewBatch(input.Name, itemType, input.Unit, input.Quantity, input.Price, input.Count, date)
	err := s.store.Update(ctx, func(state *ledger.State) error {
		state.PrependBatch(batch)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock received",
		zap.String("batch_id", batch.ID),
		zap.String("name", batch.Name),
		zap.String("stock", batch.CurrentStock.String()))
	return batch, nil
}

// SetStock overwrites a batch's remaining stock (manual correction)
func (s *Service) SetStock(ctx context.Context, batchID string, stock decimal.Decimal) (*inventory.Batch, error) {
	var updated *inventory.Batch
	err := s.store.Update(ctx, func(state *ledger.State) error {
		batch := state.FindBatch(batchID)
		if batch == nil {
			return shared.NewNotFoundError("batch not found: " + batchID)
		}
		batch.SetStock(stock)
		updated = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBatch removes a batch from the ledger. Production logs referencing
// it stay untouched; a later reversal simply skips the missing batch.
func (s *Service) DeleteBatch(ctx context.Context, batchID string) error {
	return s.store.Update(ctx, func(state *ledger.State) error {
		if !state.RemoveBatch(batchID) {
			return shared.NewNotFoundError("batch not found: " + batchID)
		}
		return nil
	})
}

// Materials returns the aggregated material view, optionally filtered by a
// case-insensitive substring of the material name.
func (s *Service) Materials(ctx context.Context, search string) []inventory.Material {
	materials := inventory.AggregateMaterials(s.store.Snapshot().Batches)
	if search == "" {
		return materials
	}
	query := inventory.NormalizeName(search)
	filtered := make([]inventory.Material, 0, len(materials))
	for _, m := range materials {
		if strings.Contains(m.SearchKey, query) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Financials returns the derived capital summary
func (s *Service) Financials(ctx context.Context) inventory.Financials {
	return inventory.ComputeFinancials(s.store.Snapshot().Batches, s.miscExpenses, s.activeCycle)
}
