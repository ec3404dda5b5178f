package disposition

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/production"
	"github.com/Zxyilyy/cooked/internal/domain/sales"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
)

// Service disposes of finished goods: selling at a price or discarding as
// loss. Both paths decrement the good, prune it at zero, and book an
// immutable sales record carrying the good's average unit cost.
type Service struct {
	store  *persistence.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the disposition service
func NewService(store *persistence.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// Sell books a sale of the finished good at the given unit price
func (s *Service) Sell(ctx context.Context, goodID string, quantity, unitPrice decimal.Decimal) (*sales.Record, error) {
	if unitPrice.IsNegative() {
		return nil, shared.ErrInvalidInput
	}
	return s.dispose(ctx, goodID, quantity, func(name string, unitCost decimal.Decimal) *sales.Record {
		return sales.NewSale(s.now(), name, unitCost, unitPrice, quantity)
	})
}

// Discard books a disposal: the quantity is written off at zero price and
// the record's name carries the disposal marker.
func (s *Service) Discard(ctx context.Context, goodID string, quantity decimal.Decimal) (*sales.Record, error) {
	return s.dispose(ctx, goodID, quantity, func(name string, unitCost decimal.Decimal) *sales.Record {
		return sales.NewDiscard(s.now(), name, unitCost, quantity)
	})
}

func (s *Service) dispose(ctx context.Context, goodID string, quantity decimal.Decimal, makeRecord func(name string, unitCost decimal.Decimal) *sales.Record) (*sales.Record, error) {
	var record *sales.Record
	err := s.store.Update(ctx, func(state *ledger.State) error {
		good := state.FindFinishedGood(goodID)
		if good == nil {
			return shared.NewNotFoundError("finished good not found: " + goodID)
		}
		if !quantity.GreaterThan(decimal.Zero) || quantity.GreaterThan(good.Quantity) {
			return shared.ErrInvalidQuantity
		}

		record = makeRecord(good.Name, good.UnitCost)
		good.Decrement(quantity)
		state.PruneFinishedGoods()
		state.PrependSalesRecord(record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("finished good disposed",
		zap.String("record_id", record.ID),
		zap.String("name", record.Name),
		zap.String("quantity", record.Quantity.String()),
		zap.String("revenue", record.Revenue().String()))
	return record, nil
}

// ListGoods returns the finished goods currently on hand
func (s *Service) ListGoods(ctx context.Context) []*production.FinishedGood {
	return s.store.Snapshot().FinishedGoods
}

// ListRecords returns all sales records, newest first
func (s *Service) ListRecords(ctx context.Context) []*sales.Record {
	return s.store.Snapshot().SalesRecords
}

// DeleteRecord removes a sales record. This is a financial correction only:
// finished-good stock is not restored.
func (s *Service) DeleteRecord(ctx context.Context, recordID string) error {
	return s.store.Update(ctx, func(state *ledger.State) error {
		if !state.RemoveSalesRecord(recordID) {
			return shared.NewNotFoundError("sales record not found: " + recordID)
		}
		return nil
	})
}
