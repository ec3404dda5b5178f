package production

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/production"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
)

// Service runs the production workflow: a single transient recipe being
// authored, the produce operation that turns it into a finished good, and
// exact reversal of past runs.
type Service struct {
	store  *persistence.Store
	logger *zap.Logger
	now    func() time.Time

	// recipeMu guards the transient recipe; it is separate from the store
	// lock because recipe edits never touch persisted state.
	recipeMu sync.Mutex
	recipe   *production.Recipe
}

// NewService creates the production service
func NewService(store *persistence.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		recipe: &production.Recipe{},
	}
}

// Recipe returns a copy of the recipe being authored
func (s *Service) Recipe(ctx context.Context) *production.Recipe {
	s.recipeMu.Lock()
	defer s.recipeMu.Unlock()
	return s.recipe.Clone()
}

// AddRecipeLine adds the named aggregated material to the recipe with its
// current weighted-average price. Adding a material twice is a no-op.
func (s *Service) AddRecipeLine(ctx context.Context, materialName string) (*production.Recipe, error) {
	materials := inventory.AggregateMaterials(s.store.Snapshot().Batches)
	m, ok := inventory.FindMaterial(materials, materialName)
	if !ok {
		return nil, shared.NewNotFoundError("material not found: " + materialName)
	}

	s.recipeMu.Lock()
	defer s.recipeMu.Unlock()
	s.recipe.AddLine(m)
	return s.recipe.Clone(), nil
}

// SetRecipeQuantity updates the consumed quantity of a recipe line
func (s *Service) SetRecipeQuantity(ctx context.Context, lineID string, quantity decimal.Decimal) (*production.Recipe, error) {
	if quantity.IsNegative() {
		return nil, shared.ErrInvalidInput
	}
	s.recipeMu.Lock()
	defer s.recipeMu.Unlock()
	if !s.recipe.SetQuantity(lineID, quantity) {
		return nil, shared.NewNotFoundError("recipe line not found: " + lineID)
	}
	return s.recipe.Clone(), nil
}

// RemoveRecipeLine deletes a line from the recipe
func (s *Service) RemoveRecipeLine(ctx context.Context, lineID string) (*production.Recipe, error) {
	s.recipeMu.Lock()
	defer s.recipeMu.Unlock()
	if !s.recipe.RemoveLine(lineID) {
		return nil, shared.NewNotFoundError("recipe line not found: " + lineID)
	}
	return s.recipe.Clone(), nil
}

// ClearRecipe drops every line of the recipe
func (s *Service) ClearRecipe(ctx context.Context) {
	s.recipeMu.Lock()
	defer s.recipeMu.Unlock()
	s.recipe.Clear()
}

// ProduceInput names the product of a run. CutCount zero means the run
// yields one whole unit; a positive CutCount yields that many slices.
type ProduceInput struct {
	Product  string
	Size     string
	CutCount int
}

// ProduceResult reports a completed run
type ProduceResult struct {
	Log  *production.LogEntry     `json:"log"`
	Good *production.FinishedGood `json:"finishedGood"`
}

// Produce executes the current recipe: validates availability of every line,
// deducts batches in collection order, books the yield into finished goods
// at weighted-average cost, and appends the audit log entry. On success the
// recipe is cleared. On any failure nothing changes, including the recipe.
func (s *Service) Produce(ctx context.Context, input ProduceInput) (*ProduceResult, error) {
	if strings.TrimSpace(input.Product) == "" || input.CutCount < 0 {
		return nil, shared.ErrInvalidInput
	}

	s.recipeMu.Lock()
	defer s.recipeMu.Unlock()
	if s.recipe.IsEmpty() {
		return nil, shared.ErrEmptyRecipe
	}
	recipe := s.recipe.Clone()

	goodName := production.CompositeName(input.Product, input.Size, input.CutCount)
	unit := production.UnitWhole
	quantity := decimal.NewFromInt(1)
	if input.CutCount > 0 {
		unit = production.UnitSlice
		quantity = decimal.NewFromInt(int64(input.CutCount))
	}
	totalCost := recipe.TotalCost()

	result := &ProduceResult{}
	err := s.store.Update(ctx, func(state *ledger.State) error {
		if err := production.ValidateAvailability(recipe, state.Batches); err != nil {
			return err
		}
		deductions := production.AllocateDeductions(recipe, state.Batches)

		good := state.FindFinishedGoodByKey(goodName, unit)
		if good != nil {
			good.MergeRun(quantity, totalCost)
		} else {
			good = production.NewFinishedGood(goodName, unit, quantity, totalCost)
			state.FinishedGoods = append(state.FinishedGoods, good)
		}

		entry := production.NewLogEntry(s.now(), input.Product, input.Size, input.CutCount, totalCost, deductions, quantity, unit)
		state.PrependProductionLog(entry)

		result.Log = entry
		result.Good = good.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recipe.Clear()
	s.logger.Info("production run completed",
		zap.String("log_id", result.Log.ID),
		zap.String("good", goodName),
		zap.String("quantity", quantity.String()),
		zap.String("total_cost", totalCost.String()))
	return result, nil
}

// Reverse undoes a past run: every recorded deduction is restored to its
// batch, the finished-good quantity is decremented (unit cost stays at the
// merged average; reversal is lossy there), and the log entry is removed.
// Deleted batches are skipped. Reversing an unknown log id is a no-op.
func (s *Service) Reverse(ctx context.Context, logID string) error {
	return s.store.Update(ctx, func(state *ledger.State) error {
		entry := state.FindProductionLog(logID)
		if entry == nil {
			return nil
		}

		for _, d := range entry.Deductions {
			batch := state.FindBatch(d.BatchID)
			if batch == nil {
				s.logger.Warn("reversal skipped a deleted batch",
					zap.String("log_id", logID),
					zap.String("batch_id", d.BatchID),
					zap.String("amount", d.Amount.String()))
				continue
			}
			batch.Restore(d.Amount)
		}

		if good := state.FindFinishedGoodByKey(entry.GoodName(), entry.ProducedUnit); good != nil {
			good.Decrement(entry.ProducedQty)
		}
		state.PruneFinishedGoods()
		state.RemoveProductionLog(logID)
		return nil
	})
}
