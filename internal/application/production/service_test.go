package production

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/production"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/Zxyilyy/cooked/internal/infrastructure/config"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
)

func setupService(t *testing.T, batches ...*inventory.Batch) *Service {
	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	docs := persistence.NewDocumentStore(db, zap.NewNop())
	store := persistence.NewStore(docs, &config.LedgerConfig{ActiveCycle: "2026-02-13"}, zap.NewNop())
	require.NoError(t, store.Load(context.Background()))

	if len(batches) > 0 {
		require.NoError(t, store.Update(context.Background(), func(state *ledger.State) error {
			state.Batches = batches
			return nil
		}))
	}

	svc := NewService(store, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 2, 13, 10, 0, 0, 0, time.Local) }
	return svc
}

func sugarBatch(id string, stock float64) *inventory.Batch {
	return &inventory.Batch{
		ID:           id,
		Name:         "细砂糖(2.5kg)",
		Type:         inventory.ItemTypeIngredient,
		Unit:         "g",
		Quantity:     decimal.NewFromInt(2500),
		Price:        decimal.NewFromInt(25),
		Count:        decimal.NewFromInt(1),
		BatchLabel:   "2026-02-13",
		CurrentStock: decimal.NewFromFloat(stock),
	}
}

func addLineWithQuantity(t *testing.T, svc *Service, material string, quantity int64) {
	recipe, err := svc.AddRecipeLine(context.Background(), material)
	require.NoError(t, err)
	line := recipe.Lines[len(recipe.Lines)-1]
	_, err = svc.SetRecipeQuantity(context.Background(), line.ID, decimal.NewFromInt(quantity))
	require.NoError(t, err)
}

func TestServiceRecipeAuthoring(t *testing.T) {
	svc := setupService(t, sugarBatch("a", 1000))
	ctx := context.Background()

	t.Run("add line snapshots the average price", func(t *testing.T) {
		recipe, err := svc.AddRecipeLine(ctx, "细砂糖")
		require.NoError(t, err)
		require.Len(t, recipe.Lines, 1)
		assert.True(t, recipe.Lines[0].UnitPrice.Equal(decimal.NewFromFloat(0.01)))
	})

	t.Run("unknown material", func(t *testing.T) {
		_, err := svc.AddRecipeLine(ctx, "松露")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		recipe := svc.Recipe(ctx)
		_, err := svc.SetRecipeQuantity(ctx, recipe.Lines[0].ID, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("clear empties the recipe", func(t *testing.T) {
		svc.ClearRecipe(ctx)
		assert.True(t, svc.Recipe(ctx).IsEmpty())
	})
}

func TestServiceProduce(t *testing.T) {
	ctx := context.Background()

	t.Run("whole run deducts stock and books the finished good", func(t *testing.T) {
		svc := setupService(t, sugarBatch("new", 300), sugarBatch("old", 200))
		addLineWithQuantity(t, svc, "细砂糖", 400)

		result, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸", CutCount: 0})
		require.NoError(t, err)

		assert.Equal(t, "原味巴斯克 (6寸)", result.Good.Name)
		assert.Equal(t, production.UnitWhole, result.Good.Unit)
		assert.True(t, result.Good.Quantity.Equal(decimal.NewFromInt(1)))
		// 400g at 0.01/g
		assert.True(t, result.Good.UnitCost.Equal(decimal.NewFromInt(4)))

		state := svc.store.Snapshot()
		assert.True(t, state.FindBatch("new").CurrentStock.IsZero())
		assert.True(t, state.FindBatch("old").CurrentStock.Equal(decimal.NewFromInt(100)))
		require.Len(t, state.ProductionLogs, 1)
		require.Len(t, state.ProductionLogs[0].Deductions, 2)
		assert.Equal(t, "new", state.ProductionLogs[0].Deductions[0].BatchID)

		assert.True(t, svc.Recipe(ctx).IsEmpty())
	})

	t.Run("sliced run yields cut-count slices", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 1000))
		addLineWithQuantity(t, svc, "细砂糖", 500)

		result, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸", CutCount: 5})
		require.NoError(t, err)

		assert.Equal(t, "原味巴斯克 (6寸/5切)", result.Good.Name)
		assert.Equal(t, production.UnitSlice, result.Good.Unit)
		assert.True(t, result.Good.Quantity.Equal(decimal.NewFromInt(5)))
		// 500g at 0.01/g over 5 slices
		assert.True(t, result.Good.UnitCost.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, 5, result.Log.SlicesPerWhole)
	})

	t.Run("repeat run merges into the existing good at weighted cost", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 2000))

		addLineWithQuantity(t, svc, "细砂糖", 400)
		_, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		require.NoError(t, err)

		addLineWithQuantity(t, svc, "细砂糖", 600)
		result, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		require.NoError(t, err)

		assert.True(t, result.Good.Quantity.Equal(decimal.NewFromInt(2)))
		// (1*4 + 6) / 2
		assert.True(t, result.Good.UnitCost.Equal(decimal.NewFromInt(5)))

		state := svc.store.Snapshot()
		assert.Len(t, state.FinishedGoods, 1)
		assert.Len(t, state.ProductionLogs, 2)
	})

	t.Run("empty recipe", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 1000))

		_, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_RECIPE", domainErr.Code)
	})

	t.Run("insufficient stock leaves everything untouched", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 1000))
		addLineWithQuantity(t, svc, "细砂糖", 1500)

		_, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)

		state := svc.store.Snapshot()
		assert.True(t, state.FindBatch("a").CurrentStock.Equal(decimal.NewFromInt(1000)))
		assert.Empty(t, state.FinishedGoods)
		assert.Empty(t, state.ProductionLogs)

		// the recipe survives a failed run
		assert.False(t, svc.Recipe(ctx).IsEmpty())
	})
}

func TestServiceReverse(t *testing.T) {
	ctx := context.Background()

	t.Run("restores deducted stock and removes the run", func(t *testing.T) {
		svc := setupService(t, sugarBatch("new", 300), sugarBatch("old", 200))
		addLineWithQuantity(t, svc, "细砂糖", 400)

		result, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		require.NoError(t, err)

		require.NoError(t, svc.Reverse(ctx, result.Log.ID))

		state := svc.store.Snapshot()
		assert.True(t, state.FindBatch("new").CurrentStock.Equal(decimal.NewFromInt(300)))
		assert.True(t, state.FindBatch("old").CurrentStock.Equal(decimal.NewFromInt(200)))
		assert.Empty(t, state.ProductionLogs)
		// the good reached zero and was pruned
		assert.Empty(t, state.FinishedGoods)
	})

	t.Run("unknown log id is a no-op", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 1000))
		assert.NoError(t, svc.Reverse(ctx, "pl_missing"))
	})

	t.Run("skips batches deleted since the run", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 300), sugarBatch("b", 200))
		addLineWithQuantity(t, svc, "细砂糖", 400)

		result, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		require.NoError(t, err)

		require.NoError(t, svc.store.Update(ctx, func(state *ledger.State) error {
			state.RemoveBatch("a")
			return nil
		}))

		require.NoError(t, svc.Reverse(ctx, result.Log.ID))

		state := svc.store.Snapshot()
		assert.Nil(t, state.FindBatch("a"))
		// b got its 100 back
		assert.True(t, state.FindBatch("b").CurrentStock.Equal(decimal.NewFromInt(200)))
		assert.Empty(t, state.ProductionLogs)
	})

	t.Run("partial reversal keeps remaining quantity", func(t *testing.T) {
		svc := setupService(t, sugarBatch("a", 2000))

		addLineWithQuantity(t, svc, "细砂糖", 400)
		first, err := svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		require.NoError(t, err)

		addLineWithQuantity(t, svc, "细砂糖", 600)
		_, err = svc.Produce(ctx, ProduceInput{Product: "原味巴斯克", Size: "6寸"})
		require.NoError(t, err)

		require.NoError(t, svc.Reverse(ctx, first.Log.ID))

		state := svc.store.Snapshot()
		require.Len(t, state.FinishedGoods, 1)
		assert.True(t, state.FinishedGoods[0].Quantity.Equal(decimal.NewFromInt(1)))
		// the merged average cost is not reconstructed
		assert.True(t, state.FinishedGoods[0].UnitCost.Equal(decimal.NewFromInt(5)))
	})
}
