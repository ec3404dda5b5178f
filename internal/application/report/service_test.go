package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/production"
	domainreport "github.com/Zxyilyy/cooked/internal/domain/report"
	"github.com/Zxyilyy/cooked/internal/domain/sales"
	"github.com/Zxyilyy/cooked/internal/infrastructure/config"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
)

func setupService(t *testing.T, fill func(*ledger.State)) *Service {
	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	docs := persistence.NewDocumentStore(db, zap.NewNop())
	store := persistence.NewStore(docs, &config.LedgerConfig{ActiveCycle: "2026-02-13"}, zap.NewNop())
	require.NoError(t, store.Load(context.Background()))

	if fill != nil {
		require.NoError(t, store.Update(context.Background(), func(state *ledger.State) error {
			fill(state)
			return nil
		}))
	}
	return NewService(store, zap.NewNop())
}

func saleOn(day time.Time, cost, price, quantity int64) *sales.Record {
	return &sales.Record{
		ID: "sr_" + day.Format("0102") + "_" + time.Now().Format("150405.000000000"),
		Date: day, Name: "原味巴斯克 (6寸)",
		Cost: decimal.NewFromInt(cost), Price: decimal.NewFromInt(price), Quantity: decimal.NewFromInt(quantity),
	}
}

func runOn(day time.Time, product, size string, cutCount int) *production.LogEntry {
	unit := production.UnitWhole
	qty := decimal.NewFromInt(1)
	slices := 1
	if cutCount > 0 {
		unit = production.UnitSlice
		qty = decimal.NewFromInt(int64(cutCount))
		slices = cutCount
	}
	return &production.LogEntry{
		ID: "pl_" + day.Format("0102150405.000000000"), Timestamp: day,
		ProductName: product, Size: size, SlicesPerWhole: slices,
		TotalCost: decimal.NewFromInt(40), ProducedQty: qty, ProducedUnit: unit,
	}
}

func TestServiceSummary(t *testing.T) {
	ctx := context.Background()
	friday := time.Date(2026, 2, 13, 12, 0, 0, 0, time.Local)
	monday := time.Date(2026, 2, 9, 9, 0, 0, 0, time.Local)
	prevSunday := time.Date(2026, 2, 8, 22, 0, 0, 0, time.Local)

	svc := setupService(t, func(state *ledger.State) {
		state.SalesRecords = []*sales.Record{
			saleOn(friday, 30, 60, 1),
			saleOn(monday, 30, 50, 2),
			saleOn(prevSunday, 30, 60, 1),
		}
		state.ProductionLogs = []*production.LogEntry{
			runOn(friday, "原味巴斯克", "6寸", 0),
			runOn(friday, "原味巴斯克", "6寸", 5),
			runOn(prevSunday, "抹茶巴斯克", "6寸", 0),
		}
	})

	t.Run("day totals", func(t *testing.T) {
		summary, err := svc.Summary(ctx, domainreport.PeriodDay, friday)
		require.NoError(t, err)

		assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(60)))
		assert.True(t, summary.Cost.Equal(decimal.NewFromInt(30)))
		assert.True(t, summary.Profit.Equal(decimal.NewFromInt(30)))
		assert.Len(t, summary.Sales, 1)
		assert.Equal(t, 2, summary.RunCount)
	})

	t.Run("week spans monday through sunday", func(t *testing.T) {
		summary, err := svc.Summary(ctx, domainreport.PeriodWeek, friday)
		require.NoError(t, err)

		// friday + monday in, previous sunday out
		assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(160)))
		assert.Len(t, summary.Sales, 2)
	})

	t.Run("production groups by product and size", func(t *testing.T) {
		summary, err := svc.Summary(ctx, domainreport.PeriodDay, friday)
		require.NoError(t, err)

		require.Len(t, summary.Production, 1)
		g := summary.Production[0]
		assert.Equal(t, "原味巴斯克", g.Product)
		assert.True(t, g.Whole.Equal(decimal.NewFromInt(1)))
		assert.True(t, g.Slices.Equal(decimal.NewFromInt(5)))
		// 1 whole + 5 slices / 5 per whole
		assert.True(t, g.Equivalent.Equal(decimal.NewFromInt(2)))
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := svc.Summary(ctx, domainreport.PeriodType("quarter"), friday)
		assert.Error(t, err)
	})
}

func TestServiceProductionByDay(t *testing.T) {
	first := time.Date(2026, 2, 12, 9, 0, 0, 0, time.Local)
	second := time.Date(2026, 2, 13, 9, 0, 0, 0, time.Local)

	svc := setupService(t, func(state *ledger.State) {
		state.ProductionLogs = []*production.LogEntry{
			runOn(second, "原味巴斯克", "6寸", 0),
			runOn(first, "抹茶巴斯克", "6寸", 0),
		}
	})

	days := svc.ProductionByDay(context.Background())
	require.Len(t, days, 2)
	assert.Equal(t, "2026-02-13", days[0].Date)
	assert.Equal(t, "2026-02-12", days[1].Date)
	require.Len(t, days[0].Entries, 1)
	assert.Equal(t, "原味巴斯克", days[0].Entries[0].ProductName)
}

func TestServiceProductionByDayGroupsUTCStampsByLocalDay(t *testing.T) {
	// Imported logs keep the UTC zone of their isoDate; day grouping must
	// follow the local calendar day.
	restore := time.Local
	time.Local = time.FixedZone("UTC+8", 8*3600)
	defer func() { time.Local = restore }()

	// 20:00 UTC on 02-13 is 04:00 local on 02-14
	lateUTC := time.Date(2026, 2, 13, 20, 0, 0, 0, time.UTC)
	sameLocalDay := time.Date(2026, 2, 14, 9, 0, 0, 0, time.Local)

	svc := setupService(t, func(state *ledger.State) {
		state.ProductionLogs = []*production.LogEntry{
			runOn(sameLocalDay, "原味巴斯克", "6寸", 0),
			runOn(lateUTC, "抹茶巴斯克", "6寸", 0),
		}
	})

	days := svc.ProductionByDay(context.Background())
	require.Len(t, days, 1)
	assert.Equal(t, "2026-02-14", days[0].Date)
	assert.Len(t, days[0].Entries, 2)
}
