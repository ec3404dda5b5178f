package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/production"
	"github.com/Zxyilyy/cooked/internal/domain/report"
	"github.com/Zxyilyy/cooked/internal/domain/sales"
	"github.com/Zxyilyy/cooked/internal/domain/shared"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
)

// legacyEquivalentDivisor is used when an old log entry carries no
// slices-per-whole value.
const legacyEquivalentDivisor = 5

// Service derives period-filtered financial and production summaries from
// the ledger. Everything here is read-only.
type Service struct {
	store  *persistence.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the reporting service
func NewService(store *persistence.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// ProductionGroup aggregates runs of one product and size inside the period
type ProductionGroup struct {
	Product string `json:"product"`
	Size    string `json:"size"`
	// Whole counts units produced whole; Slices counts slice yields;
	// Equivalent expresses both as whole units.
	Whole      decimal.Decimal `json:"whole"`
	Slices     decimal.Decimal `json:"slices"`
	Equivalent decimal.Decimal `json:"equivalent"`
}

// Summary is the period-filtered report
type Summary struct {
	Period    report.PeriodType `json:"period"`
	Reference time.Time         `json:"reference"`

	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
	// RunCount is the number of production runs inside the period
	RunCount int `json:"runCount"`

	Production []ProductionGroup `json:"production"`
	// Sales lists the period's records, newest first
	Sales []*sales.Record `json:"sales"`
}

// DayLogs groups production log entries by calendar day
type DayLogs struct {
	Date    string                 `json:"date"`
	Entries []*production.LogEntry `json:"entries"`
}

// Summary builds the report for the period anchored at reference. A zero
// reference anchors at the current time.
func (s *Service) Summary(ctx context.Context, periodType report.PeriodType, reference time.Time) (*Summary, error) {
	if !periodType.IsValid() {
		return nil, shared.ErrInvalidInput
	}
	if reference.IsZero() {
		reference = s.now()
	}
	period := report.Period{Type: periodType, Reference: reference}
	state := s.store.Snapshot()

	summary := &Summary{
		Period:     periodType,
		Reference:  reference,
		Production: []ProductionGroup{},
		Sales:      []*sales.Record{},
	}

	type groupKey struct{ product, size string }
	groups := make(map[groupKey]*ProductionGroup)
	order := make([]groupKey, 0)

	for _, entry := range state.ProductionLogs {
		if !period.Contains(entry.Timestamp) {
			continue
		}
		summary.RunCount++

		size := entry.Size
		if size == "" {
			size = "未知"
		}
		key := groupKey{entry.ProductName, size}
		g, ok := groups[key]
		if !ok {
			g = &ProductionGroup{Product: entry.ProductName, Size: size}
			groups[key] = g
			order = append(order, key)
		}
		if entry.ProducedUnit == production.UnitWhole {
			g.Whole = g.Whole.Add(entry.ProducedQty)
			g.Equivalent = g.Equivalent.Add(entry.ProducedQty)
		} else {
			divisor := entry.SlicesPerWhole
			if divisor == 0 {
				divisor = legacyEquivalentDivisor
			}
			g.Slices = g.Slices.Add(entry.ProducedQty)
			g.Equivalent = g.Equivalent.Add(entry.ProducedQty.Div(decimal.NewFromInt(int64(divisor))))
		}
	}
	for _, key := range order {
		summary.Production = append(summary.Production, *groups[key])
	}

	for _, r := range state.SalesRecords {
		if !period.Contains(r.Date) {
			continue
		}
		summary.Revenue = summary.Revenue.Add(r.Revenue())
		summary.Cost = summary.Cost.Add(r.CostTotal())
		summary.Profit = summary.Profit.Add(r.Profit())
		summary.Sales = append(summary.Sales, r)
	}

	return summary, nil
}

// ProductionByDay groups every production log entry by local calendar day,
// newest day first. Entries inside a day keep newest-first order.
func (s *Service) ProductionByDay(ctx context.Context) []DayLogs {
	state := s.store.Snapshot()

	grouped := make(map[string][]*production.LogEntry)
	for _, entry := range state.ProductionLogs {
		day := entry.Timestamp.In(time.Local).Format("2006-01-02")
		grouped[day] = append(grouped[day], entry)
	}

	days := make([]DayLogs, 0, len(grouped))
	for day, entries := range grouped {
		days = append(days, DayLogs{Date: day, Entries: entries})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days
}
