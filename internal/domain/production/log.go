package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LogEntry is the immutable audit record of one production run. It exists to
// support exact reversal: the deduction list holds precisely what was taken
// from which batch, in application order.
type LogEntry struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"isoDate"`
	ProductName    string          `json:"productName"`
	Size           string          `json:"size"`
	SlicesPerWhole int             `json:"slicesPerWhole"` // 1 when sold whole
	TotalCost      decimal.Decimal `json:"totalCost"`
	Deductions     []Deduction     `json:"deductions"`
	ProducedQty    decimal.Decimal `json:"producedQuantity"`
	ProducedUnit   string          `json:"producedUnit"`
}

// NewLogEntry records a completed production run
func NewLogEntry(now time.Time, product, size string, cutCount int, totalCost decimal.Decimal, deductions []Deduction, producedQty decimal.Decimal, producedUnit string) *LogEntry {
	slices := cutCount
	if slices == 0 {
		slices = 1
	}
	return &LogEntry{
		ID:             "pl_" + uuid.NewString(),
		Timestamp:      now,
		ProductName:    product,
		Size:           size,
		SlicesPerWhole: slices,
		TotalCost:      totalCost,
		Deductions:     deductions,
		ProducedQty:    producedQty,
		ProducedUnit:   producedUnit,
	}
}

// GoodName rebuilds the composite finished-good name this run produced
func (e *LogEntry) GoodName() string {
	if e.ProducedUnit == UnitWhole {
		return CompositeName(e.ProductName, e.Size, 0)
	}
	return CompositeName(e.ProductName, e.Size, e.SlicesPerWhole)
}

// Clone returns a deep copy of the log entry
func (e *LogEntry) Clone() *LogEntry {
	c := *e
	if e.Deductions != nil {
		c.Deductions = make([]Deduction, len(e.Deductions))
		copy(c.Deductions, e.Deductions)
	}
	return &c
}
