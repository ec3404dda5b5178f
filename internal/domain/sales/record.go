package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscardMarker is appended to the product name of discard records
const DiscardMarker = " (报废)"

// Record is an immutable sale or discard of a finished good. Discards carry
// a zero price and the disposal marker on the name. Records are deletable
// independently of inventory: deletion is a financial correction only.
type Record struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Name string    `json:"name"`
	// Cost is the finished good's weighted-average unit cost at disposition
	// time; Price is zero for discards.
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// NewSale records a sale at the given unit price
func NewSale(date time.Time, name string, unitCost, unitPrice, quantity decimal.Decimal) *Record {
	return &Record{
		ID:       "sr_" + uuid.NewString(),
		Date:     date,
		Name:     name,
		Cost:     unitCost,
		Price:    unitPrice,
		Quantity: quantity,
	}
}

// NewDiscard records a disposal: zero price, marked name
func NewDiscard(date time.Time, name string, unitCost, quantity decimal.Decimal) *Record {
	return &Record{
		ID:       "sr_" + uuid.NewString(),
		Date:     date,
		Name:     name + DiscardMarker,
		Cost:     unitCost,
		Price:    decimal.Zero,
		Quantity: quantity,
	}
}

// Revenue returns price*quantity
func (r *Record) Revenue() decimal.Decimal {
	return r.Price.Mul(r.Quantity)
}

// CostTotal returns cost*quantity
func (r *Record) CostTotal() decimal.Decimal {
	return r.Cost.Mul(r.Quantity)
}

// Profit returns (price-cost)*quantity
func (r *Record) Profit() decimal.Decimal {
	return r.Price.Sub(r.Cost).Mul(r.Quantity)
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	c := *r
	return &c
}
