// Package models defines the JSON document shapes of the four persisted
// ledger collections. The same shapes are the backup-file format, so
// unmarshalling tolerates legacy artifacts: numeric ids and day-only dates.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/domain/production"
	"github.com/Zxyilyy/cooked/internal/domain/sales"
)

// FlexibleID accepts both string and numeric ids. Old backups carry
// timestamp numbers where current documents carry prefixed strings.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*f = FlexibleID(n.String())
	return nil
}

// Date marshals as a plain calendar day and unmarshals either a day or a
// full RFC 3339 timestamp.
type Date struct {
	time.Time
}

const dayLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dayLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if t, err := time.ParseInLocation(dayLayout, s, time.Local); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// BatchDocument is the stored form of an inventory batch
type BatchDocument struct {
	ID           FlexibleID      `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Count        decimal.Decimal `json:"count"`
	Batch        string          `json:"batch"`
	CurrentStock decimal.Decimal `json:"currentStock"`
}

// ToDomain converts the document to a domain batch
func (d BatchDocument) ToDomain() *inventory.Batch {
	return &inventory.Batch{
		ID:           string(d.ID),
		Name:         d.Name,
		Type:         inventory.ItemType(d.Type),
		Unit:         d.Unit,
		Quantity:     d.Quantity,
		Price:        d.Price,
		Count:        d.Count,
		BatchLabel:   d.Batch,
		CurrentStock: d.CurrentStock,
	}
}

// BatchFromDomain converts a domain batch to its stored form
func BatchFromDomain(b *inventory.Batch) BatchDocument {
	return BatchDocument{
		ID:           FlexibleID(b.ID),
		Name:         b.Name,
		Type:         b.Type.String(),
		Unit:         b.Unit,
		Quantity:     b.Quantity,
		Price:        b.Price,
		Count:        b.Count,
		Batch:        b.BatchLabel,
		CurrentStock: b.CurrentStock,
	}
}

// FinishedGoodDocument is the stored form of a finished good
type FinishedGoodDocument struct {
	ID       FlexibleID      `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

func (d FinishedGoodDocument) ToDomain() *production.FinishedGood {
	return &production.FinishedGood{
		ID:       string(d.ID),
		Name:     d.Name,
		Unit:     d.Unit,
		Quantity: d.Quantity,
		UnitCost: d.UnitCost,
	}
}

func FinishedGoodFromDomain(g *production.FinishedGood) FinishedGoodDocument {
	return FinishedGoodDocument{
		ID:       FlexibleID(g.ID),
		Name:     g.Name,
		Unit:     g.Unit,
		Quantity: g.Quantity,
		UnitCost: g.UnitCost,
	}
}

// DeductionDocument is one entry of a production log's deduction list
type DeductionDocument struct {
	ItemID FlexibleID      `json:"itemId"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductionLogDocument is the stored form of a production log entry
type ProductionLogDocument struct {
	ID             FlexibleID          `json:"id"`
	ISODate        time.Time           `json:"isoDate"`
	ProductName    string              `json:"productName"`
	Size           string              `json:"size"`
	SlicesPerWhole int                 `json:"slicesPerWhole"`
	TotalCost      decimal.Decimal     `json:"totalCost"`
	Deductions     []DeductionDocument `json:"deductions"`
	ProducedQty    decimal.Decimal     `json:"producedQuantity"`
	ProducedUnit   string              `json:"producedUnit"`
}

func (d ProductionLogDocument) ToDomain() *production.LogEntry {
	deductions := make([]production.Deduction, len(d.Deductions))
	for i, dd := range d.Deductions {
		deductions[i] = production.Deduction{BatchID: string(dd.ItemID), Amount: dd.Amount}
	}
	return &production.LogEntry{
		ID:             string(d.ID),
		Timestamp:      d.ISODate,
		ProductName:    d.ProductName,
		Size:           d.Size,
		SlicesPerWhole: d.SlicesPerWhole,
		TotalCost:      d.TotalCost,
		Deductions:     deductions,
		ProducedQty:    d.ProducedQty,
		ProducedUnit:   d.ProducedUnit,
	}
}

func ProductionLogFromDomain(l *production.LogEntry) ProductionLogDocument {
	deductions := make([]DeductionDocument, len(l.Deductions))
	for i, dd := range l.Deductions {
		deductions[i] = DeductionDocument{ItemID: FlexibleID(dd.BatchID), Amount: dd.Amount}
	}
	return ProductionLogDocument{
		ID:             FlexibleID(l.ID),
		ISODate:        l.Timestamp,
		ProductName:    l.ProductName,
		Size:           l.Size,
		SlicesPerWhole: l.SlicesPerWhole,
		TotalCost:      l.TotalCost,
		Deductions:     deductions,
		ProducedQty:    l.ProducedQty,
		ProducedUnit:   l.ProducedUnit,
	}
}

// SalesRecordDocument is the stored form of a sale or discard record
type SalesRecordDocument struct {
	ID       FlexibleID      `json:"id"`
	Date     Date            `json:"date"`
	Name     string          `json:"name"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (d SalesRecordDocument) ToDomain() *sales.Record {
	return &sales.Record{
		ID:       string(d.ID),
		Date:     d.Date.Time,
		Name:     d.Name,
		Cost:     d.Cost,
		Price:    d.Price,
		Quantity: d.Quantity,
	}
}

func SalesRecordFromDomain(r *sales.Record) SalesRecordDocument {
	return SalesRecordDocument{
		ID:       FlexibleID(r.ID),
		Date:     Date{r.Date},
		Name:     r.Name,
		Cost:     r.Cost,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}

// Collection converters

func BatchesToDomain(docs []BatchDocument) []*inventory.Batch {
	out := make([]*inventory.Batch, len(docs))
	for i, d := range docs {
		out[i] = d.ToDomain()
	}
	return out
}

func BatchesFromDomain(batches []*inventory.Batch) []BatchDocument {
	out := make([]BatchDocument, len(batches))
	for i, b := range batches {
		out[i] = BatchFromDomain(b)
	}
	return out
}

func FinishedGoodsToDomain(docs []FinishedGoodDocument) []*production.FinishedGood {
	out := make([]*production.FinishedGood, len(docs))
	for i, d := range docs {
		out[i] = d.ToDomain()
	}
	return out
}

func FinishedGoodsFromDomain(goods []*production.FinishedGood) []FinishedGoodDocument {
	out := make([]FinishedGoodDocument, len(goods))
	for i, g := range goods {
		out[i] = FinishedGoodFromDomain(g)
	}
	return out
}

func ProductionLogsToDomain(docs []ProductionLogDocument) []*production.LogEntry {
	out := make([]*production.LogEntry, len(docs))
	for i, d := range docs {
		out[i] = d.ToDomain()
	}
	return out
}

func ProductionLogsFromDomain(logs []*production.LogEntry) []ProductionLogDocument {
	out := make([]ProductionLogDocument, len(logs))
	for i, l := range logs {
		out[i] = ProductionLogFromDomain(l)
	}
	return out
}

func SalesRecordsToDomain(docs []SalesRecordDocument) []*sales.Record {
	out := make([]*sales.Record, len(docs))
	for i, d := range docs {
		out[i] = d.ToDomain()
	}
	return out
}

func SalesRecordsFromDomain(records []*sales.Record) []SalesRecordDocument {
	out := make([]SalesRecordDocument, len(records))
	for i, r := range records {
		out[i] = SalesRecordFromDomain(r)
	}
	return out
}

// StateFromDomain converts a full ledger state to its document form
type StateDocument struct {
	Batches        []BatchDocument
	FinishedGoods  []FinishedGoodDocument
	ProductionLogs []ProductionLogDocument
	SalesRecords   []SalesRecordDocument
}

func StateFromDomain(s *ledger.State) StateDocument {
	return StateDocument{
		Batches:        BatchesFromDomain(s.Batches),
		FinishedGoods:  FinishedGoodsFromDomain(s.FinishedGoods),
		ProductionLogs: ProductionLogsFromDomain(s.ProductionLogs),
		SalesRecords:   SalesRecordsFromDomain(s.SalesRecords),
	}
}
