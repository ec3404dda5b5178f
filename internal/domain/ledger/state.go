// Package ledger defines the application state object: the four persisted
// collections that every operation reads and transforms. There are no hidden
// statics; services receive the state explicitly from the store.
package ledger

import (
	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/production"
	"github.com/Zxyilyy/cooked/internal/domain/sales"
)

// State holds the four ledger collections. Ordering is significant:
// batches are kept in collection order (the deduction allocation contract)
// with runtime receipts prepended, and logs/records are kept newest first.
type State struct {
	Batches        []*inventory.Batch
	FinishedGoods  []*production.FinishedGood
	ProductionLogs []*production.LogEntry
	SalesRecords   []*sales.Record
}

// Clone returns a deep copy of the state. Mutating the clone never touches
// the original; the store relies on this for atomic swap semantics.
func (s *State) Clone() *State {
	c := &State{
		Batches:        make([]*inventory.Batch, len(s.Batches)),
		FinishedGoods:  make([]*production.FinishedGood, len(s.FinishedGoods)),
		ProductionLogs: make([]*production.LogEntry, len(s.ProductionLogs)),
		SalesRecords:   make([]*sales.Record, len(s.SalesRecords)),
	}
	for i, b := range s.Batches {
		c.Batches[i] = b.Clone()
	}
	for i, g := range s.FinishedGoods {
		c.FinishedGoods[i] = g.Clone()
	}
	for i, l := range s.ProductionLogs {
		c.ProductionLogs[i] = l.Clone()
	}
	for i, r := range s.SalesRecords {
		c.SalesRecords[i] = r.Clone()
	}
	return c
}

// FindBatch returns the batch with the given id, or nil
func (s *State) FindBatch(id string) *inventory.Batch {
	for _, b := range s.Batches {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// PrependBatch inserts a batch at the front of the collection, matching the
// receiving behavior the deduction-order contract is defined against.
func (s *State) PrependBatch(b *inventory.Batch) {
	s.Batches = append([]*inventory.Batch{b}, s.Batches...)
}

// RemoveBatch deletes the batch with the given id, reporting whether it
// existed.
func (s *State) RemoveBatch(id string) bool {
	for i, b := range s.Batches {
		if b.ID == id {
			s.Batches = append(s.Batches[:i], s.Batches[i+1:]...)
			return true
		}
	}
	return false
}

// FindFinishedGood returns the finished good with the given id, or nil
func (s *State) FindFinishedGood(id string) *production.FinishedGood {
	for _, g := range s.FinishedGoods {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// FindFinishedGoodByKey returns the finished good with the given composite
// key, or nil.
func (s *State) FindFinishedGoodByKey(name, unit string) *production.FinishedGood {
	for _, g := range s.FinishedGoods {
		if g.Matches(name, unit) {
			return g
		}
	}
	return nil
}

// PruneFinishedGoods drops goods whose quantity has reached zero
func (s *State) PruneFinishedGoods() {
	kept := s.FinishedGoods[:0]
	for _, g := range s.FinishedGoods {
		if !g.IsDepleted() {
			kept = append(kept, g)
		}
	}
	s.FinishedGoods = kept
}

// FindProductionLog returns the log entry with the given id, or nil
func (s *State) FindProductionLog(id string) *production.LogEntry {
	for _, l := range s.ProductionLogs {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// PrependProductionLog inserts a log entry at the front (newest first)
func (s *State) PrependProductionLog(l *production.LogEntry) {
	s.ProductionLogs = append([]*production.LogEntry{l}, s.ProductionLogs...)
}

// RemoveProductionLog deletes the log entry with the given id
func (s *State) RemoveProductionLog(id string) bool {
	for i, l := range s.ProductionLogs {
		if l.ID == id {
			s.ProductionLogs = append(s.ProductionLogs[:i], s.ProductionLogs[i+1:]...)
			return true
		}
	}
	return false
}

// PrependSalesRecord inserts a sales record at the front (newest first)
func (s *State) PrependSalesRecord(r *sales.Record) {
	s.SalesRecords = append([]*sales.Record{r}, s.SalesRecords...)
}

// RemoveSalesRecord deletes the record with the given id
func (s *State) RemoveSalesRecord(id string) bool {
	for i, r := range s.SalesRecords {
		if r.ID == id {
			s.SalesRecords = append(s.SalesRecords[:i], s.SalesRecords[i+1:]...)
			return true
		}
	}
	return false
}
