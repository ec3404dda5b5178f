package persistence

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Zxyilyy/cooked/internal/domain/ledger"
	"github.com/Zxyilyy/cooked/internal/infrastructure/config"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence/models"
)

// Store owns the in-memory ledger state and writes it through to the
// document store. All mutation goes through Update, which serializes
// writers, hands the mutator a deep copy, and swaps the copy in only when
// the mutator succeeds. A failed mutation leaves both the in-memory state
// and the stored documents untouched.
type Store struct {
	mu     sync.Mutex
	docs   *DocumentStore
	logger *zap.Logger

	seedOnEmpty bool
	activeCycle string

	state *ledger.State
}

// NewStore creates a ledger store over the given document store
func NewStore(docs *DocumentStore, cfg *config.LedgerConfig, logger *zap.Logger) *Store {
	return &Store{
		docs:        docs,
		logger:      logger,
		seedOnEmpty: cfg.SeedOnEmpty,
		activeCycle: cfg.ActiveCycle,
		state:       &ledger.State{},
	}
}

// Load reads the four collections from the document store. A missing or
// unreadable inventory document installs the opening seed when seeding is
// enabled; the other collections default to empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &ledger.State{}

	var batchDocs []models.BatchDocument
	found, err := s.docs.Get(ctx, KeyInventory, &batchDocs)
	if err != nil {
		return err
	}
	if found {
		state.Batches = models.BatchesToDomain(batchDocs)
	} else if s.seedOnEmpty {
		state.Batches = SeedBatches(s.activeCycle)
		s.logger.Info("installed opening inventory seed",
			zap.Int("batches", len(state.Batches)))
	}

	var goodDocs []models.FinishedGoodDocument
	if found, err = s.docs.Get(ctx, KeyFinishedGoods, &goodDocs); err != nil {
		return err
	} else if found {
		state.FinishedGoods = models.FinishedGoodsToDomain(goodDocs)
	}

	var logDocs []models.ProductionLogDocument
	if found, err = s.docs.Get(ctx, KeyProductionLogs, &logDocs); err != nil {
		return err
	} else if found {
		state.ProductionLogs = models.ProductionLogsToDomain(logDocs)
	}

	var recordDocs []models.SalesRecordDocument
	if found, err = s.docs.Get(ctx, KeySalesRecords, &recordDocs); err != nil {
		return err
	} else if found {
		state.SalesRecords = models.SalesRecordsToDomain(recordDocs)
	}

	s.state = state
	s.persistLocked(ctx)
	return nil
}

// Snapshot returns a deep copy of the current state for reading
func (s *Store) Snapshot() *ledger.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies fn to a deep copy of the state. When fn returns nil the
// copy becomes the current state and all four collections are rewritten in
// full; when fn errors, nothing changes. Persistence failures are logged
// and do not roll back the in-memory swap.
func (s *Store) Update(ctx context.Context, fn func(*ledger.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	s.persistLocked(ctx)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	doc := models.StateFromDomain(s.state)
	writes := []struct {
		key   string
		value interface{}
	}{
		{KeyInventory, doc.Batches},
		{KeySalesRecords, doc.SalesRecords},
		{KeyProductionLogs, doc.ProductionLogs},
		{KeyFinishedGoods, doc.FinishedGoods},
	}
	for _, w := range writes {
		if err := s.docs.Set(ctx, w.key, w.value); err != nil {
			s.logger.Error("failed to persist ledger document",
				zap.String("key", w.key),
				zap.Error(err))
		}
	}
}
