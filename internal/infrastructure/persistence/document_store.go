package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document keys for the four ledger collections.
const (
	KeyInventory      = "inventory"
	KeySalesRecords   = "salesRecords"
	KeyProductionLogs = "productionLogs"
	KeyFinishedGoods  = "finishedGoods"
)

// Document is a keyed JSON blob. Each ledger collection is stored whole
// under its own key and rewritten in full on every change.
type Document struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// DocumentStore reads and writes ledger documents.
type DocumentStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDocumentStore creates a document store backed by the given database.
func NewDocumentStore(db *Database, logger *zap.Logger) *DocumentStore {
	return &DocumentStore{db: db.DB, logger: logger}
}

// Get unmarshals the document stored under key into out. It returns false
// when the key is absent or the stored content does not parse, so callers
// fall back to their defaults instead of failing startup over a corrupt
// document.
func (s *DocumentStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load document %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		s.logger.Warn("stored document does not parse, using defaults",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Set marshals value and upserts it under key.
func (s *DocumentStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", key, err)
	}

	doc := Document{Key: key, Value: string(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to store document %q: %w", key, err)
	}
	return nil
}
