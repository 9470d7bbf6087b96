package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the persisted key-value row.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     []byte `gorm:"column:entry_value"`
	UpdatedAt time.Time
}

// TableName sets the table name for GORM.
func (Entry) TableName() string {
	return "app_state"
}

// GormStore persists entries through a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by the given connection.
// Call Migrate once at startup to ensure the table exists.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the app_state table if it does not exist.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate state table: %w", err)
	}
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read state entry %q: %w", key, err)
	}
	return entry.Value, nil
}

// Put stores value under key. The upsert replaces the row in a single
// statement, so readers never see a partial value.
func (s *GormStore) Put(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write state entry %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete state entry %q: %w", key, err)
	}
	return nil
}
