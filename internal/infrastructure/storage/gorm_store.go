package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/akhhatar/e-voting-project/domain"
)

// Collection keys. Each key maps to one JSON value holding the whole
// collection; there is no row-per-entity schema and no cross-key transaction.
const (
	keyUsers      = "users"
	keyParties    = "parties"
	keyCandidates = "candidates"
)

// Record is one persisted collection blob.
type Record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "records"
}

// Open connects to the configured backend: Postgres when the DSN looks like
// a Postgres DSN, the embedded pure-Go sqlite file otherwise.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

// GormStore implements domain.ElectionStore over a single key/value table.
// Values are serialized on every access; writes are last-writer-wins per key.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the records table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Init implements domain.ElectionStore. Seeding is per key and idempotent:
// DoNothing leaves any existing collection untouched.
func (s *GormStore) Init(ctx context.Context) error {
	seeds := map[string]string{
		keyUsers:      "{}",
		keyParties:    "[]",
		keyCandidates: "[]",
	}
	for key, value := range seeds {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Record{Key: key, Value: value}).Error
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", key, err)
		}
	}
	return nil
}

// GetUsers implements domain.ElectionStore
func (s *GormStore) GetUsers(ctx context.Context) (map[string]*domain.Voter, error) {
	users := make(map[string]*domain.Voter)
	if _, err := s.get(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = make(map[string]*domain.Voter)
	}
	return users, nil
}

// PutUsers implements domain.ElectionStore
func (s *GormStore) PutUsers(ctx context.Context, users map[string]*domain.Voter) error {
	return s.put(ctx, keyUsers, users)
}

// GetParties implements domain.ElectionStore
func (s *GormStore) GetParties(ctx context.Context) ([]domain.Party, error) {
	var parties []domain.Party
	if _, err := s.get(ctx, keyParties, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

// PutParties implements domain.ElectionStore
func (s *GormStore) PutParties(ctx context.Context, parties []domain.Party) error {
	return s.put(ctx, keyParties, parties)
}

// GetCandidates implements domain.ElectionStore
func (s *GormStore) GetCandidates(ctx context.Context) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	if _, err := s.get(ctx, keyCandidates, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// PutCandidates implements domain.ElectionStore
func (s *GormStore) PutCandidates(ctx context.Context, candidates []domain.Candidate) error {
	return s.put(ctx, keyCandidates, candidates)
}

// get reads and deserializes one collection. A never-initialized key reports
// absent rather than an error; out keeps its zero value.
func (s *GormStore) get(ctx context.Context, key string, out any) (bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// put serializes and writes one collection whole, replacing whatever was
// there. Concurrent writers race; the last write wins.
func (s *GormStore) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&Record{Key: key, Value: string(data)}).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ElectionStore = (*GormStore)(nil)
