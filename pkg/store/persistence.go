package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voxtools/orthovox/pkg/mesh"
)

// ModelRecord is the database row for one persisted model. Both arrays
// are gob-encoded as a single blob so a row is always internally
// consistent.
type ModelRecord struct {
	ID        string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// modelDB wraps the gorm handle so the store can stay usable without a
// database open.
type modelDB struct {
	db   *gorm.DB
	path string
}

// close releases the underlying sqlite connection pool.
func (m *modelDB) close() {
	if sqlDB, err := m.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// Open ensures the SQLite database at path is open and migrated.
// Reopening the current path is a no-op, so callers may treat Open as
// "ensure open" before every Save or Load. Opening a different path
// closes the previous handle.
func (s *ModelStore) Open(path string) error {
	s.mu.Lock()
	if s.db != nil && s.db.path == path {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("store: open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&ModelRecord{}); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}

	s.mu.Lock()
	prev := s.db
	s.db = &modelDB{db: db, path: path}
	s.mu.Unlock()

	if prev != nil {
		prev.close()
	}

	log.Printf("store: sqlite database open: %s", path)
	return nil
}

// Save writes one model's buffer to the database (upsert).
func (s *ModelStore) Save(id string) error {
	s.mu.RLock()
	db := s.db
	b, ok := s.models[id]
	var snapshot *mesh.Buffer
	if ok {
		snapshot = b.Clone()
	}
	s.mu.RUnlock()

	if db == nil {
		return fmt.Errorf("store: database not open")
	}
	if snapshot == nil {
		snapshot = &mesh.Buffer{}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snapshot); err != nil {
		return fmt.Errorf("store: encode model %s: %w", id, err)
	}

	rec := ModelRecord{ID: id, Data: buf.Bytes()}
	if err := db.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("store: save model %s: %w", id, err)
	}
	return nil
}

// Load reads one model's buffer from the database, replacing whatever
// the store holds for that id.
func (s *ModelStore) Load(id string) error {
	s.mu.RLock()
	db := s.db
	s.mu.RUnlock()
	if db == nil {
		return fmt.Errorf("store: database not open")
	}

	var rec ModelRecord
	if err := db.db.First(&rec, "id = ?", id).Error; err != nil {
		return fmt.Errorf("store: load model %s: %w", id, err)
	}

	var b mesh.Buffer
	if err := gob.NewDecoder(bytes.NewReader(rec.Data)).Decode(&b); err != nil {
		return fmt.Errorf("store: decode model %s: %w", id, err)
	}

	s.mu.Lock()
	s.models[id] = &b
	s.mu.Unlock()
	return nil
}
