package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one row of the postgres key-value table
type kvEntry struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"index;not null"`
}

func (kvEntry) TableName() string { return "kv" }

// PostgresStorage is the gorm-backed key-value store
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage connects to dsn and migrates the kv table
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv: %w", err)
	}
	return &PostgresStorage{db: db}, nil
}

// Get loads the value stored under key
func (s *PostgresStorage) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return json.RawMessage(entry.Value), nil
}

// Set upserts value under key
func (s *PostgresStorage) Set(ctx context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return ErrInvalidValue
	}
	entry := kvEntry{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Prune deletes entries not written for longer than olderThan
func (s *PostgresStorage) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	result := s.db.WithContext(ctx).Where("updated_at < ?", time.Now().Add(-olderThan)).Delete(&kvEntry{})
	return result.RowsAffected, result.Error
}

// Close releases the connection pool
func (s *PostgresStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
