package repository

import (
	"context"
	"errors"
	"time"

	"exocatalog-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheBlob is the single KV table backing the sqlite blob store
type CacheBlob struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName overrides the gorm default
func (CacheBlob) TableName() string { return "cache_blobs" }

// SQLiteBlobStore implements BlobStore over an embedded sqlite database
type SQLiteBlobStore struct {
	db *gorm.DB
}

// NewSQLiteBlobStore migrates the blob table and returns the store
func NewSQLiteBlobStore(db *gorm.DB) (*SQLiteBlobStore, error) {
	if err := db.AutoMigrate(&CacheBlob{}); err != nil {
		return nil, err
	}
	return &SQLiteBlobStore{db: db}, nil
}

// Get returns the value for key or ErrBlobNotFound
func (s *SQLiteBlobStore) Get(ctx context.Context, key string) (string, error) {
	var blob CacheBlob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repository.ErrBlobNotFound
	}
	if err != nil {
		return "", err
	}
	return blob.Value, nil
}

// Set upserts the value for key
func (s *SQLiteBlobStore) Set(ctx context.Context, key, value string) error {
	blob := CacheBlob{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

// Delete removes key; deleting a missing key is not an error
func (s *SQLiteBlobStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&CacheBlob{}, "key = ?", key).Error
}
