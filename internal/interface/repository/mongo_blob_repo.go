package repository

import (
	"context"
	"errors"
	"time"

	"exocatalog-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blobDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBlobStore implements BlobStore over a mongo collection keyed by _id
type MongoBlobStore struct {
	collection *mongo.Collection
}

// NewMongoBlobStore creates a blob store over the "cache_blobs" collection
func NewMongoBlobStore(db *mongo.Database) *MongoBlobStore {
	return &MongoBlobStore{collection: db.Collection("cache_blobs")}
}

// Get returns the value for key or ErrBlobNotFound
func (s *MongoBlobStore) Get(ctx context.Context, key string) (string, error) {
	var doc blobDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", repository.ErrBlobNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

// Set upserts the value for key
func (s *MongoBlobStore) Set(ctx context.Context, key, value string) error {
	update := bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	return err
}

// Delete removes key; deleting a missing key is not an error
func (s *MongoBlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
