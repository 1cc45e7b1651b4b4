package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCache implements a MongoDB-backed cache for deployments that already
// run Mongo and don't want a second datastore for caching.
//
// Expiry uses a TTL index on expires_at, which Mongo sweeps roughly once a
// minute, so Get also checks expiry manually to never serve a stale entry.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoEntry is the document shape stored per cache key.
type mongoEntry struct {
	Key       string     `bson:"_id"`
	Data      []byte     `bson:"data"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// NewMongoCache creates a Mongo-backed cache using the given connection URI,
// database, and collection. It ensures the TTL index on first use.
func NewMongoCache(ctx context.Context, uri, database, collection string) (Cache, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	coll := client.Database(database).Collection(collection)

	// ExpireAfterSeconds of 0 makes Mongo delete documents once expires_at
	// passes. Entries without expires_at never expire.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ttl index: %w", err)
	}

	return &MongoCache{client: client, coll: coll}, nil
}

// Get retrieves a value from the cache.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrBackend, err)
	}

	// The TTL monitor only sweeps periodically, so an expired document may
	// still be present.
	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		_, _ = c.coll.DeleteOne(ctx, bson.M{"_id": key})
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in the cache. A ttl of 0 means no expiry.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{Key: key, Data: data}
	if ttl > 0 {
		expires := time.Now().Add(ttl)
		entry.ExpiresAt = &expires
	}

	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": key}, entry, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return nil
}

// Delete removes a value from the cache.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

// Ensure MongoCache implements Cache.
var _ Cache = (*MongoCache)(nil)
