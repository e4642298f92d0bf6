package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/timeutil"
)

// entryDoc is the persisted shape of a cache entry. The cache key is the
// document id, which makes Put a natural upsert and keeps keys unique. The
// expires_at field carries a TTL index so MongoDB prunes stale documents on
// its own; Get still applies lazy expiry since the TTL monitor only runs
// periodically.
type entryDoc struct {
	Key       string    `bson:"_id"`
	Domain    string    `bson:"domain"`
	Params    string    `bson:"params"`
	Payload   []byte    `bson:"payload"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// MongoStore is a Store backed by a MongoDB collection.
type MongoStore struct {
	coll  *mongo.Collection
	clock timeutil.Clock
}

// NewMongoStore creates a Mongo-backed store on the given collection.
func NewMongoStore(coll *mongo.Collection, clock timeutil.Clock) *MongoStore {
	return &MongoStore{coll: coll, clock: clock}
}

// EnsureIndexes creates the TTL index used for automatic pruning.
// Call once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create ttl index: %w", err)
	}
	return nil
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, key string) (*Entry, bool, error) {
	var doc entryDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mongo find %q: %w", key, err)
	}

	e := Entry{
		Key:       doc.Key,
		Domain:    Domain(doc.Domain),
		Params:    doc.Params,
		Payload:   doc.Payload,
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}
	if e.Expired(s.clock.Now()) {
		return nil, false, nil
	}
	return &e, true, nil
}

// Put implements Store as a replace-upsert keyed by the cache key.
func (s *MongoStore) Put(ctx context.Context, key string, dom Domain, params string, payload []byte, ttl time.Duration) error {
	now := s.clock.Now()
	doc := entryDoc{
		Key:       key,
		Domain:    string(dom),
		Params:    params,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert %q: %w", key, err)
	}
	return nil
}

// Invalidate implements Store.
func (s *MongoStore) Invalidate(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %q: %w", key, err)
	}
	return nil
}

// Ensure MongoStore implements Store at compile time.
var _ Store = (*MongoStore)(nil)
