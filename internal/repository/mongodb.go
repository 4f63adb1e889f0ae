// Package repository persists cart state and order handoffs in MongoDB.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	cartsCollection    = "carts"
	handoffsCollection = "handoffs"
	cartTTLIndexName   = "updated_at_ttl"
)

// MongoConfig tunes the client. Cart writes are small and frequent, so the
// pool stays modest.
type MongoConfig struct {
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	// ConnectTimeout bounds Connect, including the initial ping and index setup.
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	// OperationTimeout caps every operation that reaches the driver without a
	// tighter deadline of its own.
	OperationTimeout time.Duration
	Compressors      []string
}

// DefaultMongoConfig returns the settings the service runs with.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		OperationTimeout:       10 * time.Second,
		Compressors:            []string{"zstd", "snappy", "zlib"},
	}
}

// MongoDB holds the client and the storefront's collections.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Carts    *mongo.Collection
	Handoffs *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return Connect(context.Background(), uri, databaseName, DefaultMongoConfig())
}

// Connect dials uri, verifies the server answers and makes sure the handoff
// history index exists. The cart TTL index is managed by SetCartTTL.
func Connect(ctx context.Context, uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetTimeout(cfg.OperationTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if len(cfg.Compressors) > 0 {
		opts.SetCompressors(cfg.Compressors)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Carts:    db.Collection(cartsCollection),
		Handoffs: db.Collection(handoffsCollection),
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	// A session's history is read newest first.
	if _, err := m.Handoffs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("handoff index: %w", err)
	}
	return m, nil
}

// SetCartTTL makes carts expire ttl after their last update. The index is left
// alone when it already has that TTL, so restarts do not rebuild it. A
// non-positive ttl removes expiry.
func (m *MongoDB) SetCartTTL(ctx context.Context, ttl time.Duration) error {
	want := int32(ttl.Seconds())
	current, found, err := m.cartTTLSeconds(ctx)
	if err != nil {
		return err
	}

	switch {
	case found && ttl > 0 && current == want:
		return nil
	case found:
		if _, err := m.Carts.Indexes().DropOne(ctx, cartTTLIndexName); err != nil {
			return fmt.Errorf("drop cart ttl: %w", err)
		}
	}
	if ttl <= 0 {
		return nil
	}

	_, err = m.Carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetName(cartTTLIndexName).SetExpireAfterSeconds(want),
	})
	if err != nil {
		return fmt.Errorf("create cart ttl: %w", err)
	}
	return nil
}

func (m *MongoDB) cartTTLSeconds(ctx context.Context) (int32, bool, error) {
	cursor, err := m.Carts.Indexes().List(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("list cart indexes: %w", err)
	}
	var specs []struct {
		Name               string `bson:"name"`
		ExpireAfterSeconds *int32 `bson:"expireAfterSeconds"`
	}
	if err := cursor.All(ctx, &specs); err != nil {
		return 0, false, fmt.Errorf("list cart indexes: %w", err)
	}
	for _, s := range specs {
		if s.Name == cartTTLIndexName && s.ExpireAfterSeconds != nil {
			return *s.ExpireAfterSeconds, true, nil
		}
	}
	return 0, false, nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server, giving up after two seconds.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
