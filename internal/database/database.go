// Package database contains the logic for establishing the connection
// to MongoDB.
//
// The client is created, pinged, and index-bootstrapped exactly once at
// startup, before the HTTP server begins accepting requests. Request
// handlers share the ready client through the Database wrapper; no
// request ever triggers connection logic, which removes the
// "already connecting" race the lazy-connect approach has.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rakhadavedra/blogstack/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. One place, so repositories and index bootstrap
// cannot drift apart.
const (
	CollectionUsers      = "users"
	CollectionCategories = "categories"
	CollectionBlogs      = "blogs"
)

// Database wraps the mongo client plus the handle of the application
// database, and a logger for lifecycle events.
type Database struct {
	Client *mongo.Client
	db     *mongo.Database
	log    *zerolog.Logger
}

// New connects to MongoDB and verifies the connection.
//
// Behavior:
//   - apply URI and pool size from config
//   - connect and ping the primary within the configured timeout
//   - create the indexes the query patterns rely on
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetMaxPoolSize(cfg.Database.MaxPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Connect does not guarantee reachability; Ping does.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := &Database{
		Client: client,
		db:     client.Database(cfg.Database.Name),
		log:    logger,
	}

	if err := database.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to mongodb")

	return database, nil
}

// Users returns the users collection.
func (db *Database) Users() *mongo.Collection {
	return db.db.Collection(CollectionUsers)
}

// Categories returns the categories collection.
func (db *Database) Categories() *mongo.Collection {
	return db.db.Collection(CollectionCategories)
}

// Blogs returns the blogs collection.
func (db *Database) Blogs() *mongo.Collection {
	return db.db.Collection(CollectionBlogs)
}

// Ping verifies connectivity, used by the health endpoint.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client. Safe to call once during shutdown.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing mongodb connection")
	return db.Client.Disconnect(ctx)
}

// ensureIndexes creates the indexes the repositories query against.
//
// Blog listings always filter on user+category and sort/range on
// createdAt; categories are listed per user. CreateMany is idempotent
// for identical definitions, so startup can run it unconditionally.
func (db *Database) ensureIndexes(ctx context.Context) error {
	_, err := db.Blogs().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user", Value: 1},
				{Key: "category", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Categories().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user", Value: 1}},
		},
	})
	return err
}
