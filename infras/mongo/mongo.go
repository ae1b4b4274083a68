package mongo

import (
	"context"
	"fmt"
	"time"

	"playcourt/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoMaxPoolSize = 50
	mongoPingTimeout = 5 * time.Second
)

// Connection is the single store handle shared by every repository.
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects to the configured deployment, retrying the initial ping
// DB_MONGO_MAX_RETRY times. Store operations themselves are never retried.
func New(config *config.Config) (*Connection, error) {
	opts := options.Client().
		ApplyURI(config.DB.Mongo.URI).
		SetAppName(config.App.Name).
		SetMaxPoolSize(mongoMaxPoolSize).
		SetRetryWrites(false).
		SetRetryReads(false)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("creating mongo client: %w", err)
	}

	maxRetry := max(config.DB.Mongo.MaxRetry, 1)

	for retry := range maxRetry {
		err = ping(client)
		if err == nil {
			log.
				Info().
				Str("dbName", config.DB.Mongo.Name).
				Msg("Connected to database")

			return &Connection{
				Client:   client,
				Database: client.Database(config.DB.Mongo.Name),
			}, nil
		}

		log.
			Error().
			Err(err).
			Str("dbName", config.DB.Mongo.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Mongo.RetryWaitTime) * time.Second)
	}

	_ = client.Disconnect(context.Background())

	return nil, fmt.Errorf("connecting to mongo after %d attempts: %w", maxRetry, err)
}

func ping(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoPingTimeout)
	defer cancel()

	return client.Ping(ctx, readpref.Primary()) //nolint:wrapcheck
}

// Ping reports whether the deployment answers.
func (c *Connection) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary()) //nolint:wrapcheck
}

// Collection returns a handle to the named collection.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

// Disconnect closes every pooled connection.
func (c *Connection) Disconnect(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongo client: %w", err)
	}

	log.Info().Msg("Disconnected from database")

	return nil
}
