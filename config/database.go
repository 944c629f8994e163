package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"QR-Code-Tracker/pkg/logging"
)

const (
	DefaultDBName    = "qr_code_app"
	UserCollection   = "users"
	QRCodeCollection = "qrcodes"
	ScanCollection   = "scans"
	LogoBucket       = "logos"
)

const (
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
	pingTimeout     = 5 * time.Second
)

// MongoConnect connects and pings the primary, retrying with exponential
// backoff. The caller owns the returned client.
func MongoConnect(ctx context.Context, uri string, log logging.Logger) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("MONGOSTRING is not set")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	attempt := 0
	backoff := retry.WithMaxRetries(connectAttempts-1, retry.NewExponential(connectBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			log.Warn(ctx, "MongoDB ping failed", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach MongoDB after %d attempts: %w", attempt, err)
	}

	log.Info(ctx, "Connected to MongoDB")
	return client, nil
}

// InitDatabase creates the indexes the repositories rely on. The unique
// email index is what makes duplicate registration fail under races.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		QRCodeCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		ScanCollection: {
			{Keys: bson.D{{Key: "qr_code_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func DisconnectDB(ctx context.Context, client *mongo.Client, log logging.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Error(ctx, "Error disconnecting from MongoDB", "error", err)
		return
	}
	log.Info(ctx, "Disconnected from MongoDB")
}
