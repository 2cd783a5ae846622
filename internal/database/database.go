package database

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const defaultMongoDatabase = "neurosphere"

// ConnectMongo connects, pings and returns the database named in the URI path
// (falls back to "neurosphere").
func ConnectMongo(ctx context.Context, mongoURI string, log *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	dbName := MongoDatabaseName(mongoURI)
	log.Info("connected to mongodb", zap.String("database", dbName))
	return client, client.Database(dbName), nil
}

// MongoDatabaseName extracts the database from mongodb://host/<db>?opts.
func MongoDatabaseName(mongoURI string) string {
	rest := mongoURI
	if idx := strings.Index(rest, "://"); idx != -1 {
		rest = rest[idx+3:]
	}
	slash := strings.Index(rest, "/")
	if slash == -1 {
		return defaultMongoDatabase
	}
	db := strings.SplitN(rest[slash+1:], "?", 2)[0]
	if db == "" {
		return defaultMongoDatabase
	}
	return db
}

func DisconnectMongo(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
