package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnshRaj112/neurosphere-backend/internal/config"
	"github.com/AnshRaj112/neurosphere-backend/internal/database"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisKeyPrefix namespaces journal data inside a shared Redis database.
const redisKeyPrefix = "neurosphere:"

// Backend is an opened storage backend.
type Backend struct {
	Name string
	Port Port
	// Redis is set when the backend is Redis; the notification bridge reuses it.
	Redis *redis.Client
	close func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// New opens the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory, "":
		log.Warn("using in-memory storage; data is lost on restart")
		return &Backend{Name: config.BackendMemory, Port: NewMemory()}, nil

	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisURI, log)
		if err != nil {
			return nil, fmt.Errorf("storage: connect redis: %w", err)
		}
		return &Backend{
			Name:  config.BackendRedis,
			Port:  NewRedis(client, redisKeyPrefix),
			Redis: client,
			close: client.Close,
		}, nil

	case config.BackendMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, fmt.Errorf("storage: connect mongo: %w", err)
		}
		return &Backend{
			Name:  config.BackendMongo,
			Port:  NewMongo(db),
			close: func() error { return database.DisconnectMongo(client) },
		}, nil

	case config.BackendPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.PostgresURI, log)
		if err != nil {
			return nil, fmt.Errorf("storage: connect postgres: %w", err)
		}
		return &Backend{Name: config.BackendPostgres, Port: NewPostgres(db), close: db.Close}, nil
	}
	return nil, errors.New("storage: unknown backend " + cfg.StorageBackend)
}
