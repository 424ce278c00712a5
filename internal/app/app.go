// Package app connects the backing stores and builds the services shared
// by the server and the seed command.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formcraft/internal/cache"
	"formcraft/internal/config"
	"formcraft/internal/repository"
	"formcraft/internal/service"
	"formcraft/internal/storage"
)

const pingTimeout = 5 * time.Second

type App struct {
	Mongo *mongo.Client
	DB    *mongo.Database
	Redis *redis.Client // nil when the cache is disabled

	FormRepo     repository.FormRepo
	ResponseRepo repository.ResponseRepo
	FormCache    cache.FormCache

	FormService     *service.FormService
	ResponseService *service.ResponseService
	UploadService   *service.UploadService
}

// New connects to MongoDB (and Redis when configured) and wires the services
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	a := &App{Mongo: mongoClient}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	log.Info("connected to MongoDB", "db", cfg.MongoDB)
	a.DB = mongoClient.Database(cfg.MongoDB)

	a.FormCache = cache.NopFormCache{}
	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			rdb.Close()
			a.Close(ctx)
			return nil, fmt.Errorf("ping Redis: %w", err)
		}
		log.Info("connected to Redis", "addr", cfg.RedisAddr, "ttl", cfg.FormCacheTTL)
		a.Redis = rdb
		a.FormCache = cache.NewFormCache(rdb, cfg.FormCacheTTL)
	} else {
		log.Info("form cache disabled")
	}

	store, err := storage.NewFSStore(cfg.UploadDir)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("open upload dir: %w", err)
	}

	a.FormRepo = repository.NewFormRepo(a.DB)
	a.ResponseRepo = repository.NewResponseRepo(a.DB)

	a.FormService = service.NewFormService(a.FormRepo, a.FormCache, log)
	a.ResponseService = service.NewResponseService(a.FormService, a.ResponseRepo, log)
	a.UploadService = service.NewUploadService(store, log)
	return a, nil
}

// Close releases the store connections
func (a *App) Close(ctx context.Context) {
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.Mongo != nil {
		a.Mongo.Disconnect(ctx)
	}
}
