package app

import (
	"context"
	"log"
	"time"

	"skill-bridge/internal/config"
	"skill-bridge/internal/database"
	dbpostgres "skill-bridge/internal/database/postgres"
	"skill-bridge/internal/database/schema"
	"skill-bridge/internal/database/seeder"
	"skill-bridge/internal/infrastructure/cache"
	"skill-bridge/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
}

// NewContainer connects the backing services, ensures the versioned schema,
// and seeds the recommendation tables.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seeder.Defaults().Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
