package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/platform/session"
)

type Clients struct {
	Redis    goredis.UniversalClient
	Sessions *session.Manager
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis is optional; without it sessions live in signed cookies.
	var rdb goredis.UniversalClient
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: 5 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return Clients{}, fmt.Errorf("redis ping: %w", err)
		}
		rdb = client
	} else {
		log.Warn("REDIS_ADDR not set, using cookie session store")
	}

	store := session.NewStore(cfg.Session, rdb)
	return Clients{
		Redis:    rdb,
		Sessions: session.NewManager(log, store, cfg.Session.Name),
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
