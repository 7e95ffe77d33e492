package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pjt727/classwatch/collection/services"
	"github.com/Pjt727/classwatch/collection/services/quacs"
	"github.com/Pjt727/classwatch/config"
	"github.com/Pjt727/classwatch/data"
	"github.com/Pjt727/classwatch/data/cache"
)

// openStore connects the configured cache backend. The returned func releases
// whatever connection the backend holds.
func openStore(ctx context.Context, conf *config.Config) (cache.Store, func() error, error) {
	switch conf.Cache.Backend {
	case config.BackendPostgres:
		db, err := data.NewPool(ctx, conf.Cache.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to the cache db: %w", err)
		}
		return cache.NewSQLStore(db), db.Close, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Cache.RedisAddr,
			Password: conf.Cache.RedisPassword,
			DB:       conf.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("could not reach redis at %s: %w", conf.Cache.RedisAddr, err)
		}
		return cache.NewRedisStore(client), client.Close, nil
	default:
		store, err := cache.NewFileStore(conf.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil
	}
}

func newSynchronizer(conf *config.Config, store cache.Store) *quacs.Synchronizer {
	return quacs.NewSynchronizer(
		appLog,
		store,
		quacs.WithSourceURL(conf.SourceURL),
		quacs.WithHTTPClient(services.NewReportingClient(appLog, conf.HTTPTimeout)),
	)
}

// termFlag reads --term, falling back to the term running now
func termFlag(value string) (data.Term, error) {
	if value == "" {
		return data.CurrentTerm(time.Now()), nil
	}
	return data.ParseTerm(value)
}
