package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mcdev12/sportsfed/go/internal/eventstore"
	"github.com/mcdev12/sportsfed/go/internal/federation"
	"github.com/mcdev12/sportsfed/go/internal/providers"
	"github.com/mcdev12/sportsfed/go/internal/providers/espn"
	"github.com/mcdev12/sportsfed/go/internal/providers/sportsdb"
	"github.com/rs/zerolog/log"
)

// eventRetention is how long finished-day events stay in the store.
const eventRetention = 180 * 24 * time.Hour

type Services struct {
	Federation *federation.Service
}

// setupServices wires providers, cache, optional event store and the
// federation service. The returned cleanup closes whatever was opened.
func setupServices(ctx context.Context, config *Config) (*Services, func(), error) {
	if err := providers.Register(espn.NewProvider()); err != nil {
		return nil, nil, err
	}
	if err := providers.Register(sportsdb.NewProvider(config.Providers.SportsDB.APIKey)); err != nil {
		return nil, nil, err
	}

	available := make([]providers.Provider, 0)
	for _, name := range providers.Names() {
		provider, err := providers.Get(name)
		if err != nil {
			return nil, nil, err
		}
		available = append(available, provider)
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	opts := []federation.Option{}

	switch config.Cache.Backend {
	case "redis":
		client, err := setupRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = client.Close() })
		opts = append(opts, federation.WithCache(federation.NewRedisCache(client)))
	case "memory":
		if config.Cache.MaxSize > 0 {
			opts = append(opts, federation.WithCache(
				federation.NewMemoryCache(federation.WithMaxSize(config.Cache.MaxSize))))
		}
	default:
		cleanup()
		return nil, nil, fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
	}

	if config.EventStore.Enabled {
		pool, err := setupDatabase(ctx)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, pool.Close)

		store := eventstore.NewStore(pool)
		if err := store.Migrate(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		if removed, err := store.CleanupOldEntries(ctx, eventRetention); err != nil {
			log.Warn().Err(err).Msg("event store cleanup failed")
		} else if removed > 0 {
			log.Info().Int64("removed", removed).Msg("cleaned up old stored events")
		}
		opts = append(opts, federation.WithEventStore(store))
	}

	svc, err := federation.New(config.federationConfig(), available, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	log.Info().Strs("providers", svc.Providers()).Msg("federation ready")
	return &Services{Federation: svc}, cleanup, nil
}
