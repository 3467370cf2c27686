package router

import (
	"context"
	"fmt"

	"medimanager/internal/adapters/auth/sessions"
	"medimanager/internal/adapters/storage/file"
	mem "medimanager/internal/adapters/storage/memory"
	pg "medimanager/internal/adapters/storage/postgres"
	"medimanager/internal/adapters/storage/sqlite"
	"medimanager/internal/config"
	"medimanager/internal/platform/logger"
	"medimanager/internal/ports/auth"
	"medimanager/internal/ports/storage"
)

// OpenStore abre el record store según STORAGE_DRIVER.
func OpenStore(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (storage.RecordStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return mem.NewStore(), nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		st := pg.NewCollectionsStore(db, log)
		if err := st.EnsureSchema(ctx); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return st, nil

	case config.DriverSQLite:
		st, err := sqlite.Open(cfg.SQLitePath, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return st, nil

	case config.DriverFile, "":
		st, err := file.Open(cfg.DataDir, log)
		if err != nil {
			return nil, fmt.Errorf("open data dir: %w", err)
		}
		return st, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// OpenSessions arma el session store. El close devuelto libera la conexión a redis.
func OpenSessions(ctx context.Context, cfg config.AuthConfig) (auth.SessionStore, func() error, error) {
	switch cfg.SessionStore {
	case config.SessionsRedis:
		client, err := sessions.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("redis sessions: %w", err)
		}
		return sessions.NewRedisStore(client, cfg.SessionTTL), client.Close, nil

	case config.SessionsMemory, "":
		return sessions.NewMemoryStore(cfg.SessionTTL), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
