package store

//go:generate mockgen -source=kv.go -destination=kv_mock_test.go -package=store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wordmask/internal/config"
	"wordmask/internal/logging"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// KV is a string key-value store. Get reports a missing key with ok=false and
// a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open constructs the backend selected by cfg.
func Open(ctx context.Context, cfg config.Store, logger *slog.Logger) (KV, error) {
	logger = logging.NewComponentLogger(logger, "store")

	var (
		kv  KV
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		kv = NewMemory()
	case config.BackendFile:
		kv, err = OpenFile(cfg.Path)
	case config.BackendSQLite:
		kv, err = OpenSQLite(ctx, cfg.Path)
	case config.BackendMySQL:
		kv, err = OpenMySQL(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	logger.Debug("store opened",
		logging.String(logging.FieldBackend, cfg.Backend),
		logging.String("location", Location(cfg)))
	return kv, nil
}

// Location describes where cfg stores its data, without credentials.
func Location(cfg config.Store) string {
	switch cfg.Backend {
	case config.BackendMemory:
		return "in-memory"
	case config.BackendMySQL:
		return redactDSN(cfg.DSN)
	default:
		return cfg.Path
	}
}
