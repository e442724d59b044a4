package testsupport

import (
	"context"
	"testing"

	"wordmask/internal/config"
	"wordmask/internal/store"
)

// MustOpenAdapter opens the configured backend wrapped in a store.Adapter and
// registers cleanup.
func MustOpenAdapter(t testing.TB, cfg *config.Config) *store.Adapter {
	t.Helper()

	kv, err := store.Open(context.Background(), cfg.Store, nil)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	adapter := store.NewAdapter(kv, nil)
	t.Cleanup(func() {
		adapter.Close()
	})
	return adapter
}

// Seed writes words and mapping into adapter.
func Seed(t testing.TB, adapter *store.Adapter, words []string, mapping string) {
	t.Helper()

	ctx := context.Background()
	if err := adapter.SaveBannedWords(ctx, words); err != nil {
		t.Fatalf("SaveBannedWords: %v", err)
	}
	if err := adapter.SaveMapping(ctx, mapping); err != nil {
		t.Fatalf("SaveMapping: %v", err)
	}
}
