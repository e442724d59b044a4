package store

import (
	"context"
	"os"
	"testing"
)

// The MySQL backend needs a live server; point WORDMASK_TEST_MYSQL_DSN at a
// scratch database to run it, e.g. "root:password@tcp(127.0.0.1:3306)/wordmask".
func TestMySQLKV(t *testing.T) {
	dsn := os.Getenv("WORDMASK_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("WORDMASK_TEST_MYSQL_DSN not set")
	}

	kv, err := OpenMySQL(context.Background(), dsn)
	if err != nil {
		t.Fatalf("OpenMySQL: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	if _, err := kv.db.Exec("DELETE FROM kv_entries"); err != nil {
		t.Fatalf("truncate kv_entries: %v", err)
	}
	exerciseKV(t, kv)
}

func TestOpenMySQLRejectsBadDSN(t *testing.T) {
	if _, err := OpenMySQL(context.Background(), "not a dsn"); err == nil {
		t.Fatal("expected dsn parse error")
	}
}
