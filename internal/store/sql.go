package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// schemaVersion is the current kv_entries layout. Bump this when the schema
// changes; users clear the database to adopt the new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

type dialect struct {
	name   string
	schema []string
	upsert string
}

// SQL is a KV backed by a single kv_entries table.
type SQL struct {
	db      *sqlx.DB
	dialect dialect
	retry   func(context.Context, func() error) error
}

type entryRow struct {
	Key   string `db:"entry_key"`
	Value string `db:"entry_value"`
}

func newSQL(ctx context.Context, db *sqlx.DB, d dialect, retry func(context.Context, func() error) error) (*SQL, error) {
	if retry == nil {
		retry = func(_ context.Context, op func() error) error { return op() }
	}
	s := &SQL{db: db, dialect: d, retry: retry}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQL) initSchema(ctx context.Context) error {
	for _, stmt := range s.dialect.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	var version int
	err := s.db.GetContext(ctx, &version, "SELECT version FROM schema_version LIMIT 1")
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete the database to start over)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var row entryRow
	err := s.retry(ctx, func() error {
		return s.db.GetContext(ctx, &row, "SELECT entry_key, entry_value FROM kv_entries WHERE entry_key = ?", key)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	updated := time.Now().UTC().Format(time.RFC3339Nano)
	err := s.retry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value, updated)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM kv_entries WHERE entry_key IN (?)", keys)
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	query = s.db.Rebind(query)
	err = s.retry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete entries: %w", err)
	}
	return nil
}

func (s *SQL) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
