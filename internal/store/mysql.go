package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const (
	mysqlAccessDenied   = 1045
	mysqlUnknownDB      = 1049
	mysqlDriverName     = "mysql"
	mysqlRedactedSecret = "xxxxx"
)

var mysqlDialect = dialect{
	name: "mysql",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS schema_version (version INT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS kv_entries (
			entry_key   VARCHAR(191) NOT NULL PRIMARY KEY,
			entry_value MEDIUMTEXT NOT NULL,
			updated_at  VARCHAR(40) NOT NULL
		) DEFAULT CHARSET = utf8mb4`,
	},
	upsert: `INSERT INTO kv_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value), updated_at = VALUES(updated_at)`,
}

// OpenMySQL connects to the MySQL database named in dsn and ensures the
// kv_entries table exists.
func OpenMySQL(ctx context.Context, dsn string) (*SQL, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sqlx.NewDb(sql.OpenDB(connector), mysqlDriverName)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, describeMySQLError(cfg, err)
	}

	s, err := newSQL(ctx, db, mysqlDialect, nil)
	if err != nil {
		_ = db.Close()
		return nil, describeMySQLError(cfg, err)
	}
	return s, nil
}

func describeMySQLError(cfg *mysql.Config, err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlAccessDenied:
			return fmt.Errorf("mysql access denied for user %q at %s: %w", cfg.User, cfg.Addr, err)
		case mysqlUnknownDB:
			return fmt.Errorf("mysql database %q does not exist at %s: %w", cfg.DBName, cfg.Addr, err)
		}
	}
	return fmt.Errorf("mysql %s: %w", cfg.Addr, err)
}

func redactDSN(dsn string) string {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "mysql (invalid dsn)"
	}
	if cfg.Passwd != "" {
		cfg.Passwd = mysqlRedactedSecret
	}
	return cfg.FormatDSN()
}
