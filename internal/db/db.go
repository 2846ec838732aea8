// Package db provides the SQLite integration shared by the exercise runner
// and the CRUD walkthrough.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sqltutorial/sqltutorial/internal/log"
)

// Config represents the configuration for the Open function.
type Config struct {
	// Logger is the shared logger.
	Logger log.Logger
	// Path is the database file, created if it does not exist.
	Path string
	// Driver selects the SQLite engine, defaults to DriverMattn.
	Driver Driver
	// DisableOptimizations disables the synchronous and cache tuning applied
	// through the DSN.
	DisableOptimizations bool
	// WAL switches the file to write-ahead logging. Unlike the other
	// pragmas the journal mode is stored in the file itself.
	WAL bool
}

// DB is a single-connection handle to one SQLite database file.
type DB struct {
	Config
	conn  *sql.DB
	stats Stats
}

// Stats counts the statements executed through a DB.
type Stats struct {
	Reads     int64
	Writes    int64
	Begins    int64
	Commits   int64
	Rollbacks int64
}

// createDSN builds the driver specific DSN for config.Path.
func createDSN(config Config) string {
	pragmas := [][2]string{
		{"foreign_keys", "true"},
		{"busy_timeout", "5000"},
	}
	if config.WAL {
		pragmas = append(pragmas, [2]string{"journal_mode", "WAL"})
	}
	if !config.DisableOptimizations {
		pragmas = append(pragmas,
			[2]string{"synchronous", "NORMAL"},
			[2]string{"cache_size", "10000"},
		)
	}

	qp := url.Values{}
	for _, p := range pragmas {
		switch config.Driver {
		case DriverModernc:
			qp.Add("_pragma", fmt.Sprintf("%s(%s)", p[0], p[1]))
		default:
			qp.Add("_"+p[0], p[1])
		}
	}

	return fmt.Sprintf("file:%s?%s", config.Path, qp.Encode())
}

// Open opens or creates the database file at config.Path.
//
// The pool is pinned to a single connection so statements such as BEGIN and
// COMMIT issued through Run apply to the same session.
func Open(ctx context.Context, config Config) (*DB, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Path == "" {
		return nil, errors.New("database path is required")
	}
	if config.Driver.Value == "" {
		config.Driver = DriverMattn
	}
	if Drivers.Parse(config.Driver.Value) == nil {
		return nil, fmt.Errorf("unknown database driver: %s", config.Driver.Value)
	}

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := createDSN(config)
	conn, err := sql.Open(config.Driver.Value, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	config.Logger.DebugNs(log.NsDatabase, "database opened", log.KV{
		"path":   config.Path,
		"driver": config.Driver.Value,
	})

	return &DB{
		Config: config,
		conn:   conn,
	}, nil
}

// Close releases the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	db.Logger.DebugNs(log.NsDatabase, "database closed", log.KV{
		"path":      db.Path,
		"reads":     db.stats.Reads,
		"writes":    db.stats.Writes,
		"begins":    db.stats.Begins,
		"commits":   db.stats.Commits,
		"rollbacks": db.stats.Rollbacks,
	})

	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	db.conn = nil
	return nil
}

// Stats returns the statement counters since Open.
func (db *DB) Stats() Stats {
	return db.stats
}

// TableExists reports whether a table called name exists.
func (db *DB) TableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := db.conn.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", name, err)
	}
	return count > 0, nil
}
