// Package sqlite provides a SQLite-backed response cache so raw WHOIS
// responses survive between CLI invocations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
)

// Ensure ResponseCache implements the interface.
var _ driven.ResponseCache = (*ResponseCache)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	domain     TEXT PRIMARY KEY,
	server     TEXT NOT NULL,
	raw        TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// ResponseCache stores raw responses in a single-table SQLite database.
type ResponseCache struct {
	db   *sql.DB
	path string
}

// NewResponseCache opens (or creates) the cache database under dataDir.
// If dataDir is empty, defaults to ~/.whois-cli/data/responses.db.
func NewResponseCache(dataDir string) (*ResponseCache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".whois-cli", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "responses.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &ResponseCache{
		db:   db,
		path: dbPath,
	}, nil
}

// Get returns the cached response for domain, if present.
func (c *ResponseCache) Get(ctx context.Context, domain string) (*driven.CachedResponse, bool, error) {
	row := c.db.QueryRowContext(ctx,
		"SELECT server, raw, fetched_at FROM responses WHERE domain = ?", domain)

	var server, raw string
	var fetchedAt int64
	if err := row.Scan(&server, &raw, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cached response: %w", err)
	}

	return &driven.CachedResponse{
		Domain:    domain,
		Server:    server,
		Raw:       raw,
		FetchedAt: time.Unix(fetchedAt, 0),
	}, true, nil
}

// Put stores or replaces the response for resp.Domain.
func (c *ResponseCache) Put(ctx context.Context, resp *driven.CachedResponse) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO responses (domain, server, raw, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(domain) DO UPDATE SET
			server = excluded.server,
			raw = excluded.raw,
			fetched_at = excluded.fetched_at`,
		resp.Domain, resp.Server, resp.Raw, resp.FetchedAt.Unix())
	if err != nil {
		return fmt.Errorf("storing response: %w", err)
	}
	return nil
}

// Delete removes the cached response for domain, if any.
func (c *ResponseCache) Delete(ctx context.Context, domain string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM responses WHERE domain = ?", domain); err != nil {
		return fmt.Errorf("deleting cached response: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *ResponseCache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *ResponseCache) Path() string {
	return c.path
}
