package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/dexcache/internal/model"
)

// SQLiteStore implements Cache using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cache_entries (
		id          TEXT PRIMARY KEY,
		key         TEXT NOT NULL UNIQUE,
		kind        TEXT NOT NULL,
		body        BLOB NOT NULL,
		fetched_at  TEXT NOT NULL,
		hits        INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_cache_kind ON cache_entries(kind);
	CREATE INDEX IF NOT EXISTS idx_cache_fetched ON cache_entries(fetched_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the cached body for key and bumps its hit counter.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM cache_entries WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	s.db.ExecContext(ctx, `UPDATE cache_entries SET hits = hits + 1 WHERE key = ?`, key)

	return body, true, nil
}

// Put upserts body under key. An existing entry keeps its id and hit count.
func (s *SQLiteStore) Put(ctx context.Context, key string, body []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries (id, key, kind, body, fetched_at, hits)
		 VALUES (?, ?, ?, ?, ?, 0)
		 ON CONFLICT(key) DO UPDATE SET
		   body = excluded.body,
		   kind = excluded.kind,
		   fetched_at = excluded.fetched_at`,
		s.newID(), key, KindOf(key), body, now)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Clear deletes every cached entry.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// Delete removes a single entry. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ?`, key)
	return err
}

// List returns entry metadata (without bodies), newest first.
func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.CacheEntry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	where := []string{"1 = 1"}
	var args []interface{}

	if p.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, p.Kind)
	}
	if p.Prefix != "" {
		where = append(where, "key LIKE ?")
		args = append(args, p.Prefix+"%")
	}

	query := fmt.Sprintf(`
		SELECT id, key, kind, length(body), hits, fetched_at
		FROM cache_entries
		WHERE %s
		ORDER BY fetched_at DESC, key
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.CacheEntry
	for rows.Next() {
		e, err := scanEntry(rows, false)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner, withBody bool) (model.CacheEntry, error) {
	var e model.CacheEntry
	var fetchedAt string

	dest := []interface{}{&e.ID, &e.Key, &e.Kind, &e.Size, &e.Hits, &fetchedAt}
	var body []byte
	if withBody {
		dest = append(dest, &body)
	}
	if err := row.Scan(dest...); err != nil {
		return e, err
	}

	e.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
	if withBody {
		e.Body = body
	}
	return e, nil
}
