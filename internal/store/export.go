package store

import (
	"context"

	"github.com/rcliao/dexcache/internal/model"
)

// ExportAll returns every cached entry with its body, optionally filtered by kind.
func (s *SQLiteStore) ExportAll(ctx context.Context, kind string) ([]model.CacheEntry, error) {
	query := `SELECT id, key, kind, length(body), hits, fetched_at, body FROM cache_entries`
	var args []interface{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY kind, key`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.CacheEntry
	for rows.Next() {
		e, err := scanEntry(rows, true)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Import stores entries from an export. Entries without a key or body are
// skipped; existing keys are overwritten.
func (s *SQLiteStore) Import(ctx context.Context, entries []model.CacheEntry) (int, error) {
	imported := 0
	for _, e := range entries {
		if e.Key == "" || len(e.Body) == 0 {
			continue
		}
		if err := s.Put(ctx, e.Key, e.Body); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
