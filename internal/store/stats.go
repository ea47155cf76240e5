package store

import (
	"context"
	"os"
)

// Stats holds cache statistics.
type Stats struct {
	DBPath       string      `json:"db_path"`
	DBSizeBytes  int64       `json:"db_size_bytes"`
	TotalEntries int         `json:"total_entries"`
	TotalBytes   int64       `json:"total_bytes"`
	TotalHits    int         `json:"total_hits"`
	Kinds        []KindStats `json:"kinds"`
}

// KindStats holds per-resource-kind counts.
type KindStats struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Bytes int64  `json:"bytes"`
	Hits  int    `json:"hits"`
}

// Stats returns cache statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(length(body)), 0), COALESCE(SUM(hits), 0) FROM cache_entries`).
		Scan(&st.TotalEntries, &st.TotalBytes, &st.TotalHits)

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) AS cnt, SUM(length(body)), SUM(hits)
		FROM cache_entries
		GROUP BY kind ORDER BY cnt DESC, kind`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var k KindStats
		rows.Scan(&k.Kind, &k.Count, &k.Bytes, &k.Hits)
		st.Kinds = append(st.Kinds, k)
	}

	return st, nil
}
