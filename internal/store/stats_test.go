package store

import (
	"context"
	"testing"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, pikachuKey, []byte(`{"a":1}`))
	s.Put(ctx, "https://pokeapi.co/api/v2/pokemon/pichu", []byte(`{}`))
	s.Put(ctx, speciesKey, []byte(`{}`))
	s.Get(ctx, speciesKey)

	st, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalEntries != 3 {
		t.Errorf("expected 3 entries, got %d", st.TotalEntries)
	}
	if st.TotalBytes != int64(len(`{"a":1}`)+4) {
		t.Errorf("unexpected total bytes %d", st.TotalBytes)
	}
	if st.TotalHits != 1 {
		t.Errorf("expected 1 hit, got %d", st.TotalHits)
	}
	if len(st.Kinds) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(st.Kinds))
	}
	if st.Kinds[0].Kind != "pokemon" || st.Kinds[0].Count != 2 {
		t.Errorf("expected pokemon first with 2 entries, got %+v", st.Kinds[0])
	}
}
