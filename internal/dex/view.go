package dex

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/rcliao/dexcache/internal/evolution"
	"github.com/rcliao/dexcache/internal/model"
	"github.com/rcliao/dexcache/internal/view"
)

// ErrStale is returned when the session closed before results were committed.
var ErrStale = errors.New("view session closed")

// View is everything the species detail screen shows.
type View struct {
	SessionID string               `json:"session"`
	Species   string               `json:"species"`
	Context   string               `json:"context,omitempty"`
	Pokemon   *model.PokemonMini   `json:"pokemon"`
	Catalog   model.VariantCatalog `json:"catalog"`
	Evolution *evolution.Graph     `json:"evolution"`
}

// BuildView resolves the displayed variant, then builds the variant catalog
// and evolution graph concurrently. commit receives the view only if s is
// still alive once all work is done; otherwise ErrStale is returned.
func (d *Dex) BuildView(ctx context.Context, s *view.Session, species, displayContext string, commit func(*View)) error {
	species = normalize(species)
	v := &View{SessionID: s.ID, Species: species, Context: displayContext}

	// The catalog needs the resolved base name, so this runs first.
	if p := d.ResolveDisplayVariant(ctx, species, displayContext); p != nil {
		v.Pokemon = MiniOf(p)
	}
	if !s.Alive() {
		return ErrStale
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sp := d.Species(gctx, species)
		v.Catalog = d.BuildCatalog(gctx, sp, d.DefaultVariety(gctx, species))
		return nil
	})
	g.Go(func() error {
		v.Evolution = d.EvolutionGraph(gctx, species)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !s.Commit(func() { commit(v) }) {
		d.log.Printf("[DEX] dropped stale view %s for %s", s.ID, species)
		return ErrStale
	}
	return nil
}
