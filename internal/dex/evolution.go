package dex

import (
	"context"

	"github.com/rcliao/dexcache/internal/evolution"
)

// EvolutionGraph returns the flattened evolution chain of a species, or nil
// when the species or its chain cannot be fetched.
func (d *Dex) EvolutionGraph(ctx context.Context, species string) *evolution.Graph {
	sp := d.Species(ctx, species)
	if sp == nil || sp.EvolutionChain == nil {
		return nil
	}
	url := chainKey(sp.EvolutionChain.URL)
	if g, ok := d.graphs.get(url); ok {
		return g
	}

	chain := d.EvolutionChain(ctx, url)
	if chain == nil {
		return nil
	}
	g := evolution.Build(chain.Chain)
	d.graphs.put(url, &g)
	return &g
}
