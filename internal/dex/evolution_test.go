package dex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/dexcache/internal/evolution"
)

func TestEvolutionGraph(t *testing.T) {
	ctx := context.Background()
	d, fs, _ := newTestDex(t)

	g := d.EvolutionGraph(ctx, "bulbasaur")
	require.NotNil(t, g)
	assert.Equal(t, []string{"bulbasaur", "ivysaur", "venusaur"}, g.Nodes)
	assert.Equal(t, []evolution.Edge{
		{From: "bulbasaur", To: "ivysaur", Label: "Level 16"},
		{From: "ivysaur", To: "venusaur", Label: "Level 32"},
	}, g.Edges)

	assert.Same(t, g, d.EvolutionGraph(ctx, "bulbasaur"))
	assert.Equal(t, 1, fs.count("/evolution-chain/1"))
}

func TestEvolutionChainKeyIgnoresTrailingSlash(t *testing.T) {
	ctx := context.Background()
	d, fs, cache := newTestDex(t)

	require.NotNil(t, d.EvolutionGraph(ctx, "bulbasaur"))

	key := d.api.URL("evolution-chain", "1")
	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "chain cached under %s", key)

	require.NotNil(t, d.EvolutionChain(ctx, key))
	require.NotNil(t, d.EvolutionChain(ctx, key+"/"))
	assert.Equal(t, 1, fs.count("/evolution-chain/1"))
	assert.Zero(t, fs.count("/evolution-chain/1/"))
	assert.Equal(t, 1, d.CacheSizes()["evolution_chain"])
}

func TestEvolutionGraphConditions(t *testing.T) {
	d, _, _ := newTestDex(t)

	g := d.EvolutionGraph(context.Background(), "pikachu")
	require.NotNil(t, g)
	assert.Equal(t, []string{"pichu", "pikachu", "raichu"}, g.Nodes)
	assert.Equal(t, "Friendship 220+", g.Edges[0].Label)
	assert.Equal(t, "Use Thunder Stone", g.Edges[1].Label)
}

func TestEvolutionGraphMissing(t *testing.T) {
	ctx := context.Background()
	d, _, _ := newTestDex(t)

	assert.Nil(t, d.EvolutionGraph(ctx, "nosuchmon"))
	assert.Nil(t, d.EvolutionGraph(ctx, "vulpix"), "species without a chain reference")
}
