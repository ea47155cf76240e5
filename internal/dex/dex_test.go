package dex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciesMemoized(t *testing.T) {
	ctx := context.Background()
	d, fs, _ := newTestDex(t)

	first := d.Species(ctx, "Pikachu")
	second := d.Species(ctx, "pikachu")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, fs.count("/pokemon-species/pikachu"))
}

func TestMissingContentIsNotMemoized(t *testing.T) {
	ctx := context.Background()
	d, fs, _ := newTestDex(t)

	assert.Nil(t, d.Move(ctx, "hyper-beam"))
	assert.Nil(t, d.Move(ctx, "hyper-beam"))
	assert.Equal(t, 2, fs.count("/move/hyper-beam"))
	assert.Nil(t, d.Move(ctx, ""))
}

func TestPokemonExistsMemoized(t *testing.T) {
	ctx := context.Background()
	d, fs, _ := newTestDex(t)

	for i := 0; i < 3; i++ {
		assert.False(t, d.PokemonExists(ctx, "pikachu-alola"))
		assert.True(t, d.PokemonExists(ctx, "pikachu"))
	}
	assert.Equal(t, 1, fs.count("/pokemon/pikachu-alola"))
	assert.Equal(t, 1, fs.count("/pokemon/pikachu"))

	// The probe body landed in the persistent cache.
	require.NotNil(t, d.Pokemon(ctx, "pikachu"))
	assert.Equal(t, 1, fs.count("/pokemon/pikachu"))
}

func TestPokemonExistsTransientNotMemoized(t *testing.T) {
	ctx := context.Background()
	d, fs, _ := newTestDex(t)

	assert.False(t, d.PokemonExists(ctx, "flaky"))
	assert.False(t, d.PokemonExists(ctx, "flaky"))
	assert.Equal(t, 2, fs.count("/pokemon/flaky"))
}

func TestPokedex(t *testing.T) {
	d, _, _ := newTestDex(t)

	dex := d.Pokedex(context.Background(), "kanto")
	require.NotNil(t, dex)
	require.Len(t, dex.PokemonEntries, 2)
	assert.Equal(t, "pikachu", dex.PokemonEntries[1].PokemonSpecies.Name)
}

func TestInvalidateAll(t *testing.T) {
	ctx := context.Background()
	d, fs, cache := newTestDex(t)

	require.NotNil(t, d.Mini(ctx, "pikachu"))
	d.PokemonExists(ctx, "pikachu-alola")
	d.VersionToGeneration(ctx, "red")
	require.Positive(t, cache.Len())

	require.NoError(t, d.InvalidateAll(ctx))

	for name, n := range d.CacheSizes() {
		assert.Zero(t, n, "cache %s not reset", name)
	}
	assert.Zero(t, cache.Len())

	require.NotNil(t, d.Pokemon(ctx, "pikachu"))
	assert.Equal(t, 2, fs.count("/pokemon/pikachu"))
}

func TestCacheSizes(t *testing.T) {
	ctx := context.Background()
	d, _, _ := newTestDex(t)

	d.Species(ctx, "pikachu")
	d.Pokemon(ctx, "pikachu")

	sizes := d.CacheSizes()
	assert.Equal(t, 1, sizes["species"])
	assert.Equal(t, 1, sizes["pokemon"])
	assert.Equal(t, 1, sizes["exists"])
	assert.Zero(t, sizes["move"])
}
