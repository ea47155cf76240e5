// Package dex resolves species, forms, generations and display projections on
// top of the cached API client. A Dex owns every in-memory lookup cache.
package dex

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rcliao/dexcache/internal/evolution"
	"github.com/rcliao/dexcache/internal/model"
	"github.com/rcliao/dexcache/internal/pokeapi"
)

// Fetcher is the fetch-with-cache layer the Dex reads through.
type Fetcher interface {
	URL(kind, name string) string
	Probe(ctx context.Context, key string) pokeapi.Result
	Get(ctx context.Context, key string, out interface{}) bool
	Clear(ctx context.Context) error
}

// Dex is the application-wide context object. Create one per process and
// pass it by reference.
type Dex struct {
	api Fetcher
	log *log.Logger

	species        *memo[*model.Species]
	pokemon        *memo[*model.Pokemon]
	exists         *memo[bool]
	defaults       *memo[string]
	minis          *memo[*model.PokemonMini]
	versions       *memo[model.VersionGenerationMeta]
	versionGroups  *memo[int]
	chains         *memo[*model.EvolutionChain]
	graphs         *memo[*evolution.Graph]
	moves          *memo[*model.Move]
	abilities      *memo[*model.Ability]
	items          *memo[*model.Item]
	itemCategories *memo[*model.ItemCategory]
	pokedexes      *memo[*model.Pokedex]
}

// New creates a Dex reading through api. A nil logger discards output.
func New(api Fetcher, logger *log.Logger) *Dex {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Dex{
		api:            api,
		log:            logger,
		species:        newMemo[*model.Species](),
		pokemon:        newMemo[*model.Pokemon](),
		exists:         newMemo[bool](),
		defaults:       newMemo[string](),
		minis:          newMemo[*model.PokemonMini](),
		versions:       newMemo[model.VersionGenerationMeta](),
		versionGroups:  newMemo[int](),
		chains:         newMemo[*model.EvolutionChain](),
		graphs:         newMemo[*evolution.Graph](),
		moves:          newMemo[*model.Move](),
		abilities:      newMemo[*model.Ability](),
		items:          newMemo[*model.Item](),
		itemCategories: newMemo[*model.ItemCategory](),
		pokedexes:      newMemo[*model.Pokedex](),
	}
}

// normalize lowercases a name and turns spaces into hyphens so "Mr Mime"
// and "mr-mime" share a cache entry.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// load fetches kind/name into a fresh T and memoizes it. Failures are not
// memoized so a later call may succeed.
func load[T any](ctx context.Context, d *Dex, c *memo[*T], kind, name string) *T {
	name = normalize(name)
	if name == "" {
		return nil
	}
	if v, ok := c.get(name); ok {
		return v
	}
	v := new(T)
	if !d.api.Get(ctx, d.api.URL(kind, name), v) {
		return nil
	}
	c.put(name, v)
	return v
}

// Species returns the pokemon-species payload, or nil.
func (d *Dex) Species(ctx context.Context, name string) *model.Species {
	return load(ctx, d, d.species, "pokemon-species", name)
}

// Pokemon returns the pokemon payload, or nil.
func (d *Dex) Pokemon(ctx context.Context, name string) *model.Pokemon {
	p := load(ctx, d, d.pokemon, "pokemon", name)
	if p != nil {
		d.exists.put(normalize(name), true)
	}
	return p
}

// Move returns the move payload, or nil.
func (d *Dex) Move(ctx context.Context, name string) *model.Move {
	return load(ctx, d, d.moves, "move", name)
}

// Ability returns the ability payload, or nil.
func (d *Dex) Ability(ctx context.Context, name string) *model.Ability {
	return load(ctx, d, d.abilities, "ability", name)
}

// Item returns the item payload, or nil.
func (d *Dex) Item(ctx context.Context, name string) *model.Item {
	return load(ctx, d, d.items, "item", name)
}

// ItemCategory returns the item-category payload, or nil.
func (d *Dex) ItemCategory(ctx context.Context, name string) *model.ItemCategory {
	return load(ctx, d, d.itemCategories, "item-category", name)
}

// Pokedex returns a pokedex listing, or nil.
func (d *Dex) Pokedex(ctx context.Context, name string) *model.Pokedex {
	return load(ctx, d, d.pokedexes, "pokedex", name)
}

// chainKey drops the trailing slash species payloads carry so chain URLs
// match the keys built by URL.
func chainKey(url string) string {
	return strings.TrimRight(url, "/")
}

// EvolutionChain returns the chain at url (as given by a species payload), or nil.
func (d *Dex) EvolutionChain(ctx context.Context, url string) *model.EvolutionChain {
	url = chainKey(url)
	if url == "" {
		return nil
	}
	if c, ok := d.chains.get(url); ok {
		return c
	}
	var c model.EvolutionChain
	if !d.api.Get(ctx, url, &c) {
		return nil
	}
	d.chains.put(url, &c)
	return &c
}

// PokemonExists reports whether a pokemon named name can be fetched.
// Found and NotFound answers are remembered for the life of the Dex;
// transient failures answer false without being remembered.
func (d *Dex) PokemonExists(ctx context.Context, name string) bool {
	name = normalize(name)
	if name == "" {
		return false
	}
	if ok, cached := d.exists.get(name); cached {
		return ok
	}
	if _, ok := d.pokemon.get(name); ok {
		d.exists.put(name, true)
		return true
	}

	r := d.api.Probe(ctx, d.api.URL("pokemon", name))
	switch r.Outcome {
	case pokeapi.Found:
		d.exists.put(name, true)
		return true
	case pokeapi.NotFound:
		d.log.Printf("[DEX] %s does not exist", name)
		d.exists.put(name, false)
		return false
	default:
		d.log.Printf("[DEX] probe %s: %v", name, r.Err)
		return false
	}
}

// InvalidateAll empties every in-memory cache and the persistent cache.
func (d *Dex) InvalidateAll(ctx context.Context) error {
	d.species.reset()
	d.pokemon.reset()
	d.exists.reset()
	d.defaults.reset()
	d.minis.reset()
	d.versions.reset()
	d.versionGroups.reset()
	d.chains.reset()
	d.graphs.reset()
	d.moves.reset()
	d.abilities.reset()
	d.items.reset()
	d.itemCategories.reset()
	d.pokedexes.reset()

	if err := d.api.Clear(ctx); err != nil {
		return fmt.Errorf("clear persistent cache: %w", err)
	}
	return nil
}

// CacheSizes returns the number of entries in each in-memory cache.
func (d *Dex) CacheSizes() map[string]int {
	return map[string]int{
		"species":         d.species.len(),
		"pokemon":         d.pokemon.len(),
		"exists":          d.exists.len(),
		"default_variety": d.defaults.len(),
		"mini":            d.minis.len(),
		"version":         d.versions.len(),
		"version_group":   d.versionGroups.len(),
		"evolution_chain": d.chains.len(),
		"evolution_graph": d.graphs.len(),
		"move":            d.moves.len(),
		"ability":         d.abilities.len(),
		"item":            d.items.len(),
		"item_category":   d.itemCategories.len(),
		"pokedex":         d.pokedexes.len(),
	}
}
