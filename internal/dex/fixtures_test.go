package dex

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rcliao/dexcache/internal/pokeapi"
	"github.com/rcliao/dexcache/internal/store"
)

// fixtures maps API paths (relative to /api/v2) to response bodies. The
// token {{base}} expands to the server's API root. A body of "!500" answers
// with an internal server error.
var fixtures = map[string]string{
	"/pokemon-species/pikachu": `{"id":25,"name":"pikachu",
		"varieties":[{"is_default":true,"pokemon":{"name":"pikachu"}}],
		"evolution_chain":{"url":"{{base}}/evolution-chain/10/"}}`,
	"/pokemon/pikachu": `{"id":25,"name":"pikachu","is_default":true,
		"types":[{"slot":1,"type":{"name":"electric"}}],
		"forms":[{"name":"pikachu"}],
		"sprites":{"front_default":"https://img.test/25.png"}}`,

	"/pokemon-species/vulpix": `{"id":37,"name":"vulpix",
		"varieties":[{"is_default":true,"pokemon":{"name":"vulpix"}},{"is_default":false,"pokemon":{"name":"vulpix-alola"}}]}`,
	"/pokemon/vulpix":       `{"id":37,"name":"vulpix","types":[{"slot":1,"type":{"name":"fire"}}],"forms":[{"name":"vulpix"}]}`,
	"/pokemon/vulpix-alola": `{"id":10103,"name":"vulpix-alola","types":[{"slot":1,"type":{"name":"ice"}}],"forms":[{"name":"vulpix-alola"}]}`,

	"/pokemon-species/charizard": `{"id":6,"name":"charizard","varieties":[
		{"is_default":true,"pokemon":{"name":"charizard"}},
		{"is_default":false,"pokemon":{"name":"charizard-mega-y"}},
		{"is_default":false,"pokemon":{"name":"charizard-mega-x"}},
		{"is_default":false,"pokemon":{"name":"charizard-gmax"}}]}`,
	"/pokemon/charizard": `{"id":6,"name":"charizard","types":[{"slot":2,"type":{"name":"flying"}},{"slot":1,"type":{"name":"fire"}}],
		"forms":[{"name":"charizard"}]}`,
	"/pokemon/charizard-mega-x": `{"id":10034,"name":"charizard-mega-x"}`,
	"/pokemon/charizard-mega-y": `{"id":10035,"name":"charizard-mega-y"}`,
	"/pokemon/charizard-gmax":   `{"id":10196,"name":"charizard-gmax"}`,

	"/pokemon-species/meowth": `{"id":52,"name":"meowth","varieties":[
		{"is_default":true,"pokemon":{"name":"meowth"}},
		{"is_default":false,"pokemon":{"name":"meowth-galar"}},
		{"is_default":false,"pokemon":{"name":"meowth-alola"}},
		{"is_default":false,"pokemon":{"name":"meowth-gmax"}}]}`,
	"/pokemon/meowth":       `{"id":52,"name":"meowth","forms":[{"name":"meowth"},{"name":"meowth-ghost"}]}`,
	"/pokemon/meowth-alola": `{"id":10107,"name":"meowth-alola"}`,
	"/pokemon/meowth-galar": `{"id":10161,"name":"meowth-galar"}`,
	"/pokemon/meowth-gmax":  `{"id":10200,"name":"meowth-gmax"}`,

	"/pokemon-species/tauros": `{"id":128,"name":"tauros","varieties":[
		{"is_default":true,"pokemon":{"name":"tauros"}},
		{"is_default":false,"pokemon":{"name":"tauros-paldea-combat-breed"}},
		{"is_default":false,"pokemon":{"name":"tauros-paldea-blaze-breed"}}]}`,
	"/pokemon/tauros":                     `{"id":128,"name":"tauros"}`,
	"/pokemon/tauros-paldea-combat-breed": `{"id":10250,"name":"tauros-paldea-combat-breed"}`,
	"/pokemon/tauros-paldea-blaze-breed":  `{"id":10251,"name":"tauros-paldea-blaze-breed"}`,

	"/pokemon-species/oricorio": `{"id":741,"name":"oricorio",
		"varieties":[{"is_default":true,"pokemon":{"name":"oricorio-baile"}}]}`,
	"/pokemon/oricorio": `{"id":741,"name":"oricorio"}`,

	"/pokemon-species/phantom": `{"id":9999,"name":"phantom",
		"varieties":[{"is_default":true,"pokemon":{"name":"phantom-shade"}}]}`,

	"/pokemon/flaky": "!500",

	"/pokemon-species/bulbasaur": `{"id":1,"name":"bulbasaur",
		"varieties":[{"is_default":true,"pokemon":{"name":"bulbasaur"}}],
		"evolution_chain":{"url":"{{base}}/evolution-chain/1/"}}`,
	"/evolution-chain/1": `{"id":1,"chain":{"species":{"name":"bulbasaur"},"evolution_details":[],"evolves_to":[
		{"species":{"name":"ivysaur"},"evolution_details":[{"trigger":{"name":"level-up"},"min_level":16}],"evolves_to":[
			{"species":{"name":"venusaur"},"evolution_details":[{"trigger":{"name":"level-up"},"min_level":32}],"evolves_to":[]}]}]}}`,
	"/evolution-chain/10": `{"id":10,"chain":{"species":{"name":"pichu"},"evolution_details":[],"evolves_to":[
		{"species":{"name":"pikachu"},"evolution_details":[{"trigger":{"name":"level-up"},"min_happiness":220}],"evolves_to":[
			{"species":{"name":"raichu"},"evolution_details":[{"trigger":{"name":"use-item"},"item":{"name":"thunder-stone"}}],"evolves_to":[]}]}]}}`,

	"/version/red":                  `{"id":1,"name":"red","version_group":{"name":"red-blue"}}`,
	"/version/sword":                `{"id":33,"name":"sword","version_group":{"name":"sword-shield"}}`,
	"/version/weird":                `{"id":99,"name":"weird","version_group":{"name":"weird-group"}}`,
	"/version-group/red-blue":       `{"id":1,"name":"red-blue","generation":{"name":"generation-i"}}`,
	"/version-group/sword-shield":   `{"id":20,"name":"sword-shield","generation":{"name":"generation-viii"}}`,
	"/version-group/weird-group":    `{"id":99,"name":"weird-group","generation":{"name":"generation-x"}}`,
	"/version-group/scarlet-violet": `{"id":25,"name":"scarlet-violet","generation":{"name":"generation-ix"}}`,

	"/move/thunderbolt": `{"id":85,"name":"thunderbolt","power":90,"accuracy":100,"pp":15,"priority":0,"effect_chance":10,
		"type":{"name":"electric"},"damage_class":{"name":"special"},
		"effect_entries":[
			{"effect":"Inflicts regular damage.","short_effect":"Has a $effect_chance% chance to paralyze the target.","language":{"name":"en"}},
			{"effect":"x","short_effect":"Kann paralysieren.","language":{"name":"de"}}],
		"flavor_text_entries":[
			{"flavor_text":"A strong electric\nattack.","language":{"name":"en"},"version_group":{"name":"red-blue"}},
			{"flavor_text":"A strong electric blast crashes down\fon the target.","language":{"name":"en"},"version_group":{"name":"sword-shield"}},
			{"flavor_text":"Une attaque.","language":{"name":"fr"},"version_group":{"name":"scarlet-violet"}}]}`,
	"/move/splash": `{"id":150,"name":"splash","power":null,"accuracy":null,"pp":40,"priority":0,
		"effect_entries":[],"flavor_text_entries":[]}`,

	"/ability/static": `{"id":9,"name":"static",
		"effect_entries":[{"effect":"Whenever a move makes contact with this Pokémon, the move's user has a 30% chance of being paralyzed.","short_effect":"","language":{"name":"en"}}],
		"flavor_text_entries":[{"flavor_text":"The body contains\nstatic electricity.","language":{"name":"en"},"version_group":{"name":"sword-shield"}}]}`,

	"/item/potion": `{"id":17,"name":"potion","cost":200,"category":{"name":"healing"},
		"effect_entries":[{"effect":"Restores 20 HP.","short_effect":"Restores 20 HP.","language":{"name":"en"}}],
		"flavor_text_entries":[{"text":"A spray-type medicine.","language":{"name":"en"},"version_group":{"name":"sword-shield"}}],
		"sprites":{"default":"https://img.test/potion.png"}}`,
	"/item-category/healing": `{"id":27,"name":"healing","pocket":{"name":"medicine"}}`,

	"/pokedex/kanto": `{"id":2,"name":"kanto","is_main_series":true,"pokemon_entries":[
		{"entry_number":1,"pokemon_species":{"name":"bulbasaur"}},
		{"entry_number":25,"pokemon_species":{"name":"pikachu"}}]}`,
}

type fixtureServer struct {
	*httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

func (fs *fixtureServer) count(path string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.hits["/api/v2"+path]
}

func (fs *fixtureServer) total() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n := 0
	for _, c := range fs.hits {
		n += c
	}
	return n
}

func newFixtureServer(t *testing.T) *fixtureServer {
	t.Helper()
	fs := &fixtureServer{hits: map[string]int{}}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.hits[r.URL.Path]++
		fs.mu.Unlock()

		body, ok := fixtures[strings.TrimPrefix(r.URL.Path, "/api/v2")]
		switch {
		case !ok:
			http.NotFound(w, r)
		case body == "!500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(strings.ReplaceAll(body, "{{base}}", fs.URL+"/api/v2")))
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func newTestDex(t *testing.T) (*Dex, *fixtureServer, *store.MemoryStore) {
	t.Helper()
	fs := newFixtureServer(t)
	cache := store.NewMemoryStore()
	api := pokeapi.New(cache, pokeapi.NewTransport(2*time.Second, ""), pokeapi.Options{
		BaseURL: fs.URL + "/api/v2",
		Dedup:   true,
	})
	return New(api, nil), fs, cache
}
