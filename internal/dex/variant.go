package dex

import (
	"context"
	"strings"

	"github.com/rcliao/dexcache/internal/model"
)

// regionalDexes maps a token in a pokedex (display context) name to the
// pokemon-name suffix of that region's forms. Order matters: the first
// matching token wins.
var regionalDexes = []struct {
	token  string
	suffix string
}{
	{"alola", "alola"},
	{"galar", "galar"},
	{"isle-of-armor", "galar"},
	{"crown-tundra", "galar"},
	{"hisui", "hisui"},
	{"paldea", "paldea"},
	{"kitakami", "paldea"},
	{"blueberry", "paldea"},
}

// RegionalSuffixes are the name tokens that mark a regional form.
var RegionalSuffixes = []string{"alola", "galar", "hisui", "paldea"}

// RegionalSuffix returns the regional form suffix for a display context such
// as "updated-alola", or "" when the context is not regional.
func RegionalSuffix(displayContext string) string {
	displayContext = normalize(displayContext)
	for _, r := range regionalDexes {
		if strings.Contains(displayContext, r.token) {
			return r.suffix
		}
	}
	return ""
}

// DefaultVariety returns the name of the species' default pokemon. When the
// species cannot be fetched or lists no varieties, the species name itself is
// returned.
func (d *Dex) DefaultVariety(ctx context.Context, species string) string {
	species = normalize(species)
	if v, ok := d.defaults.get(species); ok {
		return v
	}

	sp := d.Species(ctx, species)
	if sp == nil {
		// Not memoized: the species lookup may succeed later.
		return species
	}

	name := species
	for _, v := range sp.Varieties {
		if v.IsDefault {
			name = v.Pokemon.Name
			break
		}
	}
	if name == species && len(sp.Varieties) > 0 && !hasVariety(sp, species) {
		name = sp.Varieties[0].Pokemon.Name
	}

	d.defaults.put(species, name)
	return name
}

func hasVariety(sp *model.Species, name string) bool {
	for _, v := range sp.Varieties {
		if v.Pokemon.Name == name {
			return true
		}
	}
	return false
}

// ResolveDisplayVariant picks the concrete pokemon to show for a species in
// a display context. A regional form is probed only when the context is
// regional. It returns nil when nothing resolves.
func (d *Dex) ResolveDisplayVariant(ctx context.Context, species, displayContext string) *model.Pokemon {
	species = normalize(species)
	base := d.DefaultVariety(ctx, species)

	if suffix := RegionalSuffix(displayContext); suffix != "" {
		regional := base + "-" + suffix
		if d.PokemonExists(ctx, regional) {
			if p := d.Pokemon(ctx, regional); p != nil {
				return p
			}
		}
	}

	if d.PokemonExists(ctx, base) {
		if p := d.Pokemon(ctx, base); p != nil {
			return p
		}
	}

	if base != species && d.PokemonExists(ctx, species) {
		return d.Pokemon(ctx, species)
	}

	d.log.Printf("[DEX] no displayable variant for %s", species)
	return nil
}
