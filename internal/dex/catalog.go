package dex

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rcliao/dexcache/internal/evolution"
	"github.com/rcliao/dexcache/internal/model"
)

// probeLimit bounds concurrent existence probes while building a catalog.
const probeLimit = 4

// BaseLabel labels the base form in a catalog.
const BaseLabel = "Base"

// Label derives the display label of candidate relative to the base name.
func Label(base, candidate string) string {
	if candidate == base {
		return BaseLabel
	}
	rest := strings.TrimPrefix(candidate, base+"-")
	switch rest {
	case "gmax":
		return "Gigantamax"
	case "mega":
		return "Mega"
	case "mega-x":
		return "Mega X"
	case "mega-y":
		return "Mega Y"
	}
	return evolution.Title(rest)
}

func isRegional(name string) bool {
	for _, s := range RegionalSuffixes {
		if strings.Contains(name, "-"+s) {
			return true
		}
	}
	return false
}

type bucket int

const (
	bucketVariant bucket = iota
	bucketMega
	bucketGmax
	bucketOther
)

func classify(base, name string) bucket {
	switch {
	case name == base || isRegional(name):
		return bucketVariant
	case strings.Contains(name, "-mega"):
		return bucketMega
	case strings.Contains(name, "-gmax"):
		return bucketGmax
	default:
		return bucketOther
	}
}

// catalogCandidates returns the species' varieties followed by the base
// pokemon's forms, without duplicates.
func (d *Dex) catalogCandidates(ctx context.Context, species *model.Species, base string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	if species != nil {
		for _, v := range species.Varieties {
			add(v.Pokemon.Name)
		}
	}
	if p := d.Pokemon(ctx, base); p != nil {
		for _, f := range p.Forms {
			add(f.Name)
		}
	}
	return out
}

// BuildCatalog groups every existing form of a species into variant, mega,
// gigantamax and other buckets. The base entry is always first among the
// variants, followed by non-regional then regional forms.
func (d *Dex) BuildCatalog(ctx context.Context, species *model.Species, base string) model.VariantCatalog {
	base = normalize(base)
	candidates := d.catalogCandidates(ctx, species, base)

	exists := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeLimit)
	for i, name := range candidates {
		g.Go(func() error {
			exists[i] = d.PokemonExists(gctx, name)
			return nil
		})
	}
	_ = g.Wait()

	cat := model.VariantCatalog{
		Variants: []model.VariantEntry{},
		Mega:     []model.VariantEntry{},
		Gmax:     []model.VariantEntry{},
		Other:    []model.VariantEntry{},
	}
	hasBase := false
	for i, name := range candidates {
		if !exists[i] {
			continue
		}
		entry := model.VariantEntry{Label: Label(base, name), PokemonName: name}
		switch classify(base, name) {
		case bucketVariant:
			if name == base {
				hasBase = true
			}
			cat.Variants = append(cat.Variants, entry)
		case bucketMega:
			cat.Mega = append(cat.Mega, entry)
		case bucketGmax:
			cat.Gmax = append(cat.Gmax, entry)
		default:
			cat.Other = append(cat.Other, entry)
		}
	}
	if !hasBase {
		cat.Variants = append([]model.VariantEntry{{Label: BaseLabel, PokemonName: base}}, cat.Variants...)
	}

	sort.SliceStable(cat.Variants, func(i, j int) bool {
		a, b := cat.Variants[i], cat.Variants[j]
		if ab, bb := a.PokemonName == base, b.PokemonName == base; ab != bb {
			return ab
		}
		if ar, br := isRegional(a.PokemonName), isRegional(b.PokemonName); ar != br {
			return !ar
		}
		return a.Label < b.Label
	})
	byLabel(cat.Mega)
	byLabel(cat.Gmax)
	byLabel(cat.Other)
	return cat
}

func byLabel(entries []model.VariantEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
}
