package dex

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/rcliao/dexcache/internal/model"
	"github.com/rcliao/dexcache/internal/typechart"
)

const english = "en"

// cleanText collapses the line and page breaks embedded in game text.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00ad\n", "")
	return strings.Join(strings.Fields(s), " ")
}

// EnglishEffect returns the English short effect (or full effect when no
// short one exists) with $effect_chance substituted.
func EnglishEffect(entries []model.EffectEntry, chance *int) string {
	for _, e := range entries {
		if e.Language.Name != english {
			continue
		}
		text := e.ShortEffect
		if text == "" {
			text = e.Effect
		}
		if chance != nil {
			text = strings.ReplaceAll(text, "$effect_chance", strconv.Itoa(*chance))
		}
		return cleanText(text)
	}
	return ""
}

func (d *Dex) entryGeneration(ctx context.Context, e model.FlavorTextEntry) int {
	switch {
	case e.VersionGroup != nil:
		return d.VersionGroupToGeneration(ctx, e.VersionGroup.Name)
	case e.Version != nil:
		return d.VersionToGeneration(ctx, e.Version.Name).GenerationNumber
	default:
		return model.UnknownGeneration
	}
}

// FlavorText selects English flavor text. With a generation filter the last
// entry from that generation wins; without one, or when the filter matches
// nothing, the entry from the newest known generation wins.
func (d *Dex) FlavorText(ctx context.Context, entries []model.FlavorTextEntry, generation int) string {
	var matched, newest string
	newestGen := 0
	for _, e := range entries {
		if e.Language.Name != english || e.Body() == "" {
			continue
		}
		gen := d.entryGeneration(ctx, e)
		if generation > 0 && gen == generation {
			matched = e.Body()
		}
		rank := gen
		if gen == model.UnknownGeneration {
			rank = 0
		}
		if newest == "" || rank >= newestGen {
			newest, newestGen = e.Body(), rank
		}
	}
	if matched != "" {
		return cleanText(matched)
	}
	return cleanText(newest)
}

func nameOr(r *model.NamedResource, fallback string) string {
	if r == nil || r.Name == "" {
		return fallback
	}
	return r.Name
}

// Mini returns the compact projection of a pokemon, memoized by name.
func (d *Dex) Mini(ctx context.Context, name string) *model.PokemonMini {
	name = normalize(name)
	if m, ok := d.minis.get(name); ok {
		return m
	}
	p := d.Pokemon(ctx, name)
	if p == nil {
		return nil
	}
	m := MiniOf(p)
	d.minis.put(name, m)
	return m
}

// MiniOf projects a pokemon payload. Types are ordered by slot; a pokemon
// without types gets typechart.Unknown.
func MiniOf(p *model.Pokemon) *model.PokemonMini {
	slots := append([]model.PokemonType(nil), p.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	types := make([]string, 0, len(slots))
	for _, t := range slots {
		types = append(types, t.Type.Name)
	}
	if len(types) == 0 {
		types = []string{typechart.Unknown}
	}
	return &model.PokemonMini{
		ID:     p.ID,
		Name:   p.Name,
		Types:  types,
		Sprite: p.Sprites.FrontDefault,
	}
}

// MoveDetail projects a move for display, or returns nil if it is absent.
func (d *Dex) MoveDetail(ctx context.Context, name string, generation int) *model.MoveDetail {
	m := d.Move(ctx, name)
	if m == nil {
		return nil
	}
	return &model.MoveDetail{
		Name:        m.Name,
		Type:        nameOr(m.Type, typechart.Unknown),
		DamageClass: nameOr(m.DamageClass, "unknown"),
		Power:       m.Power,
		Accuracy:    m.Accuracy,
		PP:          m.PP,
		Priority:    m.Priority,
		Effect:      EnglishEffect(m.EffectEntries, m.EffectChance),
		FlavorText:  d.FlavorText(ctx, m.FlavorTextEntries, generation),
	}
}

// AbilityDetail projects an ability for display, or returns nil if it is absent.
func (d *Dex) AbilityDetail(ctx context.Context, name string, generation int) *model.AbilityDetail {
	a := d.Ability(ctx, name)
	if a == nil {
		return nil
	}
	return &model.AbilityDetail{
		Name:       a.Name,
		Effect:     EnglishEffect(a.EffectEntries, nil),
		FlavorText: d.FlavorText(ctx, a.FlavorTextEntries, generation),
	}
}

// ItemDetail projects an item for display, or returns nil if it is absent.
func (d *Dex) ItemDetail(ctx context.Context, name string, generation int) *model.ItemDetail {
	it := d.Item(ctx, name)
	if it == nil {
		return nil
	}
	detail := &model.ItemDetail{
		Name:       it.Name,
		Category:   nameOr(it.Category, "unknown"),
		Cost:       it.Cost,
		Effect:     EnglishEffect(it.EffectEntries, nil),
		FlavorText: d.FlavorText(ctx, it.FlavorTextEntries, generation),
		Sprite:     it.Sprites.Default,
	}
	if it.Category != nil {
		if cat := d.ItemCategory(ctx, it.Category.Name); cat != nil {
			detail.Pocket = nameOr(cat.Pocket, "")
		}
	}
	return detail
}
