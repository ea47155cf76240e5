// Package typechart holds the static type-effectiveness table.
package typechart

import "sort"

// Unknown is the fallback type name for payloads without a type. It is never
// a chart key.
const Unknown = "unknown"

// types lists the eighteen battle types in canonical order.
var types = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// chart maps attacking type to defending type to multiplier. Pairs that are
// absent are neutral.
var chart = map[string]map[string]float64{
	"normal":   {"rock": 0.5, "ghost": 0, "steel": 0.5},
	"fire":     {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 2, "bug": 2, "rock": 0.5, "dragon": 0.5, "steel": 2},
	"water":    {"fire": 2, "water": 0.5, "grass": 0.5, "ground": 2, "rock": 2, "dragon": 0.5},
	"electric": {"water": 2, "electric": 0.5, "grass": 0.5, "ground": 0, "flying": 2, "dragon": 0.5},
	"grass":    {"fire": 0.5, "water": 2, "grass": 0.5, "poison": 0.5, "ground": 2, "flying": 0.5, "bug": 0.5, "rock": 2, "dragon": 0.5, "steel": 0.5},
	"ice":      {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 0.5, "ground": 2, "flying": 2, "dragon": 2, "steel": 0.5},
	"fighting": {"normal": 2, "ice": 2, "poison": 0.5, "flying": 0.5, "psychic": 0.5, "bug": 0.5, "rock": 2, "ghost": 0, "dark": 2, "steel": 2, "fairy": 0.5},
	"poison":   {"grass": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5, "steel": 0, "fairy": 2},
	"ground":   {"fire": 2, "electric": 2, "grass": 0.5, "poison": 2, "flying": 0, "bug": 0.5, "rock": 2, "steel": 2},
	"flying":   {"electric": 0.5, "grass": 2, "fighting": 2, "bug": 2, "rock": 0.5, "steel": 0.5},
	"psychic":  {"fighting": 2, "poison": 2, "psychic": 0.5, "dark": 0, "steel": 0.5},
	"bug":      {"fire": 0.5, "grass": 2, "fighting": 0.5, "poison": 0.5, "flying": 0.5, "psychic": 2, "ghost": 0.5, "dark": 2, "steel": 0.5, "fairy": 0.5},
	"rock":     {"fire": 2, "ice": 2, "fighting": 0.5, "ground": 0.5, "flying": 2, "bug": 2, "steel": 0.5},
	"ghost":    {"normal": 0, "psychic": 2, "ghost": 2, "dark": 0.5},
	"dragon":   {"dragon": 2, "steel": 0.5, "fairy": 0},
	"dark":     {"fighting": 0.5, "psychic": 2, "ghost": 2, "dark": 0.5, "fairy": 0.5},
	"steel":    {"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2, "rock": 2, "steel": 0.5, "fairy": 2},
	"fairy":    {"fire": 0.5, "fighting": 2, "poison": 0.5, "dragon": 2, "dark": 2, "steel": 0.5},
}

// Types returns the eighteen battle types in canonical order.
func Types() []string {
	return append([]string(nil), types...)
}

// IsType reports whether name is one of the eighteen battle types.
func IsType(name string) bool {
	_, ok := chart[name]
	return ok
}

func single(attack, defend string) float64 {
	if defend == "" {
		return 1
	}
	if m, ok := chart[attack][defend]; ok {
		return m
	}
	return 1
}

// Effectiveness returns the damage multiplier of attack against a defender
// with one or two types. Pass "" for defend2 on single-typed defenders.
func Effectiveness(attack, defend1, defend2 string) float64 {
	return single(attack, defend1) * single(attack, defend2)
}

// Matchup groups attacking types that share a multiplier.
type Matchup struct {
	Multiplier float64  `json:"multiplier"`
	Types      []string `json:"types"`
}

// Matchups returns every attacking type's multiplier against the defender,
// grouped by multiplier from highest to lowest. Neutral types are omitted.
func Matchups(defend1, defend2 string) []Matchup {
	groups := map[float64][]string{}
	for _, atk := range types {
		m := Effectiveness(atk, defend1, defend2)
		if m == 1 {
			continue
		}
		groups[m] = append(groups[m], atk)
	}

	out := make([]Matchup, 0, len(groups))
	for m, ts := range groups {
		out = append(out, Matchup{Multiplier: m, Types: ts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Multiplier > out[j].Multiplier })
	return out
}
