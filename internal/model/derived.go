package model

// UnknownGeneration sorts after every real generation number.
const UnknownGeneration = 999

// VersionGenerationMeta is the resolved generation of a version.
type VersionGenerationMeta struct {
	GenerationNumber int    `json:"generation"`
	VersionGroup     string `json:"version_group"`
}

// VariantEntry is one displayable form of a species.
type VariantEntry struct {
	Label       string `json:"label"`
	PokemonName string `json:"pokemon"`
}

// VariantCatalog groups the forms of one species. The base entry is always
// first in Variants.
type VariantCatalog struct {
	Variants []VariantEntry `json:"variants"`
	Mega     []VariantEntry `json:"mega"`
	Gmax     []VariantEntry `json:"gmax"`
	Other    []VariantEntry `json:"other"`
}

// Learn methods used as movepool buckets.
const (
	LearnLevelUp = "level-up"
	LearnMachine = "machine"
	LearnTutor   = "tutor"
	LearnEgg     = "egg"
	LearnOther   = "other"
)

// LearnBuckets lists the movepool buckets in display order.
var LearnBuckets = []string{LearnLevelUp, LearnMachine, LearnTutor, LearnEgg, LearnOther}

// MoveLearnRecord is the representative learn detail of one move.
// Level is nil for methods other than level-up.
type MoveLearnRecord struct {
	Name         string `json:"name"`
	Level        *int   `json:"level"`
	VersionGroup string `json:"version_group"`
}

// Movepool maps a learn bucket to its ordered records.
type Movepool map[string][]MoveLearnRecord

// Count returns the total number of records across buckets.
func (m Movepool) Count() int {
	n := 0
	for _, recs := range m {
		n += len(recs)
	}
	return n
}

// PokemonMini is the compact projection used in listings.
type PokemonMini struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
	Sprite string   `json:"sprite,omitempty"`
}

// MoveDetail is the compact display record of a move.
type MoveDetail struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DamageClass string `json:"damage_class"`
	Power       *int   `json:"power"`
	Accuracy    *int   `json:"accuracy"`
	PP          *int   `json:"pp"`
	Priority    int    `json:"priority"`
	Effect      string `json:"effect"`
	FlavorText  string `json:"flavor_text,omitempty"`
}

// AbilityDetail is the compact display record of an ability.
type AbilityDetail struct {
	Name       string `json:"name"`
	Effect     string `json:"effect"`
	FlavorText string `json:"flavor_text,omitempty"`
}

// ItemDetail is the compact display record of an item.
type ItemDetail struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Pocket     string `json:"pocket,omitempty"`
	Cost       int    `json:"cost"`
	Effect     string `json:"effect"`
	FlavorText string `json:"flavor_text,omitempty"`
	Sprite     string `json:"sprite,omitempty"`
}
