// Package model defines the decoded PokeAPI payloads and the records derived
// from them.
package model

// NamedResource is a reference to another resource: {name, url}.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Species is a pokemon-species payload.
type Species struct {
	ID                int                `json:"id"`
	Name              string             `json:"name"`
	Varieties         []Variety          `json:"varieties"`
	EvolutionChain    *ResourceURL       `json:"evolution_chain"`
	FlavorTextEntries []FlavorTextEntry  `json:"flavor_text_entries"`
	Genera            []Genus            `json:"genera"`
	Names             []LocalizedName    `json:"names"`
	Generation        *NamedResource     `json:"generation"`
	PokedexNumbers    []PokedexNumberRef `json:"pokedex_numbers"`
}

// Variety is one concrete pokemon belonging to a species.
type Variety struct {
	IsDefault bool          `json:"is_default"`
	Pokemon   NamedResource `json:"pokemon"`
}

// ResourceURL is an unnamed resource reference.
type ResourceURL struct {
	URL string `json:"url"`
}

// Genus is a localized category name ("Seed Pokémon").
type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// LocalizedName is a name in one language.
type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// PokedexNumberRef is a species' entry number in a pokedex.
type PokedexNumberRef struct {
	EntryNumber int           `json:"entry_number"`
	Pokedex     NamedResource `json:"pokedex"`
}

// FlavorTextEntry is localized descriptive text. Species entries are keyed by
// Version; move, ability and item entries by VersionGroup. Items use Text
// instead of FlavorText.
type FlavorTextEntry struct {
	FlavorText   string         `json:"flavor_text"`
	Text         string         `json:"text"`
	Language     NamedResource  `json:"language"`
	Version      *NamedResource `json:"version,omitempty"`
	VersionGroup *NamedResource `json:"version_group,omitempty"`
}

// Body returns whichever text field is populated.
func (e FlavorTextEntry) Body() string {
	if e.FlavorText != "" {
		return e.FlavorText
	}
	return e.Text
}

// EffectEntry is a localized effect description.
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// Pokemon is a pokemon (variant) payload.
type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	IsDefault bool             `json:"is_default"`
	Height    int              `json:"height"`
	Weight    int              `json:"weight"`
	Species   NamedResource    `json:"species"`
	Types     []PokemonType    `json:"types"`
	Forms     []NamedResource  `json:"forms"`
	Abilities []PokemonAbility `json:"abilities"`
	Stats     []PokemonStat    `json:"stats"`
	Moves     []PokemonMove    `json:"moves"`
	Sprites   Sprites          `json:"sprites"`
}

// PokemonType is a typed slot.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonAbility is an ability slot.
type PokemonAbility struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// PokemonStat is a base stat value.
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// PokemonMove is a learnable move with its per-version-group learn details.
type PokemonMove struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

// VersionGroupDetail describes how a move is learned in one version group.
type VersionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

// Sprites holds the sprite URLs used for display.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	Default      string `json:"default"`
}

// EvolutionChain is an evolution-chain payload.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of an evolution tree. EvolutionDetails describe the
// edge from the parent to this node.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one set of conditions under which an evolution occurs.
type EvolutionDetail struct {
	Trigger               *NamedResource `json:"trigger"`
	Item                  *NamedResource `json:"item"`
	Gender                *int           `json:"gender"`
	HeldItem              *NamedResource `json:"held_item"`
	KnownMove             *NamedResource `json:"known_move"`
	KnownMoveType         *NamedResource `json:"known_move_type"`
	Location              *NamedResource `json:"location"`
	MinLevel              *int           `json:"min_level"`
	MinHappiness          *int           `json:"min_happiness"`
	MinBeauty             *int           `json:"min_beauty"`
	MinAffection          *int           `json:"min_affection"`
	NeedsOverworldRain    bool           `json:"needs_overworld_rain"`
	PartySpecies          *NamedResource `json:"party_species"`
	PartyType             *NamedResource `json:"party_type"`
	RelativePhysicalStats *int           `json:"relative_physical_stats"`
	TimeOfDay             string         `json:"time_of_day"`
	TradeSpecies          *NamedResource `json:"trade_species"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
}

// Move is a move payload.
type Move struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Accuracy          *int              `json:"accuracy"`
	Power             *int              `json:"power"`
	PP                *int              `json:"pp"`
	Priority          int               `json:"priority"`
	EffectChance      *int              `json:"effect_chance"`
	Type              *NamedResource    `json:"type"`
	DamageClass       *NamedResource    `json:"damage_class"`
	EffectEntries     []EffectEntry     `json:"effect_entries"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Generation        *NamedResource    `json:"generation"`
}

// Ability is an ability payload.
type Ability struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	EffectEntries     []EffectEntry     `json:"effect_entries"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Generation        *NamedResource    `json:"generation"`
}

// Item is an item payload.
type Item struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Cost              int               `json:"cost"`
	Category          *NamedResource    `json:"category"`
	EffectEntries     []EffectEntry     `json:"effect_entries"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Sprites           Sprites           `json:"sprites"`
}

// ItemCategory is an item-category payload.
type ItemCategory struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Pocket *NamedResource `json:"pocket"`
}

// Pokedex is a pokedex listing payload.
type Pokedex struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	IsMainSeries   bool           `json:"is_main_series"`
	PokemonEntries []PokedexEntry `json:"pokemon_entries"`
}

// PokedexEntry is one species in a pokedex listing.
type PokedexEntry struct {
	EntryNumber    int           `json:"entry_number"`
	PokemonSpecies NamedResource `json:"pokemon_species"`
}

// Version is a version payload.
type Version struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	VersionGroup NamedResource `json:"version_group"`
}

// VersionGroup is a version-group payload.
type VersionGroup struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Generation NamedResource   `json:"generation"`
	Versions   []NamedResource `json:"versions"`
}
