package evolution

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rcliao/dexcache/internal/model"
)

// Separator joins condition clauses.
const Separator = " • "

// Title turns a slug such as "use-item" into "Use Item".
func Title(slug string) string {
	// Casers carry state and must not be shared across goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// EdgeLabel describes every way an evolution can happen. Each detail record
// contributes its clauses, or its trigger phrase when it has no conditions.
func EdgeLabel(details []model.EvolutionDetail) string {
	var parts []string
	for _, d := range details {
		if s := FormatDetail(d); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, Separator)
}

// FormatDetail renders one detail record. Clauses appear in a fixed order;
// with no clauses the trigger phrase is used.
func FormatDetail(d model.EvolutionDetail) string {
	clauses := Clauses(d)
	if len(clauses) > 0 {
		return strings.Join(clauses, Separator)
	}
	if d.Trigger != nil && d.Trigger.Name != "" {
		return TriggerPhrase(d.Trigger.Name)
	}
	return ""
}

// TriggerPhrase returns the canonical phrase for an evolution trigger.
func TriggerPhrase(trigger string) string {
	switch trigger {
	case "trade":
		return "Trade"
	case "use-item":
		return "Use Item"
	case "level-up":
		return "Level Up"
	default:
		return Title(trigger)
	}
}

// Clauses lists the human-readable conditions present on d.
func Clauses(d model.EvolutionDetail) []string {
	var out []string
	add := func(format string, args ...interface{}) {
		out = append(out, fmt.Sprintf(format, args...))
	}

	if d.MinLevel != nil {
		add("Level %d", *d.MinLevel)
	}
	if d.MinHappiness != nil {
		add("Friendship %d+", *d.MinHappiness)
	}
	if d.MinAffection != nil {
		add("Affection %d+", *d.MinAffection)
	}
	if d.MinBeauty != nil {
		add("Beauty %d+", *d.MinBeauty)
	}
	if d.TimeOfDay != "" {
		add("During %s", Title(d.TimeOfDay))
	}
	if named(d.Location) {
		add("At %s", Title(d.Location.Name))
	}
	if named(d.KnownMove) {
		add("Knows %s", Title(d.KnownMove.Name))
	}
	if named(d.KnownMoveType) {
		add("Knows a %s-type move", Title(d.KnownMoveType.Name))
	}
	if named(d.HeldItem) {
		add("Holding %s", Title(d.HeldItem.Name))
	}
	if named(d.PartySpecies) {
		add("With %s in party", Title(d.PartySpecies.Name))
	}
	if named(d.PartyType) {
		add("With a %s-type in party", Title(d.PartyType.Name))
	}
	if named(d.TradeSpecies) {
		add("Trade for %s", Title(d.TradeSpecies.Name))
	}
	if d.NeedsOverworldRain {
		add("While raining")
	}
	if d.TurnUpsideDown {
		add("Console upside down")
	}
	if d.Gender != nil {
		add("%s only", genderName(*d.Gender))
	}
	if d.RelativePhysicalStats != nil {
		add("%s", physicalStats(*d.RelativePhysicalStats))
	}
	if named(d.Item) {
		add("Use %s", Title(d.Item.Name))
	}
	return out
}

func named(r *model.NamedResource) bool {
	return r != nil && r.Name != ""
}

// PokeAPI genders: 1 female, 2 male, 3 genderless.
func genderName(g int) string {
	switch g {
	case 1:
		return "Female"
	case 2:
		return "Male"
	default:
		return "Genderless"
	}
}

func physicalStats(rel int) string {
	switch {
	case rel > 0:
		return "Attack > Defense"
	case rel < 0:
		return "Attack < Defense"
	default:
		return "Attack = Defense"
	}
}
