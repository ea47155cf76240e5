package evolution

import (
	"testing"

	"github.com/rcliao/dexcache/internal/model"
)

func TestEdgeLabel(t *testing.T) {
	tests := []struct {
		name    string
		details []model.EvolutionDetail
		want    string
	}{
		{"no details", nil, Placeholder},
		{"empty detail without trigger", []model.EvolutionDetail{{}}, Placeholder},
		{"trade trigger only", []model.EvolutionDetail{{Trigger: res("trade")}}, "Trade"},
		{"level-up trigger only", []model.EvolutionDetail{{Trigger: res("level-up")}}, "Level Up"},
		{"use-item trigger only", []model.EvolutionDetail{{Trigger: res("use-item")}}, "Use Item"},
		{"unusual trigger", []model.EvolutionDetail{{Trigger: res("three-critical-hits")}}, "Three Critical Hits"},
		{
			"friendship at night",
			[]model.EvolutionDetail{{Trigger: res("level-up"), MinHappiness: intp(160), TimeOfDay: "night"}},
			"Friendship 160+ • During Night",
		},
		{
			"trade holding item",
			[]model.EvolutionDetail{{Trigger: res("trade"), HeldItem: res("metal-coat")}},
			"Holding Metal Coat",
		},
		{
			"multiple detail records",
			[]model.EvolutionDetail{
				{Trigger: res("level-up"), Location: res("eterna-forest")},
				{Trigger: res("use-item"), Item: res("leaf-stone")},
			},
			"At Eterna Forest • Use Leaf Stone",
		},
		{
			"physical stats",
			[]model.EvolutionDetail{{Trigger: res("level-up"), MinLevel: intp(20), RelativePhysicalStats: intp(1)}},
			"Level 20 • Attack > Defense",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeLabel(tt.details); got != tt.want {
				t.Errorf("EdgeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClausesFixedOrder(t *testing.T) {
	d := model.EvolutionDetail{
		Item:                  res("moon-stone"),
		RelativePhysicalStats: intp(-1),
		Gender:                intp(1),
		TurnUpsideDown:        true,
		NeedsOverworldRain:    true,
		TradeSpecies:          res("shelmet"),
		PartyType:             res("dark"),
		PartySpecies:          res("remoraid"),
		HeldItem:              res("oval-stone"),
		KnownMoveType:         res("fairy"),
		KnownMove:             res("ancient-power"),
		Location:              res("mt-coronet"),
		TimeOfDay:             "day",
		MinBeauty:             intp(171),
		MinAffection:          intp(2),
		MinHappiness:          intp(220),
		MinLevel:              intp(30),
	}

	want := []string{
		"Level 30",
		"Friendship 220+",
		"Affection 2+",
		"Beauty 171+",
		"During Day",
		"At Mt Coronet",
		"Knows Ancient Power",
		"Knows a Fairy-type move",
		"Holding Oval Stone",
		"With Remoraid in party",
		"With a Dark-type in party",
		"Trade for Shelmet",
		"While raining",
		"Console upside down",
		"Female only",
		"Attack < Defense",
		"Use Moon Stone",
	}

	got := Clauses(d)
	if len(got) != len(want) {
		t.Fatalf("got %d clauses, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("clause %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("king-s-rock"); got != "King S Rock" {
		t.Errorf("Title = %q", got)
	}
}
