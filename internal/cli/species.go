package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/dex"
	"github.com/rcliao/dexcache/internal/model"
)

type speciesOutput struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Genus      string             `json:"genus,omitempty"`
	Generation int                `json:"generation"`
	Default    string             `json:"default_variety"`
	Varieties  []string           `json:"varieties"`
	Displayed  *model.PokemonMini `json:"displayed,omitempty"`
	FlavorText string             `json:"flavor_text,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "species <name>",
		Short: "Show a species and the pokemon displayed for it",
		Args:  cobra.ExactArgs(1),
		Run:   runSpecies,
	}

	cmd.Flags().StringP("context", "c", "", "Display context (pokedex name, e.g. updated-alola)")
	cmd.Flags().IntP("gen", "g", 0, "Prefer flavor text from this generation")

	RootCmd.AddCommand(cmd)
}

func runSpecies(cmd *cobra.Command, args []string) {
	displayContext, _ := cmd.Flags().GetString("context")
	gen, _ := cmd.Flags().GetInt("gen")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	ctx := cmd.Context()
	sp := a.dex.Species(ctx, args[0])
	if sp == nil {
		notFound("species", args[0])
	}

	out := speciesOutput{
		ID:         sp.ID,
		Name:       sp.Name,
		Generation: model.UnknownGeneration,
		Default:    a.dex.DefaultVariety(ctx, sp.Name),
		Varieties:  []string{},
		FlavorText: a.dex.FlavorText(ctx, sp.FlavorTextEntries, gen),
	}
	for _, g := range sp.Genera {
		if g.Language.Name == "en" {
			out.Genus = g.Genus
			break
		}
	}
	if sp.Generation != nil {
		out.Generation = dex.GenerationFromSlug(sp.Generation.Name)
	}
	for _, v := range sp.Varieties {
		out.Varieties = append(out.Varieties, v.Pokemon.Name)
	}
	if p := a.dex.ResolveDisplayVariant(ctx, sp.Name, displayContext); p != nil {
		out.Displayed = dex.MiniOf(p)
	}

	printJSON(out)
}
