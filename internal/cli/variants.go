package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "variants <species>",
		Short: "List the regional, mega, gigantamax and other forms of a species",
		Args:  cobra.ExactArgs(1),
		Run:   runVariants,
	}

	RootCmd.AddCommand(cmd)
}

func runVariants(cmd *cobra.Command, args []string) {
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
	cat := a.dex.BuildCatalog(ctx, sp, a.dex.DefaultVariety(ctx, sp.Name))

	if !textOutput() {
		printJSON(cat)
		return
	}
	groups := []struct {
		title   string
		entries []model.VariantEntry
	}{
		{"Variants", cat.Variants},
		{"Mega", cat.Mega},
		{"Gigantamax", cat.Gmax},
		{"Other", cat.Other},
	}
	for _, g := range groups {
		if len(g.entries) == 0 {
			continue
		}
		fmt.Println(g.title + ":")
		for _, e := range g.entries {
			fmt.Printf("  %-24s %s\n", e.Label, e.PokemonName)
		}
	}
}
