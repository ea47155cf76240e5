package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dex <pokedex>",
		Short: "List the species of a pokedex (national, kanto, updated-alola, ...)",
		Args:  cobra.ExactArgs(1),
		Run:   runDex,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max entries (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runDex(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	pd := a.dex.Pokedex(cmd.Context(), args[0])
	if pd == nil {
		notFound("pokedex", args[0])
	}
	entries := pd.PokemonEntries
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if !textOutput() {
		printJSON(entries)
		return
	}
	for _, e := range entries {
		fmt.Printf("%4d  %s\n", e.EntryNumber, e.PokemonSpecies.Name)
	}
}
