package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "moves <pokemon>",
		Short: "List the moves a pokemon learns, grouped by learn method",
		Args:  cobra.ExactArgs(1),
		Run:   runMoves,
	}

	cmd.Flags().IntP("gen", "g", 0, "Only moves learnable in this generation (0 = all)")
	cmd.Flags().String("filter", "", "Only moves whose name contains this text")
	cmd.Flags().StringP("version", "V", "", "Only moves learnable in this game version (overrides --gen)")

	RootCmd.AddCommand(cmd)
}

func runMoves(cmd *cobra.Command, args []string) {
	gen, _ := cmd.Flags().GetInt("gen")
	filter, _ := cmd.Flags().GetString("filter")
	version, _ := cmd.Flags().GetString("version")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	ctx := cmd.Context()
	p := a.dex.Pokemon(ctx, args[0])
	if p == nil {
		notFound("pokemon", args[0])
	}
	if version != "" {
		meta := a.dex.VersionToGeneration(ctx, version)
		if meta.GenerationNumber == model.UnknownGeneration {
			notFound("version", version)
		}
		gen = meta.GenerationNumber
	}

	pool := a.dex.BuildMovepool(ctx, p.Moves, gen, filter)

	if !textOutput() {
		printJSON(pool)
		return
	}
	for _, b := range model.LearnBuckets {
		recs := pool[b]
		if len(recs) == 0 {
			continue
		}
		fmt.Printf("%s (%d):\n", b, len(recs))
		for _, r := range recs {
			if r.Level != nil {
				fmt.Printf("  %3d  %s\n", *r.Level, r.Name)
			} else {
				fmt.Printf("       %s\n", r.Name)
			}
		}
	}
}
