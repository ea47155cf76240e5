package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	move := &cobra.Command{
		Use:   "move <name>",
		Short: "Show a move's type, category, power and effect",
		Args:  cobra.ExactArgs(1),
		Run:   runMove,
	}
	ability := &cobra.Command{
		Use:   "ability <name>",
		Short: "Show an ability's effect",
		Args:  cobra.ExactArgs(1),
		Run:   runAbility,
	}
	item := &cobra.Command{
		Use:   "item <name>",
		Short: "Show an item's category, pocket and effect",
		Args:  cobra.ExactArgs(1),
		Run:   runItem,
	}

	for _, cmd := range []*cobra.Command{move, ability, item} {
		cmd.Flags().IntP("gen", "g", 0, "Prefer flavor text from this generation")
		RootCmd.AddCommand(cmd)
	}
}

func runMove(cmd *cobra.Command, args []string) {
	gen, _ := cmd.Flags().GetInt("gen")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	m := a.dex.MoveDetail(cmd.Context(), args[0], gen)
	if m == nil {
		notFound("move", args[0])
	}
	printJSON(m)
}

func runAbility(cmd *cobra.Command, args []string) {
	gen, _ := cmd.Flags().GetInt("gen")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	ab := a.dex.AbilityDetail(cmd.Context(), args[0], gen)
	if ab == nil {
		notFound("ability", args[0])
	}
	printJSON(ab)
}

func runItem(cmd *cobra.Command, args []string) {
	gen, _ := cmd.Flags().GetInt("gen")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	it := a.dex.ItemDetail(cmd.Context(), args[0], gen)
	if it == nil {
		notFound("item", args[0])
	}
	printJSON(it)
}
