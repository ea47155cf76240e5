package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "evolution <species>",
		Short: "Show the evolution chain of a species",
		Args:  cobra.ExactArgs(1),
		Run:   runEvolution,
	}

	RootCmd.AddCommand(cmd)
}

func runEvolution(cmd *cobra.Command, args []string) {
	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	g := a.dex.EvolutionGraph(cmd.Context(), args[0])
	if g == nil {
		notFound("evolution chain", args[0])
	}

	if !textOutput() {
		printJSON(g)
		return
	}
	if len(g.Edges) == 0 {
		fmt.Printf("%s does not evolve\n", g.Nodes[0])
		return
	}
	for _, e := range g.Edges {
		fmt.Printf("%s -> %s (%s)\n", e.From, e.To, e.Label)
	}
}
