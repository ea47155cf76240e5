package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/typechart"
)

func init() {
	types := &cobra.Command{
		Use:   "types [attack defend1 [defend2]]",
		Short: "List types, or the multiplier of an attack against a defender",
		Args:  cobra.RangeArgs(0, 3),
		Run:   runTypes,
	}
	matchups := &cobra.Command{
		Use:   "matchups <type1> [type2]",
		Short: "Show attacking types that are not neutral against a defender",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runMatchups,
	}

	RootCmd.AddCommand(types, matchups)
}

func checkTypes(names ...string) {
	for _, n := range names {
		if n != "" && !typechart.IsType(n) {
			exitErr("type", fmt.Errorf("unknown type %q (want one of %s)", n, strings.Join(typechart.Types(), ", ")))
		}
	}
}

// defendingTypes lowercases one or two defending types. A repeated second
// type is dropped: a pokemon never carries the same type twice.
func defendingTypes(args []string) (string, string) {
	defend1, defend2 := strings.ToLower(args[0]), ""
	if len(args) > 1 {
		defend2 = strings.ToLower(args[1])
	}
	if defend2 == defend1 {
		defend2 = ""
	}
	return defend1, defend2
}

func runTypes(cmd *cobra.Command, args []string) {
	switch len(args) {
	case 0:
		printJSON(typechart.Types())
		return
	case 1:
		exitErr("types", fmt.Errorf("need an attacking and a defending type"))
	}

	attack := strings.ToLower(args[0])
	defend1, defend2 := defendingTypes(args[1:])
	checkTypes(attack, defend1, defend2)

	m := typechart.Effectiveness(attack, defend1, defend2)
	if textOutput() {
		fmt.Printf("%gx\n", m)
		return
	}
	printJSON(map[string]interface{}{
		"attack":     attack,
		"defend":     strings.TrimSuffix(defend1+"/"+defend2, "/"),
		"multiplier": m,
	})
}

func runMatchups(cmd *cobra.Command, args []string) {
	defend1, defend2 := defendingTypes(args)
	checkTypes(defend1, defend2)

	matchups := typechart.Matchups(defend1, defend2)
	if !textOutput() {
		printJSON(matchups)
		return
	}
	for _, m := range matchups {
		fmt.Printf("%5gx  %s\n", m.Multiplier, strings.Join(m.Types, ", "))
	}
}
