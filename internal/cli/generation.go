package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generation <version>",
		Short: "Resolve a game version (or version group) to its generation",
		Args:  cobra.ExactArgs(1),
		Run:   runGeneration,
	}

	cmd.Flags().Bool("group", false, "Treat the argument as a version group")

	RootCmd.AddCommand(cmd)
}

func runGeneration(cmd *cobra.Command, args []string) {
	group, _ := cmd.Flags().GetBool("group")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	var meta model.VersionGenerationMeta
	if group {
		meta = model.VersionGenerationMeta{
			GenerationNumber: a.dex.VersionGroupToGeneration(cmd.Context(), args[0]),
			VersionGroup:     args[0],
		}
	} else {
		meta = a.dex.VersionToGeneration(cmd.Context(), args[0])
	}

	if textOutput() {
		fmt.Println(meta.GenerationNumber)
		return
	}
	printJSON(meta)
}
