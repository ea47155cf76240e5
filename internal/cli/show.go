package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/dex"
	"github.com/rcliao/dexcache/internal/settings"
	"github.com/rcliao/dexcache/internal/view"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <species>",
		Short: "Build the full detail view of a species",
		Long:  "Resolve the displayed form, its variant catalog and its evolution chain. The display context defaults to the dex in settings.",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	cmd.Flags().StringP("context", "c", "", "Display context (default: the dex setting)")

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	displayContext, _ := cmd.Flags().GetString("context")

	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	if displayContext == "" {
		st, err := settings.Load(a.cfg.SettingsPath)
		if err != nil {
			exitErr("load settings", err)
		}
		displayContext = st.Dex
	}

	tracker := view.NewTracker()
	s := tracker.Open("detail", args[0])

	// Interrupting retires the session so a late result is dropped.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		tracker.CloseAll()
	}()

	var result *dex.View
	err = a.dex.BuildView(ctx, s, args[0], displayContext, func(v *dex.View) { result = v })
	if errors.Is(err, dex.ErrStale) || errors.Is(ctx.Err(), context.Canceled) {
		exitErr("show", fmt.Errorf("interrupted"))
	}
	if err != nil {
		exitErr("show", err)
	}
	if result.Pokemon == nil {
		notFound("species", args[0])
	}

	printJSON(result)
}
