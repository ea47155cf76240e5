package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/dexcache/internal/settings"
)

func init() {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and change preferences",
	}

	get := &cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSettingsGet,
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting (theme, zoom, dex, toggle.<name>)",
		Args:  cobra.ExactArgs(2),
		Run:   runSettingsSet,
	}

	cmd.AddCommand(get, set)
	RootCmd.AddCommand(cmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) {
	path := loadConfig().SettingsPath
	st, err := settings.Load(path)
	if err != nil {
		exitErr("load settings", err)
	}

	if len(args) == 0 {
		b, _ := yaml.Marshal(st)
		fmt.Print(string(b))
		return
	}
	v, err := st.Get(args[0])
	if err != nil {
		exitErr("get", err)
	}
	fmt.Println(v)
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	path := loadConfig().SettingsPath
	st, err := settings.Load(path)
	if err != nil {
		exitErr("load settings", err)
	}

	if err := st.Set(args[0], args[1]); err != nil {
		exitErr("set", err)
	}
	if err := st.Save(path); err != nil {
		exitErr("save settings", err)
	}

	fmt.Println(`{"ok":true}`)
}
