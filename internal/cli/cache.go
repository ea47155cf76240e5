package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/model"
	"github.com/rcliao/dexcache/internal/store"
)

func init() {
	cache := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the response cache",
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		Run:   runCacheStats,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List cached responses",
		Run:   runCacheList,
	}
	list.Flags().String("kind", "", "Filter by resource kind (pokemon, move, ...)")
	list.Flags().String("prefix", "", "Filter by key prefix")
	list.Flags().IntP("limit", "l", 20, "Max results")
	list.Flags().Bool("keys-only", false, "Only output keys")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every cached response",
		Run:   runCacheClear,
	}

	rm := &cobra.Command{
		Use:   "rm <key>",
		Short: "Drop one cached response",
		Args:  cobra.ExactArgs(1),
		Run:   runCacheRm,
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Export cached responses as JSON",
		Run:   runCacheExport,
	}
	export.Flags().String("kind", "", "Filter by resource kind")

	imp := &cobra.Command{
		Use:   "import",
		Short: "Import cached responses from JSON",
		Long:  "Import cached responses from JSON on stdin. Expects the format produced by export.",
		Run:   runCacheImport,
	}

	cache.AddCommand(stats, list, clearCmd, rm, export, imp)
	RootCmd.AddCommand(cache)
}

func runCacheStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), loadConfig().DBPath)
	if err != nil {
		exitErr("stats", err)
	}

	printJSON(stats)
}

func runCacheList(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")
	prefix, _ := cmd.Flags().GetString("prefix")
	limit, _ := cmd.Flags().GetInt("limit")
	keysOnly, _ := cmd.Flags().GetBool("keys-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.List(cmd.Context(), store.ListParams{
		Kind:   kind,
		Prefix: prefix,
		Limit:  limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if keysOnly || textOutput() {
		for _, e := range entries {
			fmt.Println(e.Key)
		}
		return
	}

	printJSON(entries)
}

// runCacheClear goes through the Dex so in-memory state is dropped along
// with the persistent rows.
func runCacheClear(cmd *cobra.Command, args []string) {
	a, err := openDex()
	if err != nil {
		exitErr("open cache", err)
	}
	defer a.Close()

	if err := a.dex.InvalidateAll(cmd.Context()); err != nil {
		exitErr("clear", err)
	}

	fmt.Println(`{"ok":true}`)
}

func runCacheRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Delete(cmd.Context(), args[0]); err != nil {
		exitErr("rm", err)
	}

	fmt.Println(`{"ok":true}`)
}

func runCacheExport(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.ExportAll(cmd.Context(), kind)
	if err != nil {
		exitErr("export", err)
	}

	printJSON(entries)
}

func runCacheImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var entries []model.CacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), entries)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", imported)
}
