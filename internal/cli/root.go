// Package cli implements the dexcache CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/dexcache/internal/config"
	"github.com/rcliao/dexcache/internal/dex"
	"github.com/rcliao/dexcache/internal/pokeapi"
	"github.com/rcliao/dexcache/internal/store"
)

var (
	dbPath     string
	apiURL     string
	formatFlag string
	verbose    bool
	noDedup    bool
	noPersist  bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dexcache",
	Short: "Cached PokeAPI browser",
	Long:  "Browse species, forms, moves and evolutions from PokeAPI through a local SQLite response cache.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Cache database path (default: $DEXCACHE_DB or ~/.dexcache/cache.db)")
	RootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API root (default: $DEXCACHE_API_URL or "+config.DefaultBaseURL+")")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log cache and network activity to stderr")
	RootCmd.PersistentFlags().BoolVar(&noDedup, "no-dedup", false, "Do not share in-flight requests for the same URL")
	RootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "Keep responses in memory only")
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}
	if verbose {
		cfg.Verbose = true
	}
	if noDedup {
		cfg.Dedup = false
	}
	return cfg
}

func newLogger(cfg *config.Config) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// app bundles everything a command needs to answer queries.
type app struct {
	cfg    *config.Config
	log    *log.Logger
	sqlite *store.SQLiteStore
	api    *pokeapi.Client
	dex    *dex.Dex
}

func (a *app) Close() {
	c := a.api.Counters()
	a.log.Printf("[FETCH] cache hits=%d network=%d failures=%d", c.CacheHits, c.NetworkCalls, c.Failures)
	if a.sqlite != nil {
		a.sqlite.Close()
	}
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(loadConfig().DBPath)
}

func openDex() (*app, error) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	a := &app{cfg: cfg, log: logger}
	var cache store.Cache
	if noPersist {
		cache = store.NewMemoryStore()
	} else {
		s, err := store.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		a.sqlite = s
		cache = s
	}

	a.api = pokeapi.New(cache, pokeapi.NewTransport(cfg.Timeout, cfg.UserAgent), pokeapi.Options{
		BaseURL: cfg.BaseURL,
		Dedup:   cfg.Dedup,
		Logger:  logger,
	})
	a.dex = dex.New(a.api, logger)
	return a, nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func textOutput() bool {
	return formatFlag == "text"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func notFound(kind, name string) {
	exitErr(kind, fmt.Errorf("%q: %w", name, pokeapi.ErrNotFound))
}
