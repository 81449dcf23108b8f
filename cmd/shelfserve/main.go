/*
Package main implements the product suggestion server and CLI application.

ShelfServe merges a static product catalog, a per-user learned-product
store, and a recency/frequency-weighted usage history into one ranked,
deduplicated suggestion list with fuzzy recall. It can operate as a
MessagePack IPC server for integration with shopping-list frontends, or as
a CLI application for testing and debugging.

# Usage

Start the server with default settings:

	shelfserve

Use a custom store directory and enable debug mode:

	shelfserve -store /path/to/store -d

Run in CLI mode for interactive testing:

	shelfserve -c -limit 6 -lang de

# Configuration

Runtime configuration is managed through a TOML file with built-in
defaults:

	[suggest]
	max_suggestions = 6
	history_weight = 2.0
	default_language = "en"
	fallback_category = "other"

	[fuzzy]
	threshold = 0.4
	name_weight = 0.7
	alias_weight = 0.3
	max_query_len = 64

	[history]
	max_age_days = 180
	min_count_to_keep = 3

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Suggestion
requests are processed synchronously with microsecond timing information
included in responses.

Send a suggestion request:

	{"id": "req1", "cmd": "suggest", "q": "mil", "lang": "en", "l": 6}

Receive ranked suggestions:

	{"id": "req1", "s": [{"n": "milk", "cat": "dairy", "sc": 0.95, "why": "fuzzy", "r": 1}], "c": 1, "t": 120}

Accepted items flow back through the learn command, which updates the
usage history and persists it immediately:

	{"id": "req2", "cmd": "learn", "name": "oat milk", "lang": "en"}

# Persistence

The usage history and learned products persist as JSON blobs through a
key-value adapter. The default backend writes one file per table in the
store directory; -backend sqlite keeps both in a single embedded SQLite
database instead. Corrupt or unreadable data degrades to empty tables
instead of failing, so suggestion quality falls back to catalog-only
results rather than crashing data entry.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/shelfserve/internal/cli"
	"github.com/bastiangx/shelfserve/internal/logger"
	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/bastiangx/shelfserve/pkg/catalog"
	"github.com/bastiangx/shelfserve/pkg/config"
	"github.com/bastiangx/shelfserve/pkg/fuzzy"
	"github.com/bastiangx/shelfserve/pkg/history"
	"github.com/bastiangx/shelfserve/pkg/server"
	"github.com/bastiangx/shelfserve/pkg/store"
	"github.com/bastiangx/shelfserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "shelfserve"
	gh      = "https://github.com/bastiangx/shelfserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	storeDir := flag.String("store", "", "Directory for the persisted history and learned tables")
	backend := flag.String("backend", defaultConfig.Store.Backend, "Persistence backend: file or sqlite")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	langCode := flag.String("lang", defaultConfig.Suggest.DefaultLanguage, "Catalog language (en, de)")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ ShelfServe ] Serves really fast product suggestions!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetDefault(logger.NewWithConfig(AppName, log.DebugLevel, false, true, log.TextFormatter))
	} else {
		log.SetDefault(logger.NewWithConfig("", log.WarnLevel, false, false, log.TextFormatter))
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	log.Debugf("Using config dir: %s", pathResolver.GetConfigDir())

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	dir := *storeDir
	if dir == "" {
		dir = appConfig.Store.Dir
	}
	resolvedStoreDir, err := pathResolver.GetStoreDir(dir)
	if err != nil {
		log.Fatalf("Failed to resolve store dir: (%v)", err)
	}
	log.Debugf("Using store dir at: %s", resolvedStoreDir)

	kv, cleanup, err := openBackend(*backend, resolvedStoreDir)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", *backend, err)
	}
	defer cleanup()

	matcher := fuzzy.NewMatcher(fuzzy.Options{
		Threshold:   appConfig.Fuzzy.Threshold,
		NameWeight:  appConfig.Fuzzy.NameWeight,
		AliasWeight: appConfig.Fuzzy.AliasWeight,
		MaxQueryLen: appConfig.Fuzzy.MaxQueryLen,
	})
	engine := suggest.NewEngine(
		matcher,
		history.NewStore(kv, appConfig.Suggest.HistoryWeight),
		history.NewLearnedStore(kv),
		suggest.Options{
			MaxSuggestions:   appConfig.Suggest.MaxSuggestions,
			FallbackCategory: appConfig.Suggest.FallbackCategory,
			MaxAgeDays:       appConfig.History.MaxAgeDays,
			MinCountToKeep:   appConfig.History.MinCountToKeep,
		},
	)

	lang := catalog.ParseLanguage(*langCode)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"lang", lang.Code(),
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(engine, lang, appConfig.CLI.DefaultMaxLen, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(resolvedStoreDir, *backend)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openBackend builds the persistence adapter for the selected backend.
func openBackend(backend, dir string) (store.KV, func(), error) {
	switch backend {
	case "sqlite":
		kv, err := store.NewSQLiteKV(filepath.Join(dir, "shelfserve.db"))
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	case "file", "":
		kv, err := store.NewFileKV(dir)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(storeDir, backend string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" ShelfServe ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("store dir: ( %s ) backend: %s", storeDir, backend)
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
