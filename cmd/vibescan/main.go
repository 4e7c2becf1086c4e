package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"vibescan/internal/core/app"
	"vibescan/internal/core/config"
	"vibescan/internal/ui/report"
)

var (
	configPath  = flag.String("config", "", "Path to optional TOML config file")
	workers     = flag.Int("workers", 0, "Override worker count (0 = config/NumCPU)")
	historyPath = flag.String("history", "", "Override history database path")
	showHistory = flag.Bool("show-history", false, "Print recorded runs for the path and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("vibescan v%s\n", VERSION)
		os.Exit(0)
	}

	// stdout carries exactly one JSON record; all diagnostics go to stderr.
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *historyPath != "" {
		cfg.HistoryPath = *historyPath
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <repo_path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	root := flag.Arg(0)

	if _, err := os.Stat(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: repository path does not exist: %s\n", root)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		_ = report.WriteError(os.Stdout, err.Error())
		os.Exit(1)
	}
	defer a.Close()

	if *showHistory {
		if err := printHistory(a, root); err != nil {
			slog.Error("failed to read history", "error", err)
			os.Exit(1)
		}
		return
	}

	result, err := a.Analyze(context.Background(), root)
	if err != nil {
		slog.Error("analysis failed", "root", root, "error", err)
		_ = report.WriteError(os.Stdout, err.Error())
		os.Exit(1)
	}

	if err := report.WriteJSON(os.Stdout, result); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}

func printHistory(a *app.App, root string) error {
	store := a.History()
	if store == nil {
		return fmt.Errorf("history is not enabled; set -history or history_path in the config")
	}
	snapshots, err := store.LoadSnapshots(app.RootKey(root), time.Time{})
	if err != nil {
		return err
	}
	return json.NewEncoder(os.Stdout).Encode(snapshots)
}
