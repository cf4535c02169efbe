// Command reminder-agent is the interactive CLI: describe a reminder in
// loose natural language and get alerted when it is due.
//
// Usage:
//
//	./reminder-agent                 # in-memory store
//	./reminder-agent -store sqlite   # persistent store
//
// Environment:
//
//	REMINDER_STORE_BACKEND, REMINDER_STORE_PATH, REMINDER_MONITOR_INTERVAL, ...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/agha-moutsim/reminder-agent/internal/agent"
	"github.com/agha-moutsim/reminder-agent/internal/config"
	"github.com/agha-moutsim/reminder-agent/internal/notify"
	"github.com/agha-moutsim/reminder-agent/internal/repl"
	"github.com/agha-moutsim/reminder-agent/internal/scheduler"
	"github.com/agha-moutsim/reminder-agent/internal/store"
	"github.com/agha-moutsim/reminder-agent/internal/ui"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	backend := flag.String("store", "", "Store backend: memory or sqlite (overrides config)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI flag overrides
	if *backend != "" {
		cfg.Store.Backend = *backend
	}
	if *noColor {
		cfg.UI.ColoredOutput = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	sched := scheduler.New(st)

	history := agent.NewHistory(historyPath(cfg))
	if err := history.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ag := agent.New(sched, history)
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput)

	replInstance, err := repl.NewREPL(ag, history, formatter, cfg.Store.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating REPL: %v\n", err)
		os.Exit(1)
	}

	sched.RegisterObserver(replInstance.AlertObserver())
	if cfg.Telegram.Enabled {
		sched.RegisterObserver(notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := scheduler.NewMonitor(sched, time.Duration(cfg.Monitor.Interval)*time.Second)
	go func() {
		if err := monitor.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Monitor error: %v\n", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nInterrupted. Saving history...")
		cancel()

		if err := replInstance.SaveHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to save history: %v\n", err)
		}

		os.Exit(0)
	}()

	if err := replInstance.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := replInstance.SaveHistory(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to save history: %v\n", err)
	}
}

func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		s, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

func historyPath(cfg *config.Config) string {
	if !cfg.Session.SaveHistory {
		return ""
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Session.HistoryFile), 0o755); err != nil {
		return ""
	}
	return cfg.Session.HistoryFile
}
