// Command mcp-reminder provides an MCP server for reminder management.
//
// This server provides tools for creating, listing and deleting reminders
// stored in a SQLite database, plus natural-language time resolution.
//
// Usage:
//
//	./mcp-reminder          # Start MCP server (stdio)
//	./mcp-reminder --help   # Show help
//
// Environment:
//
//	REMINDER_DB_PATH  Path to SQLite database (default: ~/.reminder-agent/reminders.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/agha-moutsim/reminder-agent/internal/mcpserver"
	"github.com/agha-moutsim/reminder-agent/internal/scheduler"
	"github.com/agha-moutsim/reminder-agent/internal/store"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		}
	}

	dbPath := os.Getenv("REMINDER_DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".reminder-agent")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create config directory: %v\n", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(dir, "reminders.db")
	}

	st, err := store.NewSQLite(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	s := mcpserver.NewServer(scheduler.New(st))

	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`MCP Reminder Server - Reminder management via MCP protocol

USAGE:
    mcp-reminder          Start MCP server (communicates via stdio)
    mcp-reminder --help   Show this help

ENVIRONMENT:
    REMINDER_DB_PATH  Path to SQLite database file
                      Default: ~/.reminder-agent/reminders.db

TOOLS:
    add_reminder            Add a one-time reminder (message, due_date or when)
    add_recurring_reminder  Add a recurring reminder (daily, weekly, monthly, yearly)
    list_reminders          List reminders (optional include_past)
    get_due_reminders       Get reminders that are due or overdue
    get_reminder            Get a single reminder by ID
    delete_reminder         Delete a reminder permanently
    parse_time              Resolve a natural-language time phrase to UTC`)
}
