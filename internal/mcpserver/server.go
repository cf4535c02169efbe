// Package mcpserver exposes the reminder core over the Model Context
// Protocol so MCP-capable clients can manage reminders programmatically.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
	"github.com/agha-moutsim/reminder-agent/internal/scheduler"
	"github.com/agha-moutsim/reminder-agent/internal/timeparse"
)

const (
	serverName    = "reminder"
	serverVersion = "1.0.0"
)

// Server is the MCP server wrapping a reminder scheduler.
type Server struct {
	mcpServer *server.MCPServer
	scheduler *scheduler.Scheduler
}

// NewServer creates the MCP server over the given scheduler.
func NewServer(s *scheduler.Scheduler) *Server {
	srv := &Server{
		scheduler: s,
	}

	srv.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("add_reminder",
			mcp.WithDescription("Add a one-time reminder with a message and a due time"),
			mcp.WithString("message", mcp.Required(), mcp.Description("Reminder message")),
			mcp.WithString("due_date", mcp.Description("Due time in RFC3339 format (e.g. 2026-01-15T09:00:00Z)")),
			mcp.WithString("when", mcp.Description("Natural-language time phrase (e.g. 'tomorrow at 8 AM'), used when due_date is absent")),
		),
		s.handleAddReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("add_recurring_reminder",
			mcp.WithDescription("Add a recurring reminder (daily, weekly, monthly, yearly)"),
			mcp.WithString("message", mcp.Required(), mcp.Description("Reminder message")),
			mcp.WithString("kind", mcp.Required(), mcp.Description("Recurrence kind: daily, weekly, monthly, yearly")),
			mcp.WithString("start_date", mcp.Required(), mcp.Description("Series start in RFC3339 format; may be in the past")),
			mcp.WithString("details", mcp.Description("Recurrence details as a JSON object (required for weekly, monthly, yearly)")),
		),
		s.handleAddRecurring,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_reminders",
			mcp.WithDescription("List reminders, by default only those still in the future"),
			mcp.WithBoolean("include_past", mcp.Description("Include reminders whose due time has passed")),
		),
		s.handleListReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_due_reminders",
			mcp.WithDescription("Get all reminders that are due now or overdue"),
		),
		s.handleGetDueReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_reminder",
			mcp.WithDescription("Get a single reminder by its ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleGetReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("delete_reminder",
			mcp.WithDescription("Delete a reminder permanently"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleDeleteReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("parse_time",
			mcp.WithDescription("Resolve a natural-language time phrase to an absolute UTC instant"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Time phrase, e.g. 'tomorrow at 8 AM' or 'in 45 minutes'")),
		),
		s.handleParseTime,
	)
}

func (s *Server) handleAddReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := req.GetString("message", "")
	dueDateStr := req.GetString("due_date", "")
	when := req.GetString("when", "")

	if message == "" {
		return mcp.NewToolResultError("message is required"), nil
	}

	var dueAt time.Time
	switch {
	case dueDateStr != "":
		t, err := time.Parse(time.RFC3339, dueDateStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid due_date format: %v (use RFC3339, e.g. 2026-01-15T09:00:00Z)", err)), nil
		}
		dueAt = t.UTC()
	case when != "":
		dueAt = timeparse.Resolve(when, time.Now())
	default:
		return mcp.NewToolResultError("either due_date or when is required"), nil
	}

	r, err := s.scheduler.CreateOneTime(message, dueAt)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add reminder: %v", err)), nil
	}

	return jsonResult(r), nil
}

func (s *Server) handleAddRecurring(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := req.GetString("message", "")
	kind := req.GetString("kind", "")
	startStr := req.GetString("start_date", "")
	detailsStr := req.GetString("details", "")

	if message == "" {
		return mcp.NewToolResultError("message is required"), nil
	}
	if kind == "" {
		return mcp.NewToolResultError("kind is required"), nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid start_date format: %v (use RFC3339)", err)), nil
	}

	var details map[string]any
	if detailsStr != "" {
		if err := json.Unmarshal([]byte(detailsStr), &details); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid details: %v (must be a JSON object)", err)), nil
		}
	}

	r, err := s.scheduler.CreateRecurring(message, start.UTC(), reminder.Kind(kind), details)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add recurring reminder: %v", err)), nil
	}

	return jsonResult(r), nil
}

func (s *Server) handleListReminders(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	includePast := req.GetBool("include_past", false)

	reminders, err := s.scheduler.List(includePast)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reminders: %v", err)), nil
	}

	if len(reminders) == 0 {
		return mcp.NewToolResultText("No reminders found."), nil
	}

	return jsonResult(reminders), nil
}

func (s *Server) handleGetDueReminders(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all, err := s.scheduler.List(true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get due reminders: %v", err)), nil
	}

	now := time.Now().UTC()
	var due []reminder.Reminder
	for _, r := range all {
		if r.Due(now) {
			due = append(due, r)
		}
	}

	if len(due) == 0 {
		return mcp.NewToolResultText("No due reminders."), nil
	}

	return jsonResult(due), nil
}

func (s *Server) handleGetReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	r, found, err := s.scheduler.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get reminder: %v", err)), nil
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("reminder %s not found", id)), nil
	}

	return jsonResult(r), nil
}

func (s *Server) handleDeleteReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	deleted, err := s.scheduler.Delete(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete reminder: %v", err)), nil
	}
	if !deleted {
		return mcp.NewToolResultError(fmt.Sprintf("reminder %s not found", id)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reminder %s deleted.", id)), nil
}

func (s *Server) handleParseTime(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	resolved := timeparse.Resolve(text, time.Now())
	return mcp.NewToolResultText(resolved.Format(time.RFC3339)), nil
}

func jsonResult(v any) *mcp.CallToolResult {
	output, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(output))
}
