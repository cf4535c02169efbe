package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
)

var (
	AgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")). // Soft green
			Bold(true)

	AlertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Medium gray

	BorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")) // Soft blue
)

// Formatter renders agent output for the terminal, with an optional color
// toggle for plain environments.
type Formatter struct {
	colored bool
}

func NewFormatter(colored bool) *Formatter {
	return &Formatter{colored: colored}
}

func (f *Formatter) FormatAgentResponse(msg string) string {
	prefix := "Agent: "
	if f.colored {
		prefix = AgentStyle.Render("Agent: ")
	}
	return prefix + msg
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

// FormatAlert renders the interruption printed when a reminder fires while
// the user is at the prompt.
func (f *Formatter) FormatAlert(r reminder.Reminder) string {
	msg := fmt.Sprintf("!!! ALERT !!! Reminder: '%s' is DUE NOW at %s (ID: %s...)",
		r.Message, r.ScheduledTime.Format("2006-01-02 15:04 MST"), r.ShortID())
	if f.colored {
		return AlertStyle.Render(msg)
	}
	return msg
}

// FormatHelp renders the markdown command reference.
func (f *Formatter) FormatHelp(markdown string) string {
	if f.colored {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if out, err := renderer.Render(markdown); err == nil {
				return out
			}
		}
	}
	return markdown
}

func (f *Formatter) FormatWelcome(backend string) string {
	if f.colored {
		titleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

		valueStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

		topBorder := BorderStyle.Render("╭─────────────────────────────────────────╮")
		bottomBorder := BorderStyle.Render("╰─────────────────────────────────────────╯")
		sideBorder := BorderStyle.Render("│")

		title := titleStyle.Render("Reminder Agent")
		storeLine := DimStyle.Render("Store: ") + valueStyle.Render(backend)
		helpLine := DimStyle.Render("Type 'help' for commands, 'exit' to quit")

		padLine := func(content string, width int) string {
			contentLen := lipgloss.Width(content)
			if contentLen < width {
				return content + strings.Repeat(" ", width-contentLen)
			}
			return content
		}

		boxWidth := 39
		lines := []string{
			"",
			topBorder,
			sideBorder + " " + padLine(title, boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine(storeLine, boxWidth) + " " + sideBorder,
			sideBorder + " " + padLine(helpLine, boxWidth) + " " + sideBorder,
			bottomBorder,
			"",
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{
		"",
		"Welcome to the Reminder Agent CLI!",
		fmt.Sprintf("Store: %s", backend),
		"Type 'help' for available commands, 'exit' to quit.",
		"",
	}

	return strings.Join(lines, "\n")
}
