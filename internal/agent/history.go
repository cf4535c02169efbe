package agent

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// History records the conversation as "Role> message" lines and can
// persist them to a plain text file between runs.
type History struct {
	mu    sync.Mutex
	lines []string
	path  string
}

// NewHistory creates a History persisted at path. An empty path keeps the
// history in memory only.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Append records one side of an exchange.
func (h *History) Append(role, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, fmt.Sprintf("%s> %s", role, message))
}

// Lines returns a copy of the recorded conversation.
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// Render formats the history for display.
func (h *History) Render() string {
	lines := h.Lines()
	if len(lines) == 0 {
		return "History is empty."
	}

	var b strings.Builder
	b.WriteString("\n--- Command History ---\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	b.WriteString("-----------------------")
	return b.String()
}

// Load reads previously saved history. A missing file is not an error.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load history: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			h.lines = append(h.lines, line)
		}
	}
	return nil
}

// Save writes the history back to its file.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}

	lines := h.Lines()
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(h.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
