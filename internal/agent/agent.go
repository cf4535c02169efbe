// Package agent implements the conversational command processor: it turns
// free-form text ("remind me to buy milk tomorrow at 8 AM", "list",
// "delete reminder 3f2a") into scheduler operations and human-readable
// responses. Terminal I/O lives in the repl package; agent is pure text in,
// text out, which keeps the grammar testable.
package agent

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
	"github.com/agha-moutsim/reminder-agent/internal/scheduler"
)

// DisplayTime is how instants are rendered in agent responses.
const DisplayTime = "2006-01-02 15:04 MST"

var (
	deleteRe      = regexp.MustCompile(`^delete reminder ([0-9a-f-]+)$`)
	listTypeRe    = regexp.MustCompile(`^list (task|birthday|appointment) reminders$`)
	recurringRe   = regexp.MustCompile(`^set (.+?)\s+reminder(?: for)?\s+(.+?)\s+(daily|weekly|monthly|yearly)$`)
	timeKeywordRe = regexp.MustCompile(`(?i)(tomorrow|today|in \d+\s*(?:min|hour|day)s?)`)

	// One comprehensive pattern for one-time creation: an optional command
	// prefix, the message, an optional preposition-introduced time phrase,
	// and an optional trailing "remind me".
	flexibleRemindRe = regexp.MustCompile(
		`^(?:(?:set\s+(task|birthday|appointment)\s+reminder|remind me to|i have a|i need to)\s+)?(.+?)` +
			`(?:\s+(?:on|at|in|by|for)\s+(.+?))?` +
			`(?:\s+remind(?:s)?\s+me)?$`)

	messageNoiseRe = regexp.MustCompile(`(?i)^(i have a|i need to|remind me to)\s+`)
)

// Agent processes user commands against a scheduler.
type Agent struct {
	scheduler *scheduler.Scheduler
	history   *History
	now       func() time.Time
}

// New creates an Agent over the scheduler. history may be nil when
// conversation logging is not wanted.
func New(s *scheduler.Scheduler, history *History) *Agent {
	return &Agent{
		scheduler: s,
		history:   history,
		now:       time.Now,
	}
}

// WithClock overrides the time source used for resolving time phrases.
func (a *Agent) WithClock(now func() time.Time) *Agent {
	a.now = now
	return a
}

// Handle processes one line of user input and returns the agent's
// response. Both sides of the exchange are appended to the history.
func (a *Agent) Handle(input string) string {
	a.log("User", input)
	response := a.process(strings.TrimSpace(input))
	a.log("Agent", response)
	return response
}

func (a *Agent) log(role, message string) {
	if a.history != nil {
		a.history.Append(role, message)
	}
}

func (a *Agent) process(command string) string {
	lower := strings.ToLower(command)

	if m := deleteRe.FindStringSubmatch(lower); m != nil {
		return a.deleteByPrefix(m[1])
	}
	if lower == "delete" || lower == "delete reminder" {
		return "Please provide the ID of the reminder you want to delete, e.g. 'delete reminder 3f2a'."
	}

	if lower == "list" || lower == "l" || lower == "show me list" || strings.HasPrefix(lower, "list all reminders") {
		return a.listAll()
	}
	if m := listTypeRe.FindStringSubmatch(lower); m != nil {
		return a.listByType(m[1])
	}

	if m := recurringRe.FindStringSubmatch(lower); m != nil {
		return a.createRecurring(m[2], m[3])
	}

	if response, handled := a.createFlexible(lower); handled {
		return response
	}

	if response := smallTalk(lower); response != "" {
		return response
	}

	return "I didn't understand that command. Type 'help' for available commands."
}

func (a *Agent) deleteByPrefix(prefix string) string {
	all, err := a.scheduler.List(true)
	if err != nil {
		return fmt.Sprintf("Failed to look up reminders: %v", err)
	}

	var matches []reminder.Reminder
	for _, r := range all {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return fmt.Sprintf("No reminder found with ID starting with '%s'.", prefix)
	case 1:
		deleted, err := a.scheduler.Delete(matches[0].ID)
		if err != nil {
			return fmt.Sprintf("Failed to delete reminder: %v", err)
		}
		if !deleted {
			return fmt.Sprintf("Failed to delete reminder with ID '%s...'.", prefix)
		}
		return fmt.Sprintf("Reminder with ID '%s...' deleted.", prefix)
	default:
		return fmt.Sprintf("Multiple reminders match '%s...'. Please provide a more specific ID.", prefix)
	}
}

func (a *Agent) listAll() string {
	all, err := a.scheduler.List(true)
	if err != nil {
		return fmt.Sprintf("Failed to list reminders: %v", err)
	}
	if len(all) == 0 {
		return "No reminders found."
	}

	var b strings.Builder
	b.WriteString("\n--- Your Reminders ---\n")
	for _, r := range all {
		fmt.Fprintf(&b, "ID: %s..., Message: '%s', Due: %s, Type: %s\n",
			r.ShortID(), r.Message, r.ScheduledTime.Format(DisplayTime), r.Kind)
	}
	b.WriteString("----------------------")
	return b.String()
}

func (a *Agent) listByType(kind string) string {
	all, err := a.scheduler.List(true)
	if err != nil {
		return fmt.Sprintf("Failed to list reminders: %v", err)
	}

	keyword := strings.ToUpper(kind)
	var matches []reminder.Reminder
	for _, r := range all {
		if strings.Contains(strings.ToUpper(r.Message), keyword) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No %s reminders found.", keyword)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n--- Your %s%s Reminders ---\n", keyword[:1], strings.ToLower(keyword[1:]))
	for _, r := range matches {
		fmt.Fprintf(&b, "ID: %s..., Message: '%s', Due: %s, Type: %s\n",
			r.ShortID(), r.Message, r.ScheduledTime.Format(DisplayTime), r.Kind)
	}
	b.WriteString("----------------------")
	return b.String()
}

// Help returns the command reference shown for 'help', as markdown so the
// terminal renderer can style it.
func Help() string {
	return `# Reminder Agent

## Commands

- ` + "`remind me to <message> <time>`" + ` — e.g. *remind me to buy milk tomorrow at 8 AM*
- ` + "`set <task|birthday|appointment> reminder <message> <time>`" + ` — e.g. *set birthday reminder for John on Jan 15*
- ` + "`set <message> reminder <daily|weekly|monthly|yearly>`" + ` — recurring reminder
- ` + "`list`" + `, ` + "`l`" + `, ` + "`list all reminders`" + ` — show everything
- ` + "`list task|birthday|appointment reminders`" + ` — filtered listing
- ` + "`delete reminder <id prefix>`" + ` — remove a reminder
- ` + "`history`" + ` or ` + "`h`" + ` — show the conversation history
- ` + "`help`" + ` — this message
- ` + "`exit`" + ` — quit the agent

Time phrases: ` + "`tomorrow at 3pm`" + `, ` + "`today 5:30pm`" + `, ` + "`in 45 minutes`" + `,
` + "`Jan 15 2026 at 9 PM`" + `, ` + "`2025-12-31 23:59`" + `.
`
}
