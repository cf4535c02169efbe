package agent

import (
	"fmt"
	"strings"

	"github.com/agha-moutsim/reminder-agent/internal/reminder"
	"github.com/agha-moutsim/reminder-agent/internal/timeparse"
)

// createFlexible handles free-form one-time creation. It reports handled
// false only when the pattern cannot match at all (empty input); otherwise
// every outcome, including "no time found", is a response.
func (a *Agent) createFlexible(lower string) (string, bool) {
	m := flexibleRemindRe.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}

	typeAlias := m[1]
	message := strings.TrimSpace(messageNoiseRe.ReplaceAllString(strings.TrimSpace(m[2]), ""))
	timeExpr := strings.TrimSpace(m[3])

	if typeAlias == "" {
		typeAlias = inferTypeAlias(message)
	}

	// No preposition-introduced time phrase: look for a bare time keyword
	// inside the message itself and lift it out.
	if timeExpr == "" {
		if keyword := timeKeywordRe.FindString(message); keyword != "" {
			timeExpr = keyword
			message = strings.TrimSpace(strings.Replace(message, keyword, "", 1))
		}
	}

	if timeExpr == "" {
		if response := smallTalk(lower); response != "" {
			return response, true
		}
		return "Could not find a clear time in your command. Please specify 'on', 'at', 'in', or 'by' with a time expression.", true
	}

	dueAt := timeparse.Resolve(timeExpr, a.now())

	switch typeAlias {
	case "birthday":
		details := map[string]any{"month": int(dueAt.Month()), "day": dueAt.Day()}
		r, err := a.scheduler.CreateRecurring("BIRTHDAY: "+message, dueAt, reminder.KindYearly, details)
		if err != nil {
			return fmt.Sprintf("Error setting reminder: %v", err), true
		}
		return fmt.Sprintf("Birthday reminder set! ID: %s..., Message: '%s', Starts: %s",
			r.ShortID(), r.Message, r.ScheduledTime.Format(DisplayTime)), true

	case "task", "appointment":
		r, err := a.scheduler.CreateOneTime(strings.ToUpper(typeAlias)+": "+message, dueAt)
		if err != nil {
			return fmt.Sprintf("Error setting reminder: %v", err), true
		}
		label := strings.ToUpper(typeAlias[:1]) + typeAlias[1:]
		return fmt.Sprintf("%s reminder set! ID: %s..., Message: '%s', Due: %s",
			label, r.ShortID(), r.Message, r.ScheduledTime.Format(DisplayTime)), true

	default:
		r, err := a.scheduler.CreateOneTime(message, dueAt)
		if err != nil {
			return fmt.Sprintf("Error setting reminder: %v", err), true
		}
		return fmt.Sprintf("Reminder set! ID: %s..., Message: '%s', Due: %s",
			r.ShortID(), r.Message, r.ScheduledTime.Format(DisplayTime)), true
	}
}

// createRecurring handles "set <message> reminder daily|weekly|monthly|yearly".
func (a *Agent) createRecurring(message, kindName string) string {
	start := timeparse.Resolve(message, a.now())

	r, err := a.scheduler.CreateRecurring(message, start, reminder.Kind(kindName), nil)
	if err != nil {
		return fmt.Sprintf("Error setting recurring reminder: %v", err)
	}
	return fmt.Sprintf("Recurring reminder set! ID: %s..., Message: '%s', Type: %s, Starts: %s",
		r.ShortID(), r.Message, r.Kind, r.ScheduledTime.Format(DisplayTime))
}

// inferTypeAlias guesses a reminder category from keywords in the message.
func inferTypeAlias(message string) string {
	switch {
	case strings.Contains(message, "birthday"):
		return "birthday"
	case strings.Contains(message, "appointment"),
		strings.Contains(message, "meeting"),
		strings.Contains(message, "tournament"),
		strings.Contains(message, "dinner"):
		return "appointment"
	case strings.Contains(message, "task"), strings.Contains(message, "todo"):
		return "task"
	}
	return ""
}
