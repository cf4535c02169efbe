// Package repl is the terminal shell around the agent: a readline loop
// that feeds user input to the command processor and renders responses and
// due-reminder alerts.
package repl

import (
	"context"
	"fmt"

	"github.com/chzyer/readline"

	"github.com/agha-moutsim/reminder-agent/internal/agent"
	"github.com/agha-moutsim/reminder-agent/internal/notify"
	"github.com/agha-moutsim/reminder-agent/internal/reminder"
	"github.com/agha-moutsim/reminder-agent/internal/ui"
)

type REPL struct {
	agent     *agent.Agent
	history   *agent.History
	rl        *readline.Instance
	formatter *ui.Formatter
	backend   string
}

// NewREPL creates the shell. backend is shown in the welcome banner.
func NewREPL(a *agent.Agent, history *agent.History, formatter *ui.Formatter, backend string) (*REPL, error) {
	rl, err := setupReadline()
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	return &REPL{
		agent:     a,
		history:   history,
		rl:        rl,
		formatter: formatter,
		backend:   backend,
	}, nil
}

// AlertObserver returns the observer that interrupts the prompt when a
// reminder fires. Register it with the scheduler before starting the
// monitor. Writing through the readline instance keeps the prompt intact.
func (r *REPL) AlertObserver() notify.Observer {
	return notify.Func(func(rem reminder.Reminder) {
		fmt.Fprintf(r.rl.Stdout(), "\n%s\n", r.formatter.FormatAlert(rem))
	})
}

// Start blocks reading commands until 'exit', EOF, or ctx cancellation.
func (r *REPL) Start(ctx context.Context) error {
	defer r.rl.Close()

	fmt.Print(r.formatter.FormatWelcome(r.backend))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == "" {
			continue
		}

		if done := r.handleBuiltin(input); done {
			fmt.Println("Goodbye!")
			return nil
		}
	}
}

// handleBuiltin processes shell-level commands itself and forwards
// everything else to the agent. It reports true when the session should
// end.
func (r *REPL) handleBuiltin(input string) bool {
	switch normalize(input) {
	case "exit", "quit":
		return true

	case "help":
		fmt.Println(r.formatter.FormatHelp(agent.Help()))
		return false

	case "history", "show history", "h":
		fmt.Println(r.formatter.FormatInfo(r.history.Render()))
		return false
	}

	response := r.agent.Handle(input)
	fmt.Println(r.formatter.FormatAgentResponse(response))
	return false
}

// SaveHistory persists the conversation history.
func (r *REPL) SaveHistory() error {
	return r.history.Save()
}
