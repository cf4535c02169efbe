package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
)

func (r *REPL) readInput() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func setupReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "Agent> ",
		HistoryFile:         "",
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	return rl, err
}

func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func isEOF(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}
