package console

import (
	"fmt"
	"strconv"
	"strings"
)

// readID prompts until the user enters a non-negative integer, pausing after
// each rejected entry. The only errors returned come from the prompter itself.
func (m *Menu) readID(prompt string) (int64, error) {
	for {
		line, err := m.in.Prompt(prompt)
		if err != nil {
			return 0, err
		}
		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		switch {
		case err != nil:
			fmt.Fprintln(m.out, "Invalid input, enter a numeric ID.")
		case id < 0:
			fmt.Fprintln(m.out, "ID must be a non-negative number.")
		default:
			return id, nil
		}
		if err := m.pause(); err != nil {
			return 0, err
		}
	}
}
