package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Prompter reads one line of user input per call. It returns io.EOF when the
// user is done (end of input or Ctrl-C).
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// lineEditor is the part of *liner.State the terminal prompter uses.
type lineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
	Close() error
}

// TerminalPrompter provides readline-style editing and history on a TTY.
type TerminalPrompter struct {
	state       lineEditor
	historyFile string
}

// NewTerminalPrompter puts the terminal into line-editing mode. historyFile
// may be empty to disable history.
func NewTerminalPrompter(historyFile string) *TerminalPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return newTerminalPrompter(state, historyFile)
}

func newTerminalPrompter(state lineEditor, historyFile string) *TerminalPrompter {
	p := &TerminalPrompter{state: state, historyFile: historyFile}

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := p.state.ReadHistory(f); err != nil {
				slog.Debug("read history", "path", historyFile, "error", err)
			}
			f.Close()
		}
	}
	return p
}

func (p *TerminalPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (p *TerminalPrompter) Close() error {
	if p.historyFile != "" {
		if f, err := os.Create(p.historyFile); err == nil {
			if _, err := p.state.WriteHistory(f); err != nil {
				slog.Warn("write history", "path", p.historyFile, "error", err)
			}
			f.Close()
		}
	}
	return p.state.Close()
}

// ReaderPrompter reads lines from an arbitrary reader, echoing prompts to w.
// It is used when stdin is not a terminal.
type ReaderPrompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewReaderPrompter(r io.Reader, w io.Writer) *ReaderPrompter {
	return &ReaderPrompter{r: bufio.NewReader(r), w: w}
}

func (p *ReaderPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *ReaderPrompter) Close() error { return nil }
