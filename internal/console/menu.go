// Package console implements the interactive note menu.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dukerupert/notebook/internal/model"
)

// NoteStore is the subset of store.NoteStore the menu drives.
type NoteStore interface {
	Create(title, content string) (int64, error)
	List() ([]model.Note, error)
	GetByID(id int64) (*model.Note, error)
	Search(keyword string) ([]model.NoteSummary, error)
	Count() (int, error)
	Delete(id int64) error
	Close() error
}

const ruleWidth = 50

type Menu struct {
	notes  NoteStore
	in     Prompter
	out    io.Writer
	logger *slog.Logger

	exitOnce sync.Once
	exitErr  error
}

// NewMenu returns a menu over notes. Run closes notes when the user exits.
func NewMenu(notes NoteStore, in Prompter, out io.Writer, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{notes: notes, in: in, out: out, logger: logger}
}

// Run shows the main menu until the user exits, input ends, or ctx is
// cancelled. Every path closes the store. Storage errors are returned to the
// caller.
func (m *Menu) Run(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- m.loop() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// The loop goroutine may still be blocked on a prompt; it cannot
		// be interrupted, so close the store from here.
		m.logger.Info("shutting down", "reason", context.Cause(ctx))
		fmt.Fprintln(m.out)
		return m.exit()
	}
}

func (m *Menu) loop() error {
	for {
		m.printMainMenu()
		choice, err := m.in.Prompt("Choose an action: ")
		if err != nil {
			return m.stop(err)
		}

		choice = strings.TrimSpace(choice)
		m.logger.Debug("menu choice", "choice", choice)

		switch choice {
		case "1":
			err = m.addNote()
		case "2":
			err = m.viewNotes()
		case "3":
			err = m.searchNotes()
		case "4":
			err = m.deleteNote()
		case "5":
			return m.exit()
		default:
			err = m.invalidChoice()
		}
		if err != nil {
			return m.stop(err)
		}
	}
}

// stop ends the loop: end of input exits cleanly, anything else is returned.
func (m *Menu) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		return m.exit()
	}
	return err
}

func (m *Menu) printMainMenu() {
	m.header("Menu")
	fmt.Fprintln(m.out, "1. Add a new note")
	fmt.Fprintln(m.out, "2. View all notes")
	fmt.Fprintln(m.out, "3. Search notes")
	fmt.Fprintln(m.out, "4. Delete a note")
	fmt.Fprintln(m.out, "5. Exit")
	fmt.Fprintln(m.out, strings.Repeat("=", ruleWidth))
}

func (m *Menu) header(title string) {
	rule := strings.Repeat("=", ruleWidth)
	pad := (ruleWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, strings.Repeat(" ", pad)+title)
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) pause() error {
	_, err := m.in.Prompt("Press Enter to continue...")
	return err
}

func (m *Menu) addNote() error {
	m.header("Add a new note")
	title, err := m.in.Prompt("Note title: ")
	if err != nil {
		return err
	}
	content, err := m.in.Prompt("Note content: ")
	if err != nil {
		return err
	}

	id, err := m.notes.Create(title, content)
	if err != nil {
		return err
	}
	m.logger.Debug("note added", "id", id)
	fmt.Fprintln(m.out, "Note added.")
	return m.pause()
}

func (m *Menu) viewNotes() error {
	m.header("All notes")
	notes, err := m.notes.List()
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(m.out, "No notes yet.")
		return m.pause()
	}
	for _, n := range notes {
		fmt.Fprintf(m.out, "%d. %s\n", n.ID, n.Title)
	}

	id, err := m.readID("Enter a note ID to view it, or 0 to go back: ")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	if err := m.showNote(id); err != nil {
		return err
	}
	return m.pause()
}

func (m *Menu) showNote(id int64) error {
	n, err := m.notes.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		fmt.Fprintln(m.out, "Note not found.")
		return nil
	}
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintf(m.out, "Title: %s\n", n.Title)
	fmt.Fprintf(m.out, "Content: %s\n", n.Content)
	fmt.Fprintln(m.out, rule)
	return nil
}

func (m *Menu) searchNotes() error {
	m.header("Search notes")
	count, err := m.notes.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(m.out, "The note store is empty.")
		return m.pause()
	}

	keyword, err := m.in.Prompt("Keyword: ")
	if err != nil {
		return err
	}
	matches, err := m.notes.Search(keyword)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(m.out, "No matching notes.")
	}
	for _, n := range matches {
		fmt.Fprintf(m.out, "%d. %s\n", n.ID, n.Title)
	}
	return m.pause()
}

func (m *Menu) deleteNote() error {
	m.header("Delete a note")
	notes, err := m.notes.List()
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(m.out, "No notes yet.")
		return m.pause()
	}
	for _, n := range notes {
		fmt.Fprintf(m.out, "%d. %s\n", n.ID, n.Title)
	}

	id, err := m.readID("Enter a note ID to delete, or 0 to cancel: ")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	n, err := m.notes.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		fmt.Fprintln(m.out, "No note with that ID.")
		return m.pause()
	}
	if err := m.notes.Delete(id); err != nil {
		return err
	}
	m.logger.Debug("note deleted", "id", id)
	fmt.Fprintln(m.out, "Note deleted.")
	return m.pause()
}

// exit closes the store once, whichever of the loop or a cancelled Run gets
// here first.
func (m *Menu) exit() error {
	m.exitOnce.Do(func() {
		if err := m.notes.Close(); err != nil {
			m.exitErr = err
			return
		}
		fmt.Fprintln(m.out, "Database closed.")
		fmt.Fprintln(m.out, "Goodbye.")
	})
	return m.exitErr
}

func (m *Menu) invalidChoice() error {
	fmt.Fprintln(m.out, "Invalid choice, try again.")
	return m.pause()
}
