package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dukerupert/notebook/internal/model"
)

type NoteStore struct {
	db *sql.DB

	mu     sync.Mutex
	closed bool
}

// NewNoteStore takes ownership of db; Close releases it.
func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

func scanNote(scanner interface{ Scan(...any) error }) (*model.Note, error) {
	var n model.Note
	if err := scanner.Scan(&n.ID, &n.Title, &n.Content); err != nil {
		return nil, err
	}
	return &n, nil
}

const noteCols = `id, title, content`

// Create inserts a note and returns its assigned id.
func (s *NoteStore) Create(title, content string) (int64, error) {
	result, err := s.db.Exec(`INSERT INTO notes (title, content) VALUES (?, ?)`, title, content)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetByID returns nil, nil when no note has the given id.
func (s *NoteStore) GetByID(id int64) (*model.Note, error) {
	row := s.db.QueryRow(`SELECT `+noteCols+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// List returns every note in ascending id order.
func (s *NoteStore) List() ([]model.Note, error) {
	rows, err := s.db.Query(`SELECT ` + noteCols + ` FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// Search returns notes whose title or content contains keyword. Matching is
// case-sensitive and literal: '%' and '_' have no special meaning. An empty
// keyword matches every note.
func (s *NoteStore) Search(keyword string) ([]model.NoteSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, title FROM notes
		 WHERE instr(title, ?) > 0 OR instr(content, ?) > 0
		 ORDER BY id`,
		keyword, keyword,
	)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()

	var matches []model.NoteSummary
	for rows.Next() {
		var m model.NoteSummary
		if err := rows.Scan(&m.ID, &m.Title); err != nil {
			return nil, fmt.Errorf("scan note summary: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Count returns the number of stored notes.
func (s *NoteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return n, nil
}

// Delete removes the note with the given id. Deleting a missing id is not an error.
func (s *NoteStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// Close releases the database. Calls after the first are no-ops.
// It may be called from a shutdown path while the menu still holds the store.
func (s *NoteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}
