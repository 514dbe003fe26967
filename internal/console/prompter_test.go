package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReaderPrompterLines(t *testing.T) {
	var out bytes.Buffer
	p := NewReaderPrompter(strings.NewReader("one\r\ntwo\n\nlast"), &out)

	var got []string
	for {
		line, err := p.Prompt("> ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("prompt: %v", err)
		}
		got = append(got, line)
	}

	want := []string{"one", "two", "", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if prompts := strings.Count(out.String(), "> "); prompts != 5 {
		t.Errorf("prompts written = %d, want 5", prompts)
	}
}

func TestReadID(t *testing.T) {
	var out bytes.Buffer
	// Rejected entries are each followed by an empty line answering the pause.
	m := NewMenu(nil, NewReaderPrompter(strings.NewReader("x\n\n1.5\n\n-1\n\n\n\n42\n"), &out), &out, nil)

	id, err := m.readID("id: ")
	if err != nil {
		t.Fatalf("readID: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
	if got := strings.Count(out.String(), "Invalid input, enter a numeric ID."); got != 3 {
		t.Errorf("invalid input messages = %d, want 3", got)
	}
	if got := strings.Count(out.String(), "ID must be a non-negative number."); got != 1 {
		t.Errorf("negative messages = %d, want 1", got)
	}
	if got := strings.Count(out.String(), "Press Enter to continue..."); got != 4 {
		t.Errorf("pauses = %d, want 4", got)
	}
}

func TestReadIDEndOfInput(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(nil, NewReaderPrompter(strings.NewReader("nope\n"), &out), &out, nil)

	if _, err := m.readID("id: "); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}
