// Package clipboard reads and writes the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend is installed
// (for example, no xclip, xsel or wl-clipboard on Linux).
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard is a text source and sink.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the desktop clipboard.
type System struct{}

// ReadAll returns the clipboard contents.
func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

// WriteAll replaces the clipboard contents with text.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard.
type Memory struct {
	Text string
}

// ReadAll returns m.Text.
func (m *Memory) ReadAll() (string, error) { return m.Text, nil }

// WriteAll sets m.Text.
func (m *Memory) WriteAll(text string) error {
	m.Text = text
	return nil
}
