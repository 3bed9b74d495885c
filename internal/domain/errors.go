package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownAspect = errors.New("unknown aspect")

// LoadError is fatal: without a table nothing can be rendered.
type LoadError struct {
	Source string
	Row    int    // 1-based data row, 0 when not row specific
	Column string // empty when not column specific
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("load %s: row %d, column %q: %v", e.Source, e.Row, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("load %s: column %q: %v", e.Source, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("load %s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SelectionMismatchError means the chosen hotel is not part of the
// currently selected region. Callers render an empty state.
type SelectionMismatchError struct {
	Region string
	Hotel  string
}

func (e *SelectionMismatchError) Error() string {
	return fmt.Sprintf("hotel %q not found in region %q", e.Hotel, e.Region)
}

// MissingCoordinatesWarning is non-fatal: the map is omitted and a notice
// is shown while every other view still renders.
type MissingCoordinatesWarning struct {
	Region string
	Hotel  string
}

func (w *MissingCoordinatesWarning) Error() string {
	if w.Hotel == "" {
		return fmt.Sprintf("no coordinates available for region %q", w.Region)
	}
	return fmt.Sprintf("no coordinates available for hotel %q in region %q", w.Hotel, w.Region)
}
