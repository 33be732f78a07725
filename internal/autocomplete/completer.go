// Package autocomplete models the dropdown widget behind the airport and
// airline fields: a filtered candidate list capped at 50, a circular
// keyboard cursor, and a commit/clear contract that reports plain
// field-name/value pairs to the owning form.
package autocomplete

import (
	"fmt"
	"strings"

	"booking-console/internal/refdata"
)

// ChangeEvent is the value handed back to the form when a candidate is
// committed or the field is cleared.
type ChangeEvent struct {
	Name  string
	Value string
}

// Completer tracks one widget instance. filter re-runs synchronously on
// every query or open-state change; commit formats the selected candidate
// into the field value.
type Completer[T any] struct {
	name   string
	filter func(query string) []T
	commit func(T) string

	query    string
	open     bool
	active   int
	filtered []T
}

func New[T any](name string, filter func(string) []T, commit func(T) string) *Completer[T] {
	return &Completer[T]{
		name:   name,
		filter: filter,
		commit: commit,
		active: -1,
	}
}

// NewAirport builds a completer over the static airport list. Committing
// emits "<name> (<IATA>)".
func NewAirport(name string) *Completer[refdata.Airport] {
	return New(name, refdata.FilterAirports, func(a refdata.Airport) string {
		return fmt.Sprintf("%s (%s)", a.Name, a.IATA)
	})
}

// NewAirline builds a completer over the static airline list. Committing
// emits the bare airline name.
func NewAirline(name string) *Completer[refdata.Airline] {
	return New(name, refdata.FilterAirlines, func(a refdata.Airline) string {
		return a.Name
	})
}

// SetQuery records a new text value, opens the dropdown and re-filters.
// The keyboard cursor resets.
func (c *Completer[T]) SetQuery(q string) {
	c.query = q
	c.open = true
	c.active = -1
	c.refilter()
}

func (c *Completer[T]) Open() {
	if c.open {
		return
	}
	c.open = true
	c.refilter()
}

func (c *Completer[T]) refilter() {
	if !c.open {
		c.filtered = nil
		return
	}
	c.filtered = c.filter(c.query)
}

func (c *Completer[T]) IsOpen() bool { return c.open }

func (c *Completer[T]) Query() string { return c.query }

// Filtered returns the current candidate list; empty when closed.
func (c *Completer[T]) Filtered() []T { return c.filtered }

// ActiveIndex returns the keyboard cursor, -1 when nothing is active.
func (c *Completer[T]) ActiveIndex() int { return c.active }

// MoveDown advances the cursor, wrapping past the end.
func (c *Completer[T]) MoveDown() {
	if !c.open || len(c.filtered) == 0 {
		return
	}
	c.active = (c.active + 1) % len(c.filtered)
}

// MoveUp retreats the cursor, wrapping past the start.
func (c *Completer[T]) MoveUp() {
	if !c.open || len(c.filtered) == 0 {
		return
	}
	if c.active <= 0 {
		c.active = len(c.filtered) - 1
	} else {
		c.active--
	}
}

// Enter commits the keyboard-active candidate. Without an active candidate
// nothing happens and ok is false.
func (c *Completer[T]) Enter() (ChangeEvent, bool) {
	if !c.open || c.active < 0 || c.active >= len(c.filtered) {
		return ChangeEvent{}, false
	}
	return c.Select(c.active)
}

// Select commits the candidate at index (pointer click), closes the
// dropdown and clears the cursor.
func (c *Completer[T]) Select(index int) (ChangeEvent, bool) {
	if index < 0 || index >= len(c.filtered) {
		return ChangeEvent{}, false
	}
	ev := ChangeEvent{Name: c.name, Value: c.commit(c.filtered[index])}
	c.query = ev.Value
	c.close()
	return ev, true
}

// Escape closes the dropdown without committing.
func (c *Completer[T]) Escape() {
	c.close()
}

// ClickOutside closes the dropdown without committing; the typed query is
// kept.
func (c *Completer[T]) ClickOutside() {
	c.close()
}

// Clear resets the field to empty, as the "×" affordance does.
func (c *Completer[T]) Clear() ChangeEvent {
	c.query = ""
	c.close()
	return ChangeEvent{Name: c.name, Value: ""}
}

func (c *Completer[T]) close() {
	c.open = false
	c.active = -1
	c.filtered = nil
}

// HighlightSpan locates the first case-insensitive occurrence of query in
// text. ok is false for an empty query or no match, in which case the text
// renders unmodified.
func HighlightSpan(text, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(query), true
}
