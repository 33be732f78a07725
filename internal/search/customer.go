// Package search implements the debounced customer lookup used by the
// booking editor. Keystrokes schedule a remote query after a quiet period;
// each dispatched lookup carries a sequence number and responses that are
// no longer the newest are discarded, so a slow early response can never
// overwrite a later one.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"booking-console/internal/data/entity"
)

const (
	// DefaultDebounce is the quiet period after the last keystroke before
	// a lookup is dispatched.
	DefaultDebounce = 300 * time.Millisecond

	// MinQueryLength is the trimmed length below which no lookup runs.
	MinQueryLength = 2

	// MaxResults caps every lookup.
	MaxResults = 5
)

// Lookup performs the remote customer query.
type Lookup func(ctx context.Context, query string, limit int) ([]entity.Customer, error)

// Snapshot is the observable widget state after any change.
type Snapshot struct {
	Query   string
	Loading bool
	Results []entity.Customer
	Err     error
}

// Searcher coordinates debounce timing, the length threshold and the
// staleness guard. All methods are safe for concurrent use.
type Searcher struct {
	lookup   Lookup
	debounce time.Duration
	onUpdate func(Snapshot)

	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
	query    string
	loading  bool
	searched bool
	results  []entity.Customer
	err      error
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDebounce overrides the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(s *Searcher) { s.debounce = d }
}

// WithUpdateFunc registers a callback invoked after every state change.
func WithUpdateFunc(fn func(Snapshot)) Option {
	return func(s *Searcher) { s.onUpdate = fn }
}

func NewSearcher(lookup Lookup, opts ...Option) *Searcher {
	s := &Searcher{
		lookup:   lookup,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetQuery records a keystroke. Any previously scheduled lookup is
// cancelled; a new one is scheduled after the debounce period unless the
// trimmed query is under the length threshold, in which case pending
// results are cleared instead.
func (s *Searcher) SetQuery(ctx context.Context, query string) {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	s.query = query
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len(trimmed) < MinQueryLength {
		// Invalidate any in-flight lookup so its late response is dropped.
		s.seq++
		s.results = nil
		s.loading = false
		s.searched = false
		s.err = nil
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.notify(snap)
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.dispatch(ctx, trimmed)
	})
	s.mu.Unlock()
}

// dispatch issues the lookup immediately, tagging it with a fresh sequence
// number. The response is applied only while it is still the newest.
func (s *Searcher) dispatch(ctx context.Context, query string) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.err = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	results, err := s.lookup(ctx, query, MaxResults)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	s.mu.Lock()
	if seq != s.seq {
		// A newer lookup superseded this one while it was in flight.
		s.mu.Unlock()
		return
	}
	s.loading = false
	s.searched = true
	if err != nil {
		// Remote failures fall back to an empty result set.
		s.results = nil
		s.err = err
	} else {
		s.results = results
		s.err = nil
	}
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// Close cancels any scheduled lookup.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
}

// State returns the current observable state.
func (s *Searcher) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// EmptyMessage returns the "no matches" text when the finished lookup for
// a long-enough query produced nothing, and "" otherwise.
func (s *Searcher) EmptyMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	trimmed := strings.TrimSpace(s.query)
	if len(trimmed) >= MinQueryLength && s.searched && !s.loading && s.err == nil && len(s.results) == 0 {
		return `No customers found matching "` + trimmed + `"`
	}
	return ""
}

// DisplayName is the text shown after a result is selected.
func DisplayName(c entity.Customer) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (s *Searcher) snapshotLocked() Snapshot {
	return Snapshot{
		Query:   s.query,
		Loading: s.loading,
		Results: append([]entity.Customer(nil), s.results...),
		Err:     s.err,
	}
}

func (s *Searcher) notify(snap Snapshot) {
	if s.onUpdate != nil {
		s.onUpdate(snap)
	}
}
