package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-console/internal/data/entity"
)

// recordingLookup counts dispatched lookups and returns a fixed result.
type recordingLookup struct {
	calls   atomic.Int64
	results []entity.Customer
	err     error
}

func (r *recordingLookup) fn(_ context.Context, _ string, _ int) ([]entity.Customer, error) {
	r.calls.Add(1)
	return r.results, r.err
}

func waitFor(t *testing.T, ch <-chan Snapshot, want func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-ch:
			if want(snap) {
				return snap
			}
		case <-deadline:
			t.Fatal("timed out waiting for searcher state")
		}
	}
}

func TestSearcher_ShortQueryNeverDispatches(t *testing.T) {
	lookup := &recordingLookup{}
	s := NewSearcher(lookup.fn, WithDebounce(5*time.Millisecond))
	defer s.Close()

	s.SetQuery(context.Background(), "a")
	s.SetQuery(context.Background(), " b ")

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, lookup.calls.Load())
	assert.Empty(t, s.State().Results)
}

func TestSearcher_TwoCharacterQueryDispatches(t *testing.T) {
	updates := make(chan Snapshot, 16)
	lookup := &recordingLookup{results: []entity.Customer{{ID: "c1", FirstName: "Ab"}}}
	s := NewSearcher(lookup.fn,
		WithDebounce(5*time.Millisecond),
		WithUpdateFunc(func(snap Snapshot) { updates <- snap }),
	)
	defer s.Close()

	s.SetQuery(context.Background(), "ab")

	snap := waitFor(t, updates, func(s Snapshot) bool { return !s.Loading && len(s.Results) > 0 })
	assert.Equal(t, int64(1), lookup.calls.Load())
	assert.Equal(t, "c1", snap.Results[0].ID)
}

func TestSearcher_KeystrokesResetTheTimer(t *testing.T) {
	updates := make(chan Snapshot, 16)
	lookup := &recordingLookup{results: []entity.Customer{{ID: "c1"}}}
	s := NewSearcher(lookup.fn,
		WithDebounce(40*time.Millisecond),
		WithUpdateFunc(func(snap Snapshot) { updates <- snap }),
	)
	defer s.Close()

	for _, q := range []string{"jo", "joh", "john"} {
		s.SetQuery(context.Background(), q)
		time.Sleep(10 * time.Millisecond)
	}

	waitFor(t, updates, func(s Snapshot) bool { return !s.Loading && len(s.Results) > 0 })
	assert.Equal(t, int64(1), lookup.calls.Load(), "only the final quiescent query dispatches")
}

func TestSearcher_StaleResponseDiscarded(t *testing.T) {
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls atomic.Int64

	lookup := func(_ context.Context, query string, _ int) ([]entity.Customer, error) {
		if calls.Add(1) == 1 {
			close(firstEntered)
			<-releaseFirst
			return []entity.Customer{{ID: "stale", FirstName: query}}, nil
		}
		return []entity.Customer{{ID: "fresh", FirstName: query}}, nil
	}

	s := NewSearcher(lookup)
	defer s.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.dispatch(context.Background(), "slow")
	}()
	<-firstEntered

	// A second lookup starts and finishes while the first is blocked.
	s.dispatch(context.Background(), "fast")
	require.Equal(t, "fresh", s.State().Results[0].ID)

	close(releaseFirst)
	wg.Wait()

	// The late first response must not overwrite the newer one.
	assert.Equal(t, "fresh", s.State().Results[0].ID)
}

func TestSearcher_LookupErrorFallsBackToEmpty(t *testing.T) {
	lookup := &recordingLookup{err: assert.AnError}
	s := NewSearcher(lookup.fn)
	defer s.Close()

	s.dispatch(context.Background(), "ab")

	snap := s.State()
	assert.Empty(t, snap.Results)
	assert.Error(t, snap.Err)
}

func TestSearcher_ResultsCappedAtFive(t *testing.T) {
	many := make([]entity.Customer, 9)
	lookup := &recordingLookup{results: many}
	s := NewSearcher(lookup.fn)
	defer s.Close()

	s.dispatch(context.Background(), "ab")
	assert.Len(t, s.State().Results, MaxResults)
}

func TestSearcher_EmptyMessage(t *testing.T) {
	lookup := &recordingLookup{}
	s := NewSearcher(lookup.fn, WithDebounce(time.Millisecond))
	defer s.Close()

	assert.Empty(t, s.EmptyMessage(), "no message before any lookup completes")

	s.SetQuery(context.Background(), "zz")
	s.dispatch(context.Background(), "zz")
	assert.Equal(t, `No customers found matching "zz"`, s.EmptyMessage())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ram KC", DisplayName(entity.Customer{FirstName: "Ram", LastName: "KC"}))
	assert.Equal(t, "Ram", DisplayName(entity.Customer{FirstName: "Ram"}))
}
