package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-console/internal/refdata"
)

func TestCompleter_AirportCommitFormat(t *testing.T) {
	c := NewAirport("origin")
	c.SetQuery("heathrow")

	require.NotEmpty(t, c.Filtered())
	ev, ok := c.Select(0)
	require.True(t, ok)
	assert.Equal(t, "origin", ev.Name)
	assert.Equal(t, "London Heathrow Airport (LHR)", ev.Value)
	assert.False(t, c.IsOpen())
	assert.Equal(t, -1, c.ActiveIndex())
	assert.Equal(t, ev.Value, c.Query())
}

func TestCompleter_AirlineCommitFormat(t *testing.T) {
	c := NewAirline("airlines")
	c.SetQuery("qatar")

	require.NotEmpty(t, c.Filtered())
	ev, ok := c.Select(0)
	require.True(t, ok)
	assert.Equal(t, "Qatar Airways", ev.Value)
}

func TestCompleter_KeyboardCursorWraps(t *testing.T) {
	c := NewAirport("origin")
	c.SetQuery("london")
	n := len(c.Filtered())
	require.True(t, n >= 2)

	assert.Equal(t, -1, c.ActiveIndex())
	c.MoveUp()
	assert.Equal(t, n-1, c.ActiveIndex(), "up from inactive wraps to the last item")

	c.MoveDown()
	assert.Equal(t, 0, c.ActiveIndex(), "down past the end wraps to the first item")

	for i := 0; i < n; i++ {
		c.MoveDown()
	}
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestCompleter_EnterCommitsOnlyWithActiveItem(t *testing.T) {
	c := NewAirport("destination")
	c.SetQuery("lhr")

	_, ok := c.Enter()
	assert.False(t, ok, "no active item yet")

	c.MoveDown()
	ev, ok := c.Enter()
	require.True(t, ok)
	assert.Equal(t, "destination", ev.Name)
	assert.Contains(t, ev.Value, "(LHR)")
	assert.False(t, c.IsOpen())
}

func TestCompleter_EscapeAndClickOutsideKeepQuery(t *testing.T) {
	c := NewAirport("origin")
	c.SetQuery("kath")

	c.Escape()
	assert.False(t, c.IsOpen())
	assert.Equal(t, "kath", c.Query())

	c.Open()
	assert.True(t, c.IsOpen())
	require.NotEmpty(t, c.Filtered())

	c.ClickOutside()
	assert.False(t, c.IsOpen())
	assert.Equal(t, "kath", c.Query())
	assert.Empty(t, c.Filtered())
}

func TestCompleter_ClearEmitsEmptyValue(t *testing.T) {
	c := NewAirport("origin")
	c.SetQuery("lhr")

	ev := c.Clear()
	assert.Equal(t, ChangeEvent{Name: "origin", Value: ""}, ev)
	assert.Empty(t, c.Query())
	assert.False(t, c.IsOpen())
}

func TestCompleter_EmptyQueryShowsHeadOfList(t *testing.T) {
	c := NewAirport("origin")
	c.SetQuery("")

	got := c.Filtered()
	want := len(refdata.Airports)
	if want > refdata.MaxResults {
		want = refdata.MaxResults
	}
	assert.Len(t, got, want)
}

func TestHighlightSpan(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		start int
		end   int
		ok    bool
	}{
		{"match at start", "London Heathrow", "lon", 0, 3, true},
		{"match mid-string", "London Heathrow", "HEATH", 7, 12, true},
		{"no match", "London Heathrow", "paris", 0, 0, false},
		{"empty query", "London Heathrow", "", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := HighlightSpan(tt.text, tt.query)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
