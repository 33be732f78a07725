package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAirports_EmptyQueryReturnsHead(t *testing.T) {
	got := FilterAirports("")

	want := len(Airports)
	if want > MaxResults {
		want = MaxResults
	}
	require.Len(t, got, want)
	for i, a := range got {
		assert.Equal(t, Airports[i], a, "original order must be preserved")
	}
}

func TestFilterAirports_CaseInsensitiveAcrossFields(t *testing.T) {
	byName := FilterAirports("heathrow")
	require.NotEmpty(t, byName)
	assert.Equal(t, "LHR", byName[0].IATA)

	byCode := FilterAirports("lhr")
	require.NotEmpty(t, byCode)
	assert.Equal(t, "LHR", byCode[0].IATA)

	byCity := FilterAirports("LONDON")
	require.True(t, len(byCity) >= 2)
	for _, a := range byCity {
		assert.Equal(t, "London", a.City)
	}
}

func TestFilterAirports_Idempotent(t *testing.T) {
	first := FilterAirports("LON")
	second := FilterAirports("LON")
	assert.Equal(t, first, second)
}

func TestFilterAirports_NoMatch(t *testing.T) {
	assert.Empty(t, FilterAirports("zzzzzz"))
}

func TestFilterAirlines(t *testing.T) {
	got := FilterAirlines("")
	want := len(Airlines)
	if want > MaxResults {
		want = MaxResults
	}
	assert.Len(t, got, want)

	for _, a := range FilterAirlines("qatar") {
		assert.True(t, strings.Contains(strings.ToLower(a.Name), "qatar") ||
			strings.Contains(strings.ToLower(a.IATA), "qatar"))
	}
}

func TestCountries_DefaultFirst(t *testing.T) {
	require.NotEmpty(t, Countries)
	assert.Equal(t, "Nepalese", Countries[0].Label)
}
