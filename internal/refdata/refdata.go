// Package refdata holds the static reference lists consumed by the
// autocomplete widgets: airports, airlines and countries. The lists are
// loaded once at module start and never mutated.
package refdata

import "strings"

// MaxResults caps every filtered candidate list.
const MaxResults = 50

type Airport struct {
	Name string `json:"name"`
	IATA string `json:"IATA"`
	City string `json:"city"`
}

type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

type Country struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FilterAirports returns up to MaxResults airports whose name, IATA code
// or city contains the query, case-insensitive. An empty query yields the
// first MaxResults entries in original order, not an empty result.
func FilterAirports(query string) []Airport {
	q := strings.ToLower(query)
	out := make([]Airport, 0, MaxResults)
	for _, a := range Airports {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.IATA), q) &&
			!strings.Contains(strings.ToLower(a.City), q) {
			continue
		}
		out = append(out, a)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

// FilterAirlines returns up to MaxResults airlines whose name or IATA code
// contains the query, case-insensitive. Empty query behaves like
// FilterAirports.
func FilterAirlines(query string) []Airline {
	q := strings.ToLower(query)
	out := make([]Airline, 0, MaxResults)
	for _, a := range Airlines {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.IATA), q) {
			continue
		}
		out = append(out, a)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}
