package form

import (
	"fmt"
	"strconv"

	"booking-console/internal/data/entity"
)

// money parses a decimal-as-string price, treating anything unparseable
// (including the empty string) as zero.
func money(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// addonsSubtotal sums every entry in the prices map. The addon flags do
// not gate the sum: an unchecked addon with a price still counts, matching
// the independent editability of the two maps.
func (s *State) addonsSubtotal() float64 {
	var total float64
	for _, key := range entity.AddonKeys {
		total += money(s.Prices[key])
	}
	return total
}

// AddonsSubtotal formats the add-on price sum with exactly two fraction
// digits.
func (s *State) AddonsSubtotal() string {
	return fmt.Sprintf("%.2f", s.addonsSubtotal())
}

// GrandTotal is the selling price plus the add-ons subtotal, with the same
// two-fraction-digit formatting.
func (s *State) GrandTotal() string {
	return fmt.Sprintf("%.2f", money(s.SellingPrice)+s.addonsSubtotal())
}
