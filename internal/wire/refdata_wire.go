package wire

import (
	"booking-console/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRefdata(r chi.Router, refdataHandler *adaptor.RefdataHandler) {
	// Static reference lists behind the autocomplete widgets (public)
	r.Get("/api/airports", refdataHandler.ListAirports)
	r.Get("/api/airlines", refdataHandler.ListAirlines)
	r.Get("/api/countries", refdataHandler.ListCountries)
}
