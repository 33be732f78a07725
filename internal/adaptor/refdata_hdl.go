package adaptor

import (
	"net/http"

	"booking-console/internal/refdata"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type RefdataHandler struct {
	log *zap.Logger
}

func NewRefdataHandler(log *zap.Logger) *RefdataHandler {
	return &RefdataHandler{
		log: log.With(zap.String("handler", "refdata")),
	}
}

// ListAirports handles GET /api/airports?q= (public)
func (h *RefdataHandler) ListAirports(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", refdata.FilterAirports(r.URL.Query().Get("q")))
}

// ListAirlines handles GET /api/airlines?q= (public)
func (h *RefdataHandler) ListAirlines(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", refdata.FilterAirlines(r.URL.Query().Get("q")))
}

// ListCountries handles GET /api/countries (public)
func (h *RefdataHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", refdata.Countries)
}
