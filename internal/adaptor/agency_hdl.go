package adaptor

import (
	"encoding/json"
	"net/http"

	"booking-console/internal/dto/request"
	"booking-console/internal/dto/response"
	"booking-console/internal/usecase"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type AgencyHandler struct {
	service usecase.AgencyService
	log     *zap.Logger
}

func NewAgencyHandler(service usecase.AgencyService, log *zap.Logger) *AgencyHandler {
	return &AgencyHandler{
		service: service,
		log:     log.With(zap.String("handler", "agency")),
	}
}

// ListAgencies handles GET /api/agencies (protected).
//
// This endpoint keeps its historical `{data, error}` body instead of the
// standard envelope; the editor consumes it as-is.
func (h *AgencyHandler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ListAgenciesRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("pageSize"), 10),
		Query:    query.Get("q"),
		Status:   query.Get("status"),
		SortKey:  query.Get("sortKey"),
		SortDir:  query.Get("sortDir"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.log.Error("Failed to list agencies", zap.Error(err))
		msg := err.Error()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(response.AgencyListResponse{Error: &msg})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
