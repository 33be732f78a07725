package adaptor

import (
	"net/http"

	"booking-console/internal/data/entity"
	"booking-console/internal/usecase"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// SearchCustomers handles GET /api/customers/search?q= (protected)
func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search customers")
		return
	}

	if customers == nil {
		customers = []entity.Customer{}
	}

	utils.ResponseSuccess(w, "success", customers)
}
