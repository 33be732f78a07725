package adaptor

import (
	"encoding/json"
	"net/http"

	"booking-console/internal/dto/request"
	"booking-console/internal/usecase"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type EmailHandler struct {
	service usecase.EmailService
	log     *zap.Logger
}

func NewEmailHandler(service usecase.EmailService, log *zap.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		log:     log.With(zap.String("handler", "email")),
	}
}

// SendEmail handles POST /api/send-email (protected)
func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req request.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Send(&req); err != nil {
		handleServiceError(w, h.log, err, "send email")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
