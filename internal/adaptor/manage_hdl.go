package adaptor

import (
	"encoding/json"
	"net/http"

	"booking-console/internal/dto/request"
	"booking-console/internal/usecase"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type ManageHandler struct {
	service usecase.ManageService
	log     *zap.Logger
}

func NewManageHandler(service usecase.ManageService, log *zap.Logger) *ManageHandler {
	return &ManageHandler{
		service: service,
		log:     log.With(zap.String("handler", "manage")),
	}
}

// GetRefundKey handles GET /api/manage-booking?booking_id= (protected).
// It returns the idempotency key the confirm dialog must post back:
// either the one on an existing record or a freshly generated one.
func (h *ManageHandler) GetRefundKey(w http.ResponseWriter, r *http.Request) {
	bookingID := r.URL.Query().Get("booking_id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "booking_id is required", nil)
		return
	}

	key, existing, err := h.service.RefundKey(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get refund key")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{
		"uid":      key,
		"existing": existing,
	})
}

// SubmitManageRequest handles POST /api/manage-booking (protected).
// The refund cannot proceed without a resolved user identity: the session
// user is required, and a user_id in the body must match it. Non-2xx
// responses carry an `{error}` body the confirm dialog shows verbatim.
func (h *ManageHandler) SubmitManageRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeManageError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request.ManageBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeManageError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" {
		req.UserID = userID.String()
	} else if req.UserID != userID.String() {
		writeManageError(w, http.StatusForbidden, "user_id does not match the authenticated user")
		return
	}

	record, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		errMsg := err.Error()
		h.log.Error("Failed to submit manage request",
			zap.Error(err),
			zap.String("uid", req.UID))
		writeManageError(w, serviceErrorStatus(errMsg), errMsg)
		return
	}

	utils.ResponseCreated(w, "success", record)
}

func writeManageError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
