package request

import "booking-console/internal/data/entity"

// ManageBookingRequest is the refund/re-issue mutation body. UID is the
// idempotency key the caller looked up or generated before confirming.
type ManageBookingRequest struct {
	UID     string          `json:"uid" validate:"required"`
	Booking *entity.Booking `json:"booking" validate:"required"`
	UserID  string          `json:"user_id" validate:"required"`
	Type    string          `json:"type" validate:"required,oneof=Refund Re-issue"`
}
