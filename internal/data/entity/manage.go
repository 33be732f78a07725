package entity

import "time"

type ManageType string

const (
	ManageTypeRefund  ManageType = "Refund"
	ManageTypeReissue ManageType = "Re-issue"
)

type ManageStatus string

const (
	ManageStatusPending  ManageStatus = "Pending"
	ManageStatusSend     ManageStatus = "SEND"
	ManageStatusRefunded ManageStatus = "REFUNDED"
)

// ManageBooking is one refund/re-issue management record. UID is the
// idempotency key: a retry with the same UID must not create a second row.
type ManageBooking struct {
	UID            string       `json:"uid" db:"uid"`
	BookingID      string       `json:"booking_id" db:"booking_id"`
	UserID         string       `json:"user_id" db:"user_id"`
	Type           ManageType   `json:"type" db:"type"`
	Status         ManageStatus `json:"status" db:"status"`
	Amount         string       `json:"amount,omitempty" db:"amount"`
	Reason         string       `json:"reason,omitempty" db:"reason"`
	BookingDetails *Booking     `json:"booking_details,omitempty" db:"booking_details"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}
