package response

import "booking-console/internal/data/entity"

type SaveBookingResponse struct {
	ID int64 `json:"id"`
}

type DeleteBookingsResponse struct {
	Deleted int64 `json:"deleted"`
}

// AgencyListResponse mirrors the shape the agency endpoint has always
// returned: a data array plus a nullable error string.
type AgencyListResponse struct {
	Data  []entity.Agency `json:"data"`
	Total int64           `json:"total"`
	Error *string         `json:"error"`
}
