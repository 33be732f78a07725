package adaptor

import (
	"booking-console/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Booking  *BookingHandler
	Customer *CustomerHandler
	Agency   *AgencyHandler
	Manage   *ManageHandler
	Refdata  *RefdataHandler
	Email    *EmailHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Agency:   NewAgencyHandler(service.Agency, log),
		Manage:   NewManageHandler(service.Manage, log),
		Refdata:  NewRefdataHandler(log),
		Email:    NewEmailHandler(service.Email, log),
	}
}
