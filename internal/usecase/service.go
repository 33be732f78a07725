package usecase

import (
	"booking-console/internal/data/repository"
	"booking-console/pkg/mailer"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Booking  BookingService
	Customer CustomerService
	Agency   AgencyService
	Manage   ManageService
	Email    EmailService
}

func NewService(repo *repository.Repository, m mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, log),
		Booking:  NewBookingService(repo, m, log),
		Customer: NewCustomerService(repo, log),
		Agency:   NewAgencyService(repo, log),
		Manage:   NewManageService(repo, log),
		Email:    NewEmailService(m, log),
	}
}
