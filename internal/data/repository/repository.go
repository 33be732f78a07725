package repository

import (
	"booking-console/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Booking  BookingRepository
	Customer CustomerRepository
	Agency   AgencyRepository
	Manage   ManageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Agency:   NewAgencyRepository(db, log),
		Manage:   NewManageRepository(db, log),
	}
}
