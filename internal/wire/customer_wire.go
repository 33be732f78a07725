package wire

import (
	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/customers/search?q= - partial match, capped at five
		r.Get("/api/customers/search", customerHandler.SearchCustomers)
	})
}
