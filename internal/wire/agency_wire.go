package wire

import (
	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAgency(
	r chi.Router,
	agencyHandler *adaptor.AgencyHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/agencies?page&pageSize&q&status&sortKey&sortDir
		r.Get("/api/agencies", agencyHandler.ListAgencies)
	})
}
