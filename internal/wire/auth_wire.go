package wire

import (
	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/login - exchange credentials for a session token (public)
	r.Post("/api/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - revoke the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
