package wire

import (
	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEmail(
	r chi.Router,
	emailHandler *adaptor.EmailHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/send-email - notification delivery
		r.Post("/api/send-email", emailHandler.SendEmail)
	})
}
