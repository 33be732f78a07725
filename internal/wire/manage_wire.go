package wire

import (
	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireManage(
	r chi.Router,
	manageHandler *adaptor.ManageHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/manage-booking", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/manage-booking?booking_id= - idempotency key lookup
		r.Get("/", manageHandler.GetRefundKey)

		// POST /api/manage-booking - submit the refund/re-issue request
		r.Post("/", manageHandler.SubmitManageRequest)
	})
}
