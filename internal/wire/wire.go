package wire

import (
	"net/http"

	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/internal/usecase"
	"booking-console/pkg/mailer"
	"booking-console/pkg/middleware"
	"booking-console/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	m := mailer.NewSMTPMailer(config, logger)
	service := usecase.NewService(repo, m, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireCustomer(r, handler.Customer, repo, logger)
	wireAgency(r, handler.Agency, repo, logger)
	wireManage(r, handler.Manage, repo, logger)
	wireRefdata(r, handler.Refdata)
	wireEmail(r, handler.Email, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
