package wire

import (
	"booking-console/internal/adaptor"
	"booking-console/internal/data/repository"
	"booking-console/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bookings - paginated, sortable, searchable list
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create from the editor payload
		r.Post("/", bookingHandler.CreateBooking)

		// POST /api/bookings/bulk-delete - delete the selected rows (admin only)
		r.With(middleware.Admin(repo.User, log)).Post("/bulk-delete", bookingHandler.DeleteBookings)

		// GET /api/bookings/{id} - load one booking for the editor
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id} - save an edited booking
		r.Put("/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id} - delete one booking
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
