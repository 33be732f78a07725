package usecase

import (
	"context"
	"fmt"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/dto/request"
	"booking-console/internal/dto/response"
	"booking-console/internal/form"
	"booking-console/pkg/mailer"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

// statusDraft is excluded from confirmation emails: drafts are not real
// bookings yet.
const statusDraft = "Draft"

type BookingService interface {
	List(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[*entity.Booking], error)
	Get(ctx context.Context, id int64) (*entity.Booking, error)
	Create(ctx context.Context, req *request.SaveBookingRequest) (*response.SaveBookingResponse, error)
	Update(ctx context.Context, id int64, req *request.SaveBookingRequest) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, req *request.DeleteBookingsRequest) (*response.DeleteBookingsResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, m mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		mailer: m,
		log:    log,
	}
}

func (s *bookingService) List(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[*entity.Booking], error) {
	filter := repository.BookingFilter{
		Search:   req.Search,
		Status:   req.Status,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		SortKey:  req.SortKey,
		SortDir:  req.SortDir,
		Limit:    req.Limit(),
		Offset:   req.Offset(),
	}

	bookings, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	return response.NewPaginatedResponse(bookings, req.Page, req.Limit(), total), nil
}

func (s *bookingService) Get(ctx context.Context, id int64) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.Int64("booking_id", id))
		return nil, fmt.Errorf("failed to get booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}
	return booking, nil
}

func (s *bookingService) Create(ctx context.Context, req *request.SaveBookingRequest) (*response.SaveBookingResponse, error) {
	booking, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Booking.Create(ctx, booking)
	if err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("pnr", booking.PNR))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", id),
		zap.String("pnr", booking.PNR))

	// Confirmation email is best effort: failures are logged, never
	// surfaced to the caller.
	if booking.Email != "" && booking.Status != statusDraft {
		go s.sendConfirmation(booking, id)
	}

	return &response.SaveBookingResponse{ID: id}, nil
}

func (s *bookingService) Update(ctx context.Context, id int64, req *request.SaveBookingRequest) error {
	existing, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking for update", zap.Error(err), zap.Int64("booking_id", id))
		return fmt.Errorf("failed to update booking")
	}
	if existing == nil {
		return fmt.Errorf("booking not found")
	}

	booking, err := s.normalize(ctx, req)
	if err != nil {
		return err
	}
	booking.ID = id

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.Int64("booking_id", id))
		return fmt.Errorf("failed to update booking")
	}

	s.log.Info("Booking updated", zap.Int64("booking_id", id))
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.Int64("booking_id", id))
		return fmt.Errorf("booking not found")
	}
	return nil
}

func (s *bookingService) DeleteMany(ctx context.Context, req *request.DeleteBookingsRequest) (*response.DeleteBookingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	deleted, err := s.repo.Booking.DeleteMany(ctx, req.IDs)
	if err != nil {
		s.log.Error("Failed to bulk delete bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to delete bookings")
	}

	return &response.DeleteBookingsResponse{Deleted: deleted}, nil
}

// normalize runs the editor payload through the form-state model: struct
// validation, new-customer creation, then submit-time normalization.
func (s *bookingService) normalize(ctx context.Context, req *request.SaveBookingRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	state := form.Hydrate(requestToBooking(req))

	// A brand-new contact becomes a customer record before the booking
	// references it. An existing record with the same email is reused.
	if state.ContactType == form.ContactTypeNew && state.Email != "" {
		customerID, err := s.ensureCustomer(ctx, state)
		if err != nil {
			return nil, err
		}
		state.CustomerID = customerID
		state.ContactType = form.ContactTypeExisting
	}

	return state.Submit(), nil
}

func (s *bookingService) ensureCustomer(ctx context.Context, state *form.State) (string, error) {
	existing, err := s.repo.Customer.FindByEmail(ctx, state.Email)
	if err != nil {
		s.log.Error("Failed to look up customer by email", zap.Error(err), zap.String("email", state.Email))
		return "", fmt.Errorf("failed to save customer")
	}
	if existing != nil {
		return existing.ID, nil
	}

	firstName := state.TravellerFirstName
	if firstName == "" {
		firstName = "Unknown"
	}
	lastName := state.TravellerLastName
	if lastName == "" {
		lastName = "Traveller"
	}
	country := state.Nationality
	if country == "" {
		country = form.DefaultNationality
	}

	customer := &entity.Customer{
		ID:               utils.GenerateUUIDString(),
		FirstName:        firstName,
		LastName:         lastName,
		Email:            state.Email,
		Phone:            state.Phone,
		PhoneCountryCode: "+977",
		DateOfBirth:      state.DOB,
		Gender:           "N/A",
		Country:          country,
		UserType:         "Traveler",
		IsActive:         true,
		Passport: entity.Passport{
			Number:       state.PassportNumber,
			ExpiryDate:   state.PassportExpiry,
			IssueCountry: country,
		},
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("email", state.Email))
		return "", fmt.Errorf("failed to save customer")
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID),
		zap.String("email", customer.Email))
	return customer.ID, nil
}

func (s *bookingService) sendConfirmation(booking *entity.Booking, id int64) {
	subject := fmt.Sprintf("Booking Confirmation - %s", booking.PNR)
	html := fmt.Sprintf(
		"<h2>Your booking is confirmed</h2>"+
			"<p>Booking reference: <strong>%s</strong></p>"+
			"<p>Route: %s → %s</p>"+
			"<p>Travel date: %s</p>",
		booking.PNR, booking.Origin, booking.Destination, derefString(booking.TravelDate))

	if err := s.mailer.Send(booking.Email, subject, html); err != nil {
		s.log.Warn("Confirmation email failed",
			zap.Error(err),
			zap.Int64("booking_id", id))
	}
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// requestToBooking maps the raw payload onto the persisted shape so the
// form-state model can hydrate from it.
func requestToBooking(req *request.SaveBookingRequest) *entity.Booking {
	return &entity.Booking{
		Email:        req.Email,
		Phone:        req.Phone,
		ContactType:  req.ContactType,
		CustomerType: req.CustomerType,
		CustomerID:   req.CustomerID,

		Travellers:         req.Travellers,
		TravellerFirstName: req.TravellerFirstName,
		TravellerLastName:  req.TravellerLastName,
		PassportNumber:     req.PassportNumber,
		PassportExpiry:     strPtr(req.PassportExpiry),
		DOB:                strPtr(req.DOB),
		Nationality:        req.Nationality,

		TripType:    req.TripType,
		TravelDate:  strPtr(req.TravelDate),
		ReturnDate:  strPtr(req.ReturnDate),
		Origin:      req.Origin,
		Destination: req.Destination,
		Transit:     req.Transit,

		Itineraries: req.Itineraries,

		Airlines:      req.Airlines,
		FlightNumber:  req.FlightNumber,
		FlightClass:   req.FlightClass,
		FrequentFlyer: req.FrequentFlyer,
		PNR:           req.PNR,
		TicketNumber:  req.TicketNumber,

		IssueMonth: req.IssueMonth,
		IssueDay:   req.IssueDay,
		IssueYear:  req.IssueYear,
		Agency:     req.Agency,
		HandledBy:  req.HandledBy,

		Status:        req.Status,
		Currency:      req.Currency,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		PaymentDate:   strPtr(req.PaymentDate),
		BuyingPrice:   req.BuyingPrice,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,

		Addons:   req.Addons,
		Prices:   req.Prices,
		Customer: req.Customer,
	}
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
