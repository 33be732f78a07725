package usecase

import (
	"context"
	"fmt"
	"strconv"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/dto/request"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

// refundReason is stamped on every refund raised from the console.
const refundReason = "Requested via Admin Dashboard"

type ManageService interface {
	// RefundKey returns the idempotency key for a booking: the key of an
	// existing management record when one exists, a freshly generated one
	// otherwise.
	RefundKey(ctx context.Context, bookingID string) (key string, existing bool, err error)
	Submit(ctx context.Context, req *request.ManageBookingRequest) (*entity.ManageBooking, error)
	FindByBookingID(ctx context.Context, bookingID string) (*entity.ManageBooking, error)
}

type manageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewManageService(repo *repository.Repository, log *zap.Logger) ManageService {
	return &manageService{
		repo: repo,
		log:  log,
	}
}

func (s *manageService) RefundKey(ctx context.Context, bookingID string) (string, bool, error) {
	if bookingID == "" {
		return "", false, fmt.Errorf("booking id is required")
	}

	record, err := s.repo.Manage.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to look up manage record", zap.Error(err), zap.String("booking_id", bookingID))
		return "", false, fmt.Errorf("failed to look up refund record")
	}
	if record != nil {
		return record.UID, true, nil
	}

	return utils.GenerateIdempotencyKey(), false, nil
}

// Submit records the refund/re-issue request. The caller must present a
// resolved user identity and the idempotency key it obtained up front;
// missing either is a local validation failure, no write is attempted.
func (s *manageService) Submit(ctx context.Context, req *request.ManageBookingRequest) (*entity.ManageBooking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Manage request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.Booking.ID == 0 {
		return nil, fmt.Errorf("validation failed: booking id is required")
	}

	// A retry with the same key returns the original record.
	existing, err := s.repo.Manage.FindByUID(ctx, req.UID)
	if err != nil {
		s.log.Error("Failed to check manage record", zap.Error(err), zap.String("uid", req.UID))
		return nil, fmt.Errorf("failed to submit request")
	}
	if existing != nil {
		s.log.Info("Manage request replayed",
			zap.String("uid", req.UID),
			zap.String("booking_id", existing.BookingID))
		return existing, nil
	}

	amount := req.Booking.SellingPrice
	if amount == "" || amount == "0.00" {
		amount = req.Booking.BuyingPrice
	}

	record := &entity.ManageBooking{
		UID:            req.UID,
		BookingID:      strconv.FormatInt(req.Booking.ID, 10),
		UserID:         req.UserID,
		Type:           entity.ManageType(req.Type),
		Status:         entity.ManageStatusPending,
		Amount:         amount,
		Reason:         refundReason,
		BookingDetails: req.Booking,
	}

	if err := s.repo.Manage.Create(ctx, record); err != nil {
		s.log.Error("Failed to create manage record",
			zap.Error(err),
			zap.String("uid", req.UID))
		return nil, fmt.Errorf("failed to submit request")
	}

	s.log.Info("Manage request recorded",
		zap.String("uid", record.UID),
		zap.String("booking_id", record.BookingID),
		zap.String("type", string(record.Type)))

	return record, nil
}

func (s *manageService) FindByBookingID(ctx context.Context, bookingID string) (*entity.ManageBooking, error) {
	record, err := s.repo.Manage.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find manage record", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to look up refund record")
	}
	return record, nil
}
