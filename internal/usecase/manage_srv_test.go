package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/dto/request"

	"go.uber.org/zap"
)

func newManageService(manageRepo *mockManageRepo) ManageService {
	repo := &repository.Repository{Manage: manageRepo}
	return NewManageService(repo, zap.NewNop())
}

func TestManageService_RefundKey_ReusesExistingRecord(t *testing.T) {
	manageRepo := new(mockManageRepo)
	manageRepo.On("FindByBookingID", mock.Anything, "42").
		Return(&entity.ManageBooking{UID: "key-1", BookingID: "42"}, nil)

	svc := newManageService(manageRepo)
	key, existing, err := svc.RefundKey(context.Background(), "42")

	require.NoError(t, err)
	assert.True(t, existing)
	assert.Equal(t, "key-1", key)
	manageRepo.AssertExpectations(t)
}

func TestManageService_RefundKey_GeneratesFreshKey(t *testing.T) {
	manageRepo := new(mockManageRepo)
	manageRepo.On("FindByBookingID", mock.Anything, "42").Return(nil, nil)

	svc := newManageService(manageRepo)
	key, existing, err := svc.RefundKey(context.Background(), "42")

	require.NoError(t, err)
	assert.False(t, existing)
	assert.NotEmpty(t, key)
}

func TestManageService_RefundKey_RequiresBookingID(t *testing.T) {
	svc := newManageService(new(mockManageRepo))

	_, _, err := svc.RefundKey(context.Background(), "")
	assert.ErrorContains(t, err, "required")
}

func TestManageService_Submit_RecordsRefund(t *testing.T) {
	manageRepo := new(mockManageRepo)
	manageRepo.On("FindByUID", mock.Anything, "key-1").Return(nil, nil)
	manageRepo.On("Create", mock.Anything, mock.MatchedBy(func(rec *entity.ManageBooking) bool {
		return rec.UID == "key-1" &&
			rec.BookingID == "42" &&
			rec.Type == entity.ManageTypeRefund &&
			rec.Status == entity.ManageStatusPending &&
			rec.Amount == "350.00" &&
			rec.Reason == "Requested via Admin Dashboard"
	})).Return(nil)

	svc := newManageService(manageRepo)
	record, err := svc.Submit(context.Background(), &request.ManageBookingRequest{
		UID:     "key-1",
		Booking: &entity.Booking{ID: 42, SellingPrice: "350.00"},
		UserID:  "user-1",
		Type:    "Refund",
	})

	require.NoError(t, err)
	assert.Equal(t, "key-1", record.UID)
	manageRepo.AssertExpectations(t)
}

func TestManageService_Submit_AmountFallsBackToBuyingPrice(t *testing.T) {
	manageRepo := new(mockManageRepo)
	manageRepo.On("FindByUID", mock.Anything, "key-2").Return(nil, nil)
	manageRepo.On("Create", mock.Anything, mock.MatchedBy(func(rec *entity.ManageBooking) bool {
		return rec.Amount == "200.00"
	})).Return(nil)

	svc := newManageService(manageRepo)
	_, err := svc.Submit(context.Background(), &request.ManageBookingRequest{
		UID:     "key-2",
		Booking: &entity.Booking{ID: 7, SellingPrice: "0.00", BuyingPrice: "200.00"},
		UserID:  "user-1",
		Type:    "Refund",
	})

	require.NoError(t, err)
	manageRepo.AssertExpectations(t)
}

func TestManageService_Submit_ReplayReturnsOriginalRecord(t *testing.T) {
	original := &entity.ManageBooking{UID: "key-1", BookingID: "42", Status: entity.ManageStatusPending}

	manageRepo := new(mockManageRepo)
	manageRepo.On("FindByUID", mock.Anything, "key-1").Return(original, nil)

	svc := newManageService(manageRepo)
	record, err := svc.Submit(context.Background(), &request.ManageBookingRequest{
		UID:     "key-1",
		Booking: &entity.Booking{ID: 42},
		UserID:  "user-1",
		Type:    "Refund",
	})

	require.NoError(t, err)
	assert.Same(t, original, record)
	manageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestManageService_Submit_Validation(t *testing.T) {
	svc := newManageService(new(mockManageRepo))

	tests := []struct {
		name string
		req  *request.ManageBookingRequest
	}{
		{"missing uid", &request.ManageBookingRequest{Booking: &entity.Booking{ID: 1}, UserID: "u", Type: "Refund"}},
		{"missing user", &request.ManageBookingRequest{UID: "k", Booking: &entity.Booking{ID: 1}, Type: "Refund"}},
		{"missing booking", &request.ManageBookingRequest{UID: "k", UserID: "u", Type: "Refund"}},
		{"unknown type", &request.ManageBookingRequest{UID: "k", Booking: &entity.Booking{ID: 1}, UserID: "u", Type: "Chargeback"}},
		{"no booking id", &request.ManageBookingRequest{UID: "k", Booking: &entity.Booking{}, UserID: "u", Type: "Refund"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.req)
			assert.ErrorContains(t, err, "validation failed")
		})
	}
}
