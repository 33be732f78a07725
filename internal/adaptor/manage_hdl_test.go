package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-console/internal/data/entity"
	"booking-console/internal/dto/request"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type mockManageService struct {
	mock.Mock
}

func (m *mockManageService) RefundKey(ctx context.Context, bookingID string) (string, bool, error) {
	args := m.Called(ctx, bookingID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockManageService) Submit(ctx context.Context, req *request.ManageBookingRequest) (*entity.ManageBooking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ManageBooking), args.Error(1)
}

func (m *mockManageService) FindByBookingID(ctx context.Context, bookingID string) (*entity.ManageBooking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ManageBooking), args.Error(1)
}

func submitBody(t *testing.T, userID string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(request.ManageBookingRequest{
		UID:     "key-1",
		Booking: &entity.Booking{ID: 42, SellingPrice: "350.00"},
		UserID:  userID,
		Type:    "Refund",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestManageHandler_Submit_RequiresAuthenticatedUser(t *testing.T) {
	svc := new(mockManageService)
	h := NewManageHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/manage-booking", submitBody(t, ""))
	rec := httptest.NewRecorder()
	h.SubmitManageRequest(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestManageHandler_Submit_RejectsMismatchedUser(t *testing.T) {
	svc := new(mockManageService)
	h := NewManageHandler(svc, zap.NewNop())

	ctx := utils.SetUserContext(context.Background(), uuid.New(), "agent")
	req := httptest.NewRequest(http.MethodPost, "/api/manage-booking", submitBody(t, uuid.NewString()))
	rec := httptest.NewRecorder()
	h.SubmitManageRequest(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestManageHandler_Submit_FillsUserFromSession(t *testing.T) {
	sessionUser := uuid.New()

	svc := new(mockManageService)
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(r *request.ManageBookingRequest) bool {
		return r.UserID == sessionUser.String()
	})).Return(&entity.ManageBooking{UID: "key-1", Status: entity.ManageStatusPending}, nil)

	h := NewManageHandler(svc, zap.NewNop())

	ctx := utils.SetUserContext(context.Background(), sessionUser, "agent")
	req := httptest.NewRequest(http.MethodPost, "/api/manage-booking", submitBody(t, ""))
	rec := httptest.NewRecorder()
	h.SubmitManageRequest(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestManageHandler_GetRefundKey(t *testing.T) {
	svc := new(mockManageService)
	svc.On("RefundKey", mock.Anything, "42").Return("existing-key", true, nil)

	h := NewManageHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/manage-booking?booking_id=42", nil)
	rec := httptest.NewRecorder()
	h.GetRefundKey(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			UID      string `json:"uid"`
			Existing bool   `json:"existing"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "existing-key", envelope.Data.UID)
	assert.True(t, envelope.Data.Existing)
}

func TestManageHandler_GetRefundKey_MissingBookingID(t *testing.T) {
	svc := new(mockManageService)
	h := NewManageHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/manage-booking", nil)
	rec := httptest.NewRecorder()
	h.GetRefundKey(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "RefundKey", mock.Anything, mock.Anything)
}
