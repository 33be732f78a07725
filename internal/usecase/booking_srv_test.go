package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/dto/request"

	"go.uber.org/zap"
)

func newBookingService(bookingRepo *mockBookingRepo, customerRepo *mockCustomerRepo, m *fakeMailer) BookingService {
	repo := &repository.Repository{Booking: bookingRepo, Customer: customerRepo}
	return NewBookingService(repo, m, zap.NewNop())
}

func TestBookingService_Create_NormalizesPayload(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return b.TicketNumber == "ABC12301" && // blank ticket defaults to pnr+"01"
			b.ReturnDate == nil && // blank date becomes nil
			b.TravellerFirstName == "Sita" // traveller 0 mirrors to flat fields
	})).Return(int64(7), nil)

	svc := newBookingService(bookingRepo, new(mockCustomerRepo), newFakeMailer())
	result, err := svc.Create(context.Background(), &request.SaveBookingRequest{
		PNR: "ABC123",
		Travellers: []entity.Traveller{
			{ID: "t1", FirstName: "Sita", LastName: "Sharma"},
		},
		TripType:   "One Way",
		TravelDate: "2026-09-01",
		Origin:     "KTM",
		Status:     "Draft",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	bookingRepo.AssertExpectations(t)
}

func TestBookingService_Create_SendsConfirmationEmail(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)

	m := newFakeMailer()
	svc := newBookingService(bookingRepo, new(mockCustomerRepo), m)

	_, err := svc.Create(context.Background(), &request.SaveBookingRequest{
		PNR:    "XYZ789",
		Email:  "traveller@example.com",
		Status: "Confirmed",
	})
	require.NoError(t, err)

	select {
	case to := <-m.sent:
		assert.Equal(t, "traveller@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestBookingService_Create_SkipsEmailForDrafts(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)

	m := newFakeMailer()
	svc := newBookingService(bookingRepo, new(mockCustomerRepo), m)

	_, err := svc.Create(context.Background(), &request.SaveBookingRequest{
		PNR:    "XYZ789",
		Email:  "traveller@example.com",
		Status: "Draft",
	})
	require.NoError(t, err)

	select {
	case <-m.sent:
		t.Fatal("draft bookings must not trigger email")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBookingService_Create_NewContactCreatesCustomer(t *testing.T) {
	customerRepo := new(mockCustomerRepo)
	customerRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	customerRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Email == "new@example.com" &&
			c.FirstName == "Ram" &&
			c.Country == "Nepalese" &&
			c.UserType == "Traveler"
	})).Return(nil)

	var savedCustomerID string
	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		savedCustomerID = b.CustomerID
		return b.CustomerID != ""
	})).Return(int64(9), nil)

	svc := newBookingService(bookingRepo, customerRepo, newFakeMailer())
	_, err := svc.Create(context.Background(), &request.SaveBookingRequest{
		ContactType: "new",
		Email:       "new@example.com",
		Status:      "Draft",
		Travellers: []entity.Traveller{
			{ID: "t1", FirstName: "Ram", LastName: "KC"},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, savedCustomerID)
	customerRepo.AssertExpectations(t)
}

func TestBookingService_Create_NewContactReusesExistingCustomer(t *testing.T) {
	customerRepo := new(mockCustomerRepo)
	customerRepo.On("FindByEmail", mock.Anything, "known@example.com").
		Return(&entity.Customer{ID: "cust-5", Email: "known@example.com"}, nil)

	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return b.CustomerID == "cust-5"
	})).Return(int64(3), nil)

	svc := newBookingService(bookingRepo, customerRepo, newFakeMailer())
	_, err := svc.Create(context.Background(), &request.SaveBookingRequest{
		ContactType: "new",
		Email:       "known@example.com",
		Status:      "Draft",
	})

	require.NoError(t, err)
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Update_RequiresExistingBooking(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	svc := newBookingService(bookingRepo, new(mockCustomerRepo), newFakeMailer())
	err := svc.Update(context.Background(), 404, &request.SaveBookingRequest{})

	assert.ErrorContains(t, err, "not found")
}

func TestBookingService_List_PassesFilterThrough(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	expected := repository.BookingFilter{
		Search:  "ABC123",
		Status:  "Confirmed",
		SortKey: "travelDate",
		SortDir: "asc",
		Limit:   25,
		Offset:  50,
	}
	bookingRepo.On("List", mock.Anything, expected).Return([]*entity.Booking{{ID: 1}}, nil)
	bookingRepo.On("Count", mock.Anything, expected).Return(int64(60), nil)

	svc := newBookingService(bookingRepo, new(mockCustomerRepo), newFakeMailer())
	result, err := svc.List(context.Background(), &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 3, PerPage: 25},
		Search:           "ABC123",
		Status:           "Confirmed",
		SortKey:          "travelDate",
		SortDir:          "asc",
	})

	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(60), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	bookingRepo.AssertExpectations(t)
}

func TestBookingService_DeleteMany(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	bookingRepo.On("DeleteMany", mock.Anything, []int64{1, 2, 3}).Return(int64(3), nil)

	svc := newBookingService(bookingRepo, new(mockCustomerRepo), newFakeMailer())
	result, err := svc.DeleteMany(context.Background(), &request.DeleteBookingsRequest{IDs: []int64{1, 2, 3}})

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Deleted)

	_, err = svc.DeleteMany(context.Background(), &request.DeleteBookingsRequest{})
	assert.ErrorContains(t, err, "validation failed")
}
