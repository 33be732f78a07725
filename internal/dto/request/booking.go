package request

import (
	"time"

	"booking-console/internal/data/entity"
)

// SaveBookingRequest is the raw editor payload for create and update. All
// scalar fields arrive as strings; normalization happens in the form-state
// model before persistence.
type SaveBookingRequest struct {
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	ContactType  string `json:"contactType" validate:"omitempty,oneof=existing new"`
	CustomerType string `json:"customerType" validate:"omitempty,oneof=existing new"`
	CustomerID   string `json:"customerid"`

	Travellers         []entity.Traveller `json:"travellers"`
	TravellerFirstName string             `json:"travellerFirstName"`
	TravellerLastName  string             `json:"travellerLastName"`
	PassportNumber     string             `json:"passportNumber"`
	PassportExpiry     string             `json:"passportExpiry"`
	DOB                string             `json:"dob"`
	Nationality        string             `json:"nationality"`

	TripType    string `json:"tripType" validate:"omitempty,oneof='One Way' 'Round Trip' 'Multi City'"`
	TravelDate  string `json:"travelDate"`
	ReturnDate  string `json:"returnDate"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Transit     string `json:"transit"`

	Itineraries []entity.FlightItinerary `json:"itineraries"`

	Airlines      string `json:"airlines"`
	FlightNumber  string `json:"flightNumber"`
	FlightClass   string `json:"flightClass"`
	FrequentFlyer string `json:"frequentFlyer"`
	PNR           string `json:"PNR"`
	TicketNumber  string `json:"ticketNumber"`

	IssueMonth string `json:"issueMonth"`
	IssueDay   string `json:"IssueDay"`
	IssueYear  string `json:"issueYear"`
	Agency     string `json:"agency"`
	HandledBy  string `json:"handledBy"`

	Status        string `json:"status" validate:"omitempty,oneof=Confirmed Pending Cancelled Draft"`
	Currency      string `json:"currency"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=Paid Pending Refunded"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
	PaymentDate   string `json:"paymentDate"`
	BuyingPrice   string `json:"buyingPrice"`
	CostPrice     string `json:"costPrice"`
	SellingPrice  string `json:"sellingPrice"`

	Addons entity.Addons `json:"addons"`
	Prices entity.Prices `json:"prices"`

	Customer *entity.Customer `json:"customer"`
}

// ListBookingsRequest carries the list page's query parameters.
type ListBookingsRequest struct {
	PaginatedRequest
	Search   string     `json:"q"`
	Status   string     `json:"status"`
	DateFrom *time.Time `json:"created_from"`
	DateTo   *time.Time `json:"created_to"`
	SortKey  string     `json:"sort_key"`
	SortDir  string     `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// DeleteBookingsRequest is the bulk delete body.
type DeleteBookingsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}
