package entity

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

type TripType string

const (
	TripTypeOneWay    TripType = "One Way"
	TripTypeRoundTrip TripType = "Round Trip"
	TripTypeMultiCity TripType = "Multi City"
)

type FlightClass string

const (
	FlightClassEconomy        FlightClass = "Economy"
	FlightClassPremiumEconomy FlightClass = "Premium Economy"
	FlightClassBusiness       FlightClass = "Business"
	FlightClassFirst          FlightClass = "First Class"
)

// AddonKeys lists the five ancillary services. The addons and prices maps
// are keyed by these names and are independently editable: a checked addon
// may carry a zero price and vice versa.
var AddonKeys = []string{"meals", "wheelchair", "pickup", "dropoff", "luggage"}

type Addons map[string]bool

type Prices map[string]string

func DefaultAddons() Addons {
	a := make(Addons, len(AddonKeys))
	for _, k := range AddonKeys {
		a[k] = false
	}
	return a
}

func DefaultPrices() Prices {
	p := make(Prices, len(AddonKeys))
	for _, k := range AddonKeys {
		p[k] = "0.00"
	}
	return p
}

// Traveller is one passenger. ID is a client-generated, time-based list
// key, not a durable identity.
type Traveller struct {
	ID             string `json:"id,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PassportNumber string `json:"passportNumber,omitempty"`
	PassportExpiry string `json:"passportExpiry,omitempty"`
	DOB            string `json:"dob,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	CustomerID     string `json:"customerId,omitempty"`
}

// FlightEndpoint is one side of a segment (departure or arrival).
type FlightEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// FlightSegment is a single hop: one takeoff, one landing.
type FlightSegment struct {
	ID          string         `json:"id,omitempty"`
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Aircraft    Aircraft       `json:"aircraft,omitempty"`
	Duration    string         `json:"duration,omitempty"` // e.g. PT2H30M
}

type Aircraft struct {
	Code string `json:"code,omitempty"`
}

// FlightItinerary is one directional leg group (outbound or return).
type FlightItinerary struct {
	Duration string          `json:"duration,omitempty"`
	Segments []FlightSegment `json:"segments"`
}

// Booking is the aggregate record edited by the console. Date fields are
// nullable so the persistence layer can distinguish "not set" from empty
// text; prices stay decimal-as-string.
type Booking struct {
	ID int64 `json:"id,omitempty" db:"id"`

	// Contact
	Email        string `json:"email,omitempty" db:"email"`
	Phone        string `json:"phone,omitempty" db:"phone"`
	ContactType  string `json:"contactType,omitempty" db:"-"`
	CustomerType string `json:"customerType,omitempty" db:"-"`
	CustomerID   string `json:"customerid,omitempty" db:"customerid"`

	// Travellers plus the flat mirror of traveller index 0, retained for
	// older consumers of this record.
	Travellers         []Traveller `json:"travellers,omitempty" db:"travellers"`
	TravellerFirstName string      `json:"travellerFirstName,omitempty" db:"travellerFirstName"`
	TravellerLastName  string      `json:"travellerLastName,omitempty" db:"travellerLastName"`
	PassportNumber     string      `json:"passportNumber,omitempty" db:"passportNumber"`
	PassportExpiry     *string     `json:"passportExpiry,omitempty" db:"passportExpiry"`
	DOB                *string     `json:"dob,omitempty" db:"dob"`
	Nationality        string      `json:"nationality,omitempty" db:"nationality"`

	// Trip shape
	TripType    string  `json:"tripType" db:"tripType"`
	TravelDate  *string `json:"travelDate,omitempty" db:"travelDate"`
	ReturnDate  *string `json:"returnDate,omitempty" db:"returnDate"`
	Origin      string  `json:"origin" db:"origin"`
	Destination string  `json:"destination" db:"destination"`
	Transit     string  `json:"transit,omitempty" db:"transit"`

	Itineraries []FlightItinerary `json:"itineraries,omitempty" db:"itineraries"`

	// Flight identity
	Airlines      string `json:"airlines" db:"airlines"`
	FlightNumber  string `json:"flightNumber,omitempty" db:"flightNumber"`
	FlightClass   string `json:"flightClass,omitempty" db:"flightClass"`
	FrequentFlyer string `json:"frequentFlyer,omitempty" db:"frequentFlyer"`
	PNR           string `json:"PNR" db:"PNR"`
	TicketNumber  string `json:"ticketNumber,omitempty" db:"ticketNumber"`

	// Issue metadata (separate string fields, not a single date)
	IssueMonth string `json:"issueMonth,omitempty" db:"issueMonth"`
	IssueDay   string `json:"IssueDay,omitempty" db:"IssueDay"`
	IssueYear  string `json:"issueYear,omitempty" db:"issueYear"`
	Agency     string `json:"agency,omitempty" db:"issuedthroughagency"`
	HandledBy  string `json:"handledBy,omitempty" db:"handledBy"`

	// Commercial state
	Status        string  `json:"status,omitempty" db:"status"`
	Currency      string  `json:"currency,omitempty" db:"currency"`
	PaymentStatus string  `json:"paymentStatus,omitempty" db:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod,omitempty" db:"paymentmethod"`
	TransactionID string  `json:"transactionId,omitempty" db:"transactionId"`
	PaymentDate   *string `json:"paymentDate,omitempty" db:"dateofpayment"`
	BuyingPrice   string  `json:"buyingPrice,omitempty" db:"buyingPrice"`
	CostPrice     string  `json:"costPrice,omitempty" db:"costprice"`
	SellingPrice  string  `json:"sellingPrice,omitempty" db:"sellingPrice"`

	Addons Addons `json:"addons,omitempty" db:"addons"`
	Prices Prices `json:"prices,omitempty" db:"prices"`

	// Embedded snapshot of the selected customer, not a live reference.
	Customer *Customer `json:"customer,omitempty" db:"customer"`

	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
