// Package form owns the booking form-state model: a nested record of
// contact info, travellers, itineraries and pricing with bidirectional
// synchronization between its flat legacy fields and its nested
// collections. All operations are synchronous and side-effect-free apart
// from the documented mirroring rules; the state is discarded when the
// editing session closes.
package form

import (
	"booking-console/internal/data/entity"
	"booking-console/pkg/utils"
)

// DefaultNationality is applied wherever a traveller nationality is absent.
const DefaultNationality = "Nepalese"

const (
	ContactTypeExisting = "existing"
	ContactTypeNew      = "new"
)

// State is the in-memory booking being edited. Prices are decimal-as-string
// throughout; dates are strings until submit-time normalization.
type State struct {
	// Contact
	Email        string
	Phone        string
	ContactType  string
	CustomerType string
	CustomerID   string

	// Travellers, never empty, plus the legacy flat mirror of index 0.
	Travellers         []entity.Traveller
	TravellerFirstName string
	TravellerLastName  string
	PassportNumber     string
	PassportExpiry     string
	DOB                string
	Nationality        string

	// Trip shape
	TripType    string
	TravelDate  string
	ReturnDate  string
	Origin      string
	Destination string
	Transit     string

	Itineraries []entity.FlightItinerary

	// Flight identity
	Airlines      string
	FlightNumber  string
	FlightClass   string
	FrequentFlyer string
	PNR           string
	TicketNumber  string

	// Issue metadata
	IssueMonth string
	IssueDay   string
	IssueYear  string
	Agency     string
	HandledBy  string

	// Commercial state
	Status        string
	Currency      string
	PaymentStatus string
	PaymentMethod string
	TransactionID string
	PaymentDate   string
	BuyingPrice   string
	CostPrice     string
	SellingPrice  string

	Addons entity.Addons
	Prices entity.Prices

	// Snapshot of the selected customer, not a live reference.
	Customer *entity.Customer
}

// New returns the fresh state used when the editor opens without an
// existing booking: one empty traveller, one empty itinerary.
func New() *State {
	return &State{
		Travellers: []entity.Traveller{{
			ID:          utils.GenerateTravellerID(),
			Nationality: DefaultNationality,
		}},
		Nationality:   DefaultNationality,
		TripType:      string(entity.TripTypeOneWay),
		Itineraries:   []entity.FlightItinerary{{}},
		FlightClass:   string(entity.FlightClassEconomy),
		Status:        string(entity.BookingStatusConfirmed),
		Currency:      "USD",
		PaymentStatus: string(entity.PaymentStatusPending),
		BuyingPrice:   "0.00",
		CostPrice:     "0.00",
		SellingPrice:  "0.00",
		Addons:        entity.DefaultAddons(),
		Prices:        entity.DefaultPrices(),
		ContactType:   ContactTypeExisting,
		CustomerType:  ContactTypeExisting,
	}
}

// Hydrate returns state populated from a persisted booking. When the stored
// record has no travellers array, a single traveller is rebuilt from the
// legacy flat fields.
func Hydrate(b *entity.Booking) *State {
	s := New()
	if b == nil {
		return s
	}

	if len(b.Travellers) > 0 {
		s.Travellers = append([]entity.Traveller(nil), b.Travellers...)
	} else {
		s.Travellers = []entity.Traveller{{
			ID:             utils.GenerateTravellerID(),
			FirstName:      b.TravellerFirstName,
			LastName:       b.TravellerLastName,
			PassportNumber: b.PassportNumber,
			PassportExpiry: deref(b.PassportExpiry),
			DOB:            deref(b.DOB),
			Nationality:    valueOr(b.Nationality, DefaultNationality),
		}}
	}

	s.Email = b.Email
	s.Phone = b.Phone
	s.ContactType = valueOr(b.ContactType, ContactTypeExisting)
	s.CustomerType = valueOr(b.CustomerType, ContactTypeExisting)
	s.CustomerID = b.CustomerID

	s.TravellerFirstName = b.TravellerFirstName
	s.TravellerLastName = b.TravellerLastName
	s.PassportNumber = b.PassportNumber
	s.PassportExpiry = deref(b.PassportExpiry)
	s.DOB = deref(b.DOB)
	s.Nationality = valueOr(b.Nationality, DefaultNationality)

	s.TripType = valueOr(b.TripType, string(entity.TripTypeOneWay))
	s.TravelDate = deref(b.TravelDate)
	s.ReturnDate = deref(b.ReturnDate)
	s.Origin = b.Origin
	s.Destination = b.Destination
	s.Transit = b.Transit

	if len(b.Itineraries) > 0 {
		s.Itineraries = append([]entity.FlightItinerary(nil), b.Itineraries...)
	}

	s.Airlines = b.Airlines
	s.FlightNumber = b.FlightNumber
	s.FlightClass = valueOr(b.FlightClass, string(entity.FlightClassEconomy))
	s.FrequentFlyer = b.FrequentFlyer
	s.PNR = b.PNR
	s.TicketNumber = b.TicketNumber

	s.IssueMonth = b.IssueMonth
	s.IssueDay = b.IssueDay
	s.IssueYear = b.IssueYear
	s.Agency = b.Agency
	s.HandledBy = b.HandledBy

	s.Status = valueOr(b.Status, string(entity.BookingStatusConfirmed))
	s.Currency = valueOr(b.Currency, "USD")
	s.PaymentStatus = valueOr(b.PaymentStatus, string(entity.PaymentStatusPending))
	s.PaymentMethod = b.PaymentMethod
	s.TransactionID = b.TransactionID
	s.PaymentDate = deref(b.PaymentDate)
	s.BuyingPrice = valueOr(b.BuyingPrice, "0.00")
	s.CostPrice = valueOr(b.CostPrice, "0.00")
	s.SellingPrice = valueOr(b.SellingPrice, "0.00")

	if b.Addons != nil {
		s.Addons = cloneAddons(b.Addons)
	}
	if b.Prices != nil {
		s.Prices = clonePrices(b.Prices)
	}
	s.Customer = b.Customer

	return s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func cloneAddons(in entity.Addons) entity.Addons {
	out := make(entity.Addons, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func clonePrices(in entity.Prices) entity.Prices {
	out := make(entity.Prices, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
