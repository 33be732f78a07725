package form

import (
	"strconv"
	"strings"
	"time"

	"booking-console/internal/data/entity"
)

// Submit normalizes the state into the persisted booking shape. Blank
// date-valued fields become nil so the persistence layer can distinguish
// "not set" from empty text; traveller 0 takes precedence over the legacy
// flat fields; a blank ticket number defaults to pnr + "01"; blank issue
// date parts default to the current date.
func (s *State) Submit() *entity.Booking {
	return s.buildPayload(time.Now())
}

func (s *State) buildPayload(now time.Time) *entity.Booking {
	b := &entity.Booking{
		Email:        s.Email,
		Phone:        s.Phone,
		ContactType:  s.ContactType,
		CustomerType: s.CustomerType,
		CustomerID:   s.CustomerID,

		TripType:    s.TripType,
		TravelDate:  nilableDate(s.TravelDate),
		ReturnDate:  nilableDate(s.ReturnDate),
		Origin:      s.Origin,
		Destination: s.Destination,
		Transit:     s.Transit,

		Airlines:      s.Airlines,
		FlightNumber:  s.FlightNumber,
		FlightClass:   s.FlightClass,
		FrequentFlyer: s.FrequentFlyer,
		PNR:           s.PNR,
		TicketNumber:  s.TicketNumber,

		IssueMonth: s.IssueMonth,
		IssueDay:   s.IssueDay,
		IssueYear:  s.IssueYear,
		Agency:     s.Agency,
		HandledBy:  s.HandledBy,

		Status:        s.Status,
		Currency:      s.Currency,
		PaymentStatus: s.PaymentStatus,
		PaymentMethod: s.PaymentMethod,
		TransactionID: s.TransactionID,
		PaymentDate:   nilableDate(s.PaymentDate),
		BuyingPrice:   s.BuyingPrice,
		CostPrice:     s.CostPrice,
		SellingPrice:  s.SellingPrice,

		Addons:   cloneAddons(s.Addons),
		Prices:   clonePrices(s.Prices),
		Customer: s.Customer,
	}

	b.Travellers = append([]entity.Traveller(nil), s.Travellers...)
	b.Itineraries = append([]entity.FlightItinerary(nil), s.Itineraries...)

	// The traveller array is authoritative for the flat legacy fields.
	if len(s.Travellers) > 0 {
		t := s.Travellers[0]
		b.TravellerFirstName = valueOr(t.FirstName, s.TravellerFirstName)
		b.TravellerLastName = valueOr(t.LastName, s.TravellerLastName)
		b.PassportNumber = valueOr(t.PassportNumber, s.PassportNumber)
		b.PassportExpiry = nilableDate(valueOr(t.PassportExpiry, s.PassportExpiry))
		b.DOB = nilableDate(valueOr(t.DOB, s.DOB))
		b.Nationality = valueOr(t.Nationality, s.Nationality)
	} else {
		b.TravellerFirstName = s.TravellerFirstName
		b.TravellerLastName = s.TravellerLastName
		b.PassportNumber = s.PassportNumber
		b.PassportExpiry = nilableDate(s.PassportExpiry)
		b.DOB = nilableDate(s.DOB)
		b.Nationality = s.Nationality
	}

	if strings.TrimSpace(b.TicketNumber) == "" {
		b.TicketNumber = s.PNR + "01"
	}

	if strings.TrimSpace(b.IssueMonth) == "" {
		b.IssueMonth = strconv.Itoa(int(now.Month()))
	}
	if strings.TrimSpace(b.IssueDay) == "" {
		b.IssueDay = strconv.Itoa(now.Day())
	}
	if strings.TrimSpace(b.IssueYear) == "" {
		b.IssueYear = strconv.Itoa(now.Year())
	}

	return b
}

// nilableDate maps a blank date string to nil and anything else to a
// pointer copy.
func nilableDate(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	d := v
	return &d
}
