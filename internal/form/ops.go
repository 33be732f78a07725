package form

import (
	"strings"

	"booking-console/internal/data/entity"
	"booking-console/pkg/utils"
)

// Traveller field names accepted by SetTraveller, with the flat legacy
// field each one mirrors to when the edit targets index 0.
var travellerMirror = map[string]struct{}{
	"firstName":      {},
	"lastName":       {},
	"passportNumber": {},
	"passportExpiry": {},
	"dob":            {},
	"nationality":    {},
}

// SetField is the generic single-field update. Names prefixed "addon-"
// toggle the matching boolean flag; names prefixed "price-" rewrite the
// matching unit price. Everything else writes the top-level field of that
// name. Unknown names are ignored.
func (s *State) SetField(name, value string) {
	if key, ok := strings.CutPrefix(name, "addon-"); ok {
		if _, known := s.Addons[key]; known {
			s.Addons[key] = !s.Addons[key]
		}
		return
	}
	if key, ok := strings.CutPrefix(name, "price-"); ok {
		s.Prices[key] = value
		return
	}

	switch name {
	case "email":
		s.Email = value
	case "phone":
		s.Phone = value
	case "contactType":
		s.ContactType = value
	case "customerType":
		s.CustomerType = value
	case "customerid":
		s.CustomerID = value
	case "tripType":
		s.SetTripType(value)
	case "travelDate":
		s.TravelDate = value
	case "returnDate":
		s.ReturnDate = value
	case "origin":
		s.Origin = value
	case "destination":
		s.Destination = value
	case "transit":
		s.Transit = value
	case "airlines":
		s.Airlines = value
	case "flightNumber":
		s.FlightNumber = value
	case "flightClass":
		s.FlightClass = value
	case "frequentFlyer":
		s.FrequentFlyer = value
	case "pnr":
		s.PNR = value
	case "ticketNumber":
		s.TicketNumber = value
	case "issueMonth":
		s.IssueMonth = value
	case "IssueDay":
		s.IssueDay = value
	case "issueYear":
		s.IssueYear = value
	case "agency":
		s.Agency = value
	case "handledBy":
		s.HandledBy = value
	case "status":
		s.Status = value
	case "currency":
		s.Currency = value
	case "paymentStatus":
		s.PaymentStatus = value
	case "paymentMethod":
		s.PaymentMethod = value
	case "transactionId":
		s.TransactionID = value
	case "paymentDate":
		s.PaymentDate = value
	case "buyingPrice":
		s.BuyingPrice = value
	case "costPrice":
		s.CostPrice = value
	case "sellingPrice":
		s.SellingPrice = value
	}
}

// SetTripType rewrites the trip type and keeps the itinerary count coupled
// to it: Round Trip appends one empty itinerary while fewer than two exist,
// One Way truncates to the first itinerary. Multi City performs no array
// adjustment (itinerary counts are not managed for it).
func (s *State) SetTripType(newType string) {
	s.TripType = newType
	switch newType {
	case string(entity.TripTypeRoundTrip):
		if len(s.Itineraries) < 2 {
			s.Itineraries = append(s.Itineraries, entity.FlightItinerary{})
		}
	case string(entity.TripTypeOneWay):
		if len(s.Itineraries) > 1 {
			s.Itineraries = s.Itineraries[:1]
		}
	}
}

// SetTraveller replaces one field on the traveller at index. Edits to
// traveller 0 mirror into the matching legacy flat field in the same call,
// so no intermediate state is observable.
func (s *State) SetTraveller(index int, field, value string) {
	if index < 0 || index >= len(s.Travellers) {
		return
	}

	t := &s.Travellers[index]
	switch field {
	case "firstName":
		t.FirstName = value
	case "lastName":
		t.LastName = value
	case "passportNumber":
		t.PassportNumber = value
	case "passportExpiry":
		t.PassportExpiry = value
	case "dob":
		t.DOB = value
	case "nationality":
		t.Nationality = value
	case "customerId":
		t.CustomerID = value
	default:
		return
	}

	if index != 0 {
		return
	}
	if _, mirrored := travellerMirror[field]; !mirrored {
		return
	}
	switch field {
	case "firstName":
		s.TravellerFirstName = value
	case "lastName":
		s.TravellerLastName = value
	case "passportNumber":
		s.PassportNumber = value
	case "passportExpiry":
		s.PassportExpiry = value
	case "dob":
		s.DOB = value
	case "nationality":
		s.Nationality = value
	}
}

// AddTraveller appends a traveller with a fresh list key and the default
// nationality; all other fields start empty.
func (s *State) AddTraveller() {
	s.Travellers = append(s.Travellers, entity.Traveller{
		ID:          utils.GenerateTravellerID(),
		Nationality: DefaultNationality,
	})
}

// RemoveTraveller drops the traveller at index. The list never goes below
// one entry: removal with a single traveller is a no-op.
func (s *State) RemoveTraveller(index int) {
	if len(s.Travellers) <= 1 {
		return
	}
	if index < 0 || index >= len(s.Travellers) {
		return
	}
	s.Travellers = append(s.Travellers[:index], s.Travellers[index+1:]...)
}

// SelectCustomerForTraveller fills the traveller at index from a customer
// record chosen via the traveller-linking search. For index 0 the flat
// legacy fields are mirrored as well, top-level email/phone are backfilled
// only when currently empty, and the contact becomes an existing customer.
func (s *State) SelectCustomerForTraveller(index int, c *entity.Customer) {
	if c == nil || index < 0 || index > len(s.Travellers) {
		return
	}
	if index == len(s.Travellers) {
		s.Travellers = append(s.Travellers, entity.Traveller{
			ID: utils.GenerateTravellerID(),
		})
	}

	t := &s.Travellers[index]
	t.FirstName = c.FirstName
	t.LastName = c.LastName
	t.PassportNumber = c.Passport.Number
	t.PassportExpiry = c.Passport.ExpiryDate
	t.DOB = c.DateOfBirth
	t.Nationality = valueOr(c.Country, DefaultNationality)
	t.CustomerID = c.ID

	if index != 0 {
		return
	}

	s.TravellerFirstName = c.FirstName
	s.TravellerLastName = c.LastName
	s.PassportNumber = c.Passport.Number
	s.PassportExpiry = c.Passport.ExpiryDate
	s.DOB = c.DateOfBirth
	s.Nationality = valueOr(c.Country, DefaultNationality)

	// Backfill contact info without overwriting user-entered values.
	if s.Email == "" {
		s.Email = c.Email
	}
	if s.Phone == "" {
		s.Phone = c.Phone
	}
	s.CustomerID = c.ID
	s.CustomerType = ContactTypeExisting
	s.Customer = c
}

// SelectCustomerForContact is the generic "existing customer" path: it
// overwrites the top-level contact fields and traveller 0, falling back to
// the previous value wherever the customer record lacks a field.
// Travellers at index 1 and above are untouched.
func (s *State) SelectCustomerForContact(c *entity.Customer) {
	if c == nil {
		return
	}

	s.Email = valueOr(c.Email, s.Email)
	s.Phone = valueOr(c.Phone, s.Phone)
	s.Nationality = valueOr(c.Country, s.Nationality)
	s.CustomerID = valueOr(c.ID, s.CustomerID)

	s.TravellerFirstName = valueOr(c.FirstName, s.TravellerFirstName)
	s.TravellerLastName = valueOr(c.LastName, s.TravellerLastName)
	s.PassportNumber = valueOr(c.Passport.Number, s.PassportNumber)
	s.PassportExpiry = valueOr(c.Passport.ExpiryDate, s.PassportExpiry)
	s.DOB = valueOr(c.DateOfBirth, s.DOB)

	if len(s.Travellers) > 0 {
		t := &s.Travellers[0]
		t.FirstName = valueOr(c.FirstName, t.FirstName)
		t.LastName = valueOr(c.LastName, t.LastName)
		t.PassportNumber = valueOr(c.Passport.Number, t.PassportNumber)
		t.PassportExpiry = valueOr(c.Passport.ExpiryDate, t.PassportExpiry)
		t.DOB = valueOr(c.DateOfBirth, t.DOB)
		t.Nationality = valueOr(c.Country, t.Nationality)
		t.CustomerID = valueOr(c.ID, t.CustomerID)
	}
	s.Customer = c
}

// AddSegment appends an empty segment to the itinerary at itineraryIndex.
func (s *State) AddSegment(itineraryIndex int) {
	if itineraryIndex < 0 || itineraryIndex >= len(s.Itineraries) {
		return
	}
	it := &s.Itineraries[itineraryIndex]
	it.Segments = append(it.Segments, entity.FlightSegment{})
}

// RemoveSegment drops one segment. No floor applies: an itinerary may
// reach zero segments.
func (s *State) RemoveSegment(itineraryIndex, segmentIndex int) {
	if itineraryIndex < 0 || itineraryIndex >= len(s.Itineraries) {
		return
	}
	it := &s.Itineraries[itineraryIndex]
	if segmentIndex < 0 || segmentIndex >= len(it.Segments) {
		return
	}
	it.Segments = append(it.Segments[:segmentIndex], it.Segments[segmentIndex+1:]...)
}

// SetSegmentField updates one segment field. With nestedField set, the
// value is merged into the departure/arrival/aircraft sub-object without
// disturbing its sibling keys; otherwise the field is replaced directly.
func (s *State) SetSegmentField(itineraryIndex, segmentIndex int, field, value, nestedField string) {
	if itineraryIndex < 0 || itineraryIndex >= len(s.Itineraries) {
		return
	}
	it := &s.Itineraries[itineraryIndex]
	if segmentIndex < 0 || segmentIndex >= len(it.Segments) {
		return
	}
	seg := &it.Segments[segmentIndex]

	if nestedField == "" {
		switch field {
		case "carrierCode":
			seg.CarrierCode = value
		case "number":
			seg.Number = value
		case "duration":
			seg.Duration = value
		}
		return
	}

	switch field {
	case "departure":
		setEndpointField(&seg.Departure, nestedField, value)
	case "arrival":
		setEndpointField(&seg.Arrival, nestedField, value)
	case "aircraft":
		if nestedField == "code" {
			seg.Aircraft.Code = value
		}
	}
}

func setEndpointField(e *entity.FlightEndpoint, field, value string) {
	switch field {
	case "iataCode":
		e.IATACode = value
	case "terminal":
		e.Terminal = value
	case "at":
		e.At = value
	}
}
