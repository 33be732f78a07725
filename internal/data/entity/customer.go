package entity

import "time"

type Passport struct {
	Number       string `json:"number,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	IssueCountry string `json:"issueCountry,omitempty"`
}

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Customer struct {
	ID               string    `json:"id,omitempty" db:"id"`
	FirstName        string    `json:"firstName" db:"firstName"`
	LastName         string    `json:"lastName" db:"lastName"`
	Email            string    `json:"email,omitempty" db:"email"`
	Phone            string    `json:"phone,omitempty" db:"phone"`
	PhoneCountryCode string    `json:"phoneCountryCode,omitempty" db:"phoneCountryCode"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty" db:"dateOfBirth"`
	Gender           string    `json:"gender,omitempty" db:"gender"`
	Country          string    `json:"country,omitempty" db:"country"`
	UserType         string    `json:"userType,omitempty" db:"userType"`
	IsActive         bool      `json:"isActive" db:"isActive"`
	IsVerified       bool      `json:"isVerified" db:"isVerified"`
	IsDisabled       bool      `json:"isDisabled" db:"isDisabled"`
	Passport         Passport  `json:"passport,omitempty" db:"passport"`
	Address          Address   `json:"address,omitempty" db:"address"`
	CreatedAt        time.Time `json:"created_at,omitempty" db:"created_at"`
}
