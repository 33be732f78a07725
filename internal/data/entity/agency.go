package entity

import (
	"time"

	"github.com/google/uuid"
)

type Agency struct {
	UID           uuid.UUID  `json:"uid" db:"uid"`
	AgencyName    string     `json:"agency_name" db:"agency_name"`
	ContactPerson string     `json:"contact_person,omitempty" db:"contact_person"`
	Email         string     `json:"email,omitempty" db:"email"`
	Phone         string     `json:"phone,omitempty" db:"phone"`
	Status        string     `json:"status,omitempty" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
