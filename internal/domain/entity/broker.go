package entity

import "github.com/google/uuid"

// Broker is an agent belonging to exactly one office. The paid-user flag is
// stored in the legacy is_mls column but always exposed as isPaidUser.
type Broker struct {
	FirstName    string        `json:"firstName,omitempty"`
	LastName     string        `json:"lastName,omitempty"`
	DegreeBefore []string      `json:"degreeBefore,omitempty"`
	IsPaidUser   *bool         `json:"isPaidUser,omitempty"`
	Emails       []Email       `json:"emails,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`

	ID       uuid.UUID `json:"-"`
	OfficeID uuid.UUID `json:"-"`
}
