package entity

import "github.com/google/uuid"

// Office is the export shape for a real-estate office with its aggregated
// contact collections. CookedAddress is a derived display string, not a
// normalized field.
type Office struct {
	OfficeName    string        `json:"officeName,omitempty"`
	Address       *Address      `json:"address,omitempty"`
	DateOpening   *Date         `json:"dateOpening,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	Emails        []Email       `json:"emails,omitempty"`
	PhoneNumbers  []PhoneNumber `json:"phoneNumbers,omitempty"`
	CookedAddress string        `json:"cookedAddress,omitempty"`

	ID uuid.UUID `json:"-"`
}
