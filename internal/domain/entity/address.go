package entity

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Address belongs to exactly one owner (an office or a property). Identifiers
// stay internal; the API only exposes the location fields.
type Address struct {
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Street      string `json:"street,omitempty"`
	Number      *int   `json:"number,omitempty"`
	Coordinates *Gis   `json:"coordinates,omitempty"`

	ID uuid.UUID `json:"-"`
}

// Gis is the optional coordinate pair owned by an address.
type Gis struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Cooked renders the address as a display string: country, city, street and
// house number joined with ", ". Absent components are skipped rather than
// rendered as empty markers.
func (a *Address) Cooked() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Country, a.City, a.Street} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if a.Number != nil {
		parts = append(parts, strconv.Itoa(*a.Number))
	}
	return strings.Join(parts, ", ")
}
