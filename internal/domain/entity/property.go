package entity

import "github.com/google/uuid"

// Property is the export shape for a real-estate listing. Price carries a
// value only when the owner opted into a public price; a masked price is an
// absent field, never zero.
type Property struct {
	Images        []string `json:"images,omitempty"`
	Price         *int     `json:"price,omitempty"`
	IsPublicPrice *bool    `json:"isPublicPrice,omitempty"`
	Broker        *Broker  `json:"broker,omitempty"`
	Address       *Address `json:"address,omitempty"`

	ID        uuid.UUID  `json:"-"`
	BrokerID  *uuid.UUID `json:"-"`
	AddressID uuid.UUID  `json:"-"`
}
