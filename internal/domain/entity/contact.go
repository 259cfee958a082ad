package entity

import "github.com/google/uuid"

// Email is a contact entry owned by exactly one broker or one office.
type Email struct {
	Email string `json:"email"`
	Type  string `json:"type,omitempty"`
}

// PhoneNumber is a contact entry owned by exactly one broker or one office.
type PhoneNumber struct {
	Number string `json:"number"`
	Type   string `json:"type,omitempty"`
}

// OwnerKind discriminates contact ownership.
type OwnerKind int

const (
	OwnerBroker OwnerKind = iota + 1
	OwnerOffice
)

// OwnerRef identifies the single owner of a contact row. The schema stores
// ownership as a broker_id/office_id column pair guarded by a check
// constraint; OwnerRef makes the exclusivity unrepresentable in application
// code since only one of the two constructors can produce a value.
type OwnerRef struct {
	kind OwnerKind
	id   uuid.UUID
}

func BrokerOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{kind: OwnerBroker, id: id}
}

func OfficeOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{kind: OwnerOffice, id: id}
}

func (o OwnerRef) Kind() OwnerKind { return o.kind }
func (o OwnerRef) ID() uuid.UUID   { return o.id }

// Columns splits the reference into the nullable broker_id/office_id pair the
// contact tables expect. Exactly one of the returned values is non-nil.
func (o OwnerRef) Columns() (brokerID, officeID *uuid.UUID) {
	switch o.kind {
	case OwnerBroker:
		return &o.id, nil
	case OwnerOffice:
		return nil, &o.id
	}
	return nil, nil
}
