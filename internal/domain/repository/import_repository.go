package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/realtyhub/export-api/internal/domain/entity"
)

// ImportRepository composes the broker write path. Each operation runs as one
// all-or-nothing transaction; owned collections follow the delete-then-reinsert
// replacement pattern.
type ImportRepository interface {
	// CreateBroker inserts the broker row plus one row per degree, email and
	// phone number, and returns the broker with its generated id.
	CreateBroker(ctx context.Context, b *entity.Broker) (*entity.Broker, error)

	// UpdateBroker overwrites the broker core fields and fully replaces the
	// owned collections. Returns ErrNotFound when the id has no row.
	UpdateBroker(ctx context.Context, b *entity.Broker) (*entity.Broker, error)

	// DeleteBroker removes the broker row; dependents are removed by the
	// schema's cascading deletes. Returns ErrNotFound when nothing matched.
	DeleteBroker(ctx context.Context, id uuid.UUID) error
}
