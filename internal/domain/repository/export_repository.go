package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/realtyhub/export-api/internal/domain/entity"
)

// ErrNotFound is returned when a referenced row does not exist (or is not
// visible under the requested office scope).
var ErrNotFound = errors.New("not found")

// ExportRepository composes the read queries behind the export endpoints and
// hydrates the nested DTOs.
type ExportRepository interface {
	// GetPropertyByID fetches one property scoped to an office, with address,
	// coordinates, images and the optional broker aggregate. Price is masked
	// unless the public-price flag is set.
	GetPropertyByID(ctx context.Context, officeID, propertyID uuid.UUID) (*entity.Property, error)

	// GetPropertiesShortInfoForBroker returns one page of a broker's
	// properties within an office, inner-joined to address and ordered by
	// city. Pagination bounds are validated by the caller.
	GetPropertiesShortInfoForBroker(ctx context.Context, officeID, brokerID uuid.UUID, pageSize, pageNumber int) (entity.Page[entity.Property], error)

	// GetAllOffices returns every office with its address and aggregated
	// email/phone collections.
	GetAllOffices(ctx context.Context) ([]entity.Office, error)
}
