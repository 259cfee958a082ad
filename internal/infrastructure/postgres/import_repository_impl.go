package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/realtyhub/export-api/internal/domain/entity"
	"github.com/realtyhub/export-api/internal/domain/repository"
)

// errMissingGeneratedID signals that an insert returned no generated
// identifier; that is a database misconfiguration, not a retryable condition.
var errMissingGeneratedID = errors.New("insert returned no generated id")

type ImportRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewImportRepository(db *sql.DB, logger *logrus.Logger) *ImportRepository {
	return &ImportRepository{db: db, logger: logger}
}

// CreateBroker inserts the broker row and one row per degree, email and phone
// number, all inside a single transaction. Any failure rolls back the whole
// creation including the broker row itself.
func (r *ImportRepository) CreateBroker(ctx context.Context, b *entity.Broker) (*entity.Broker, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var id uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO broker (first_name, last_name, office_id, is_mls)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, b.FirstName, b.LastName, b.OfficeID, isPaid(b)).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("create broker: %w", errMissingGeneratedID)
		}
		return nil, err
	}
	b.ID = id

	if err := insertOwnedCollections(ctx, tx, b); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBroker overwrites the broker core fields and fully replaces the owned
// collections with the ones on the input. An empty collection therefore wipes
// all prior entries of that kind.
func (r *ImportRepository) UpdateBroker(ctx context.Context, b *entity.Broker) (*entity.Broker, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM broker WHERE id = $1)
	`, b.ID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE broker SET first_name = $1, last_name = $2, is_mls = $3
		WHERE id = $4
	`, b.FirstName, b.LastName, isPaid(b), b.ID)
	if err != nil {
		return nil, err
	}

	for _, table := range []string{"broker_degree", "email", "phone_number"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE broker_id = $1`, b.ID); err != nil {
			return nil, err
		}
	}
	if err := insertOwnedCollections(ctx, tx, b); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBroker issues the single delete; removal of degrees, emails, phone
// numbers and properties is owned by the schema's cascading foreign keys.
func (r *ImportRepository) DeleteBroker(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM broker WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	r.logger.WithField("broker_id", id).Info("broker deleted along with dependent records")
	return nil
}

// insertOwnedCollections adds one row per degree, email and phone number for
// the broker on b. Absent or empty collections insert nothing.
func insertOwnedCollections(ctx context.Context, tx *sql.Tx, b *entity.Broker) error {
	for _, degree := range b.DegreeBefore {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO broker_degree (broker_id, degree_name) VALUES ($1, $2)
		`, b.ID, degree)
		if err != nil {
			return err
		}
	}

	owner := entity.BrokerOwner(b.ID)
	for _, email := range b.Emails {
		if err := insertEmail(ctx, tx, owner, email); err != nil {
			return err
		}
	}
	for _, phone := range b.PhoneNumbers {
		if err := insertPhoneNumber(ctx, tx, owner, phone); err != nil {
			return err
		}
	}
	return nil
}

func insertEmail(ctx context.Context, tx *sql.Tx, owner entity.OwnerRef, e entity.Email) error {
	brokerID, officeID := owner.Columns()
	_, err := tx.ExecContext(ctx, `
		INSERT INTO email (email, type, broker_id, office_id)
		VALUES ($1, $2, $3, $4)
	`, e.Email, nullString(e.Type), brokerID, officeID)
	return err
}

func insertPhoneNumber(ctx context.Context, tx *sql.Tx, owner entity.OwnerRef, p entity.PhoneNumber) error {
	brokerID, officeID := owner.Columns()
	_, err := tx.ExecContext(ctx, `
		INSERT INTO phone_number (number, type, broker_id, office_id)
		VALUES ($1, $2, $3, $4)
	`, p.Number, nullString(p.Type), brokerID, officeID)
	return err
}

func isPaid(b *entity.Broker) bool {
	return b.IsPaidUser != nil && *b.IsPaidUser
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ repository.ImportRepository = (*ImportRepository)(nil)
