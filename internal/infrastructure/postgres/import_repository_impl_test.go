package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyhub/export-api/internal/domain/entity"
	"github.com/realtyhub/export-api/internal/domain/repository"
)

func setupImportRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *ImportRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return db, mock, NewImportRepository(db, logger)
}

func boolPtr(b bool) *bool { return &b }

func TestCreateBroker_Success(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	officeID := uuid.New()
	brokerID := uuid.New()

	b := &entity.Broker{
		FirstName:    "Ann",
		LastName:     "Lee",
		OfficeID:     officeID,
		IsPaidUser:   boolPtr(true),
		DegreeBefore: []string{"MBA"},
		Emails:       []entity.Email{{Email: "ann@x.com", Type: "work"}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO broker`).
		WithArgs("Ann", "Lee", officeID, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(brokerID.String()))
	mock.ExpectExec(`INSERT INTO broker_degree`).
		WithArgs(brokerID.String(), "MBA").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO email`).
		WithArgs("ann@x.com", "work", brokerID.String(), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateBroker(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, brokerID, created.ID)
	assert.Equal(t, "Ann", created.FirstName)
	assert.Len(t, created.Emails, 1)
	assert.Len(t, created.DegreeBefore, 1)
	assert.Empty(t, created.PhoneNumbers)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBroker_EmptyCollectionsInsertNothing(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	officeID := uuid.New()
	brokerID := uuid.New()

	b := &entity.Broker{FirstName: "Bo", LastName: "Nez", OfficeID: officeID}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO broker`).
		WithArgs("Bo", "Nez", officeID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(brokerID.String()))
	mock.ExpectCommit()

	created, err := repo.CreateBroker(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, brokerID, created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBroker_MissingGeneratedID(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	b := &entity.Broker{FirstName: "Ann", LastName: "Lee", OfficeID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO broker`).
		WithArgs("Ann", "Lee", b.OfficeID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.CreateBroker(context.Background(), b)
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingGeneratedID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBroker_SubInsertFailureRollsBack(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	officeID := uuid.New()
	brokerID := uuid.New()
	boom := errors.New("constraint violation")

	b := &entity.Broker{
		FirstName:    "Ann",
		LastName:     "Lee",
		OfficeID:     officeID,
		DegreeBefore: []string{"MBA"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO broker`).
		WithArgs("Ann", "Lee", officeID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(brokerID.String()))
	mock.ExpectExec(`INSERT INTO broker_degree`).
		WithArgs(brokerID.String(), "MBA").
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := repo.CreateBroker(context.Background(), b)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBroker_NotFound(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	b := &entity.Broker{ID: uuid.New(), FirstName: "Ann", LastName: "Lee"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(b.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.UpdateBroker(context.Background(), b)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBroker_ReplacesOwnedCollections(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	brokerID := uuid.New()
	b := &entity.Broker{
		ID:         brokerID,
		FirstName:  "Ann",
		LastName:   "Lee",
		IsPaidUser: boolPtr(false),
		Emails:     []entity.Email{{Email: "b@y.com", Type: "home"}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(brokerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`UPDATE broker SET`).
		WithArgs("Ann", "Lee", false, brokerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// full replacement: wipe every owned collection, then re-insert the input
	mock.ExpectExec(`DELETE FROM broker_degree WHERE broker_id`).
		WithArgs(brokerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM email WHERE broker_id`).
		WithArgs(brokerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM phone_number WHERE broker_id`).
		WithArgs(brokerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO email`).
		WithArgs("b@y.com", "home", brokerID.String(), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.UpdateBroker(context.Background(), b)
	require.NoError(t, err)
	assert.Len(t, updated.Emails, 1)
	assert.Equal(t, "b@y.com", updated.Emails[0].Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBroker_Success(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	brokerID := uuid.New()

	mock.ExpectExec(`DELETE FROM broker WHERE`).
		WithArgs(brokerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteBroker(context.Background(), brokerID)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBroker_NotFound(t *testing.T) {
	db, mock, repo := setupImportRepo(t)
	defer db.Close()

	brokerID := uuid.New()

	mock.ExpectExec(`DELETE FROM broker WHERE`).
		WithArgs(brokerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBroker(context.Background(), brokerID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
