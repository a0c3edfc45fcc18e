package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &SQLiteStore{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestSaveSlotsRollsBackOnWriteFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO slots").
		WithArgs("areas", "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO slots").
		WithArgs("tasks", "[]", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.SaveSlots(context.Background(), map[string][]byte{
		SlotTasks: []byte("[]"),
		SlotAreas: []byte("[]"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving slot tasks")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSlotsCommitsOnce(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.SaveSlots(context.Background(), map[string][]byte{
		SlotHeadings: []byte("[]"),
		SlotProjects: []byte("[]"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSlotsEmptyIsNoop(t *testing.T) {
	s, mock := newMockStore(t)

	require.NoError(t, s.SaveSlots(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSlotsWrapsQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT name, value FROM slots").
		WillReturnError(errors.New("locked"))

	_, err := s.LoadSlots(context.Background(), SlotTasks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying slots")
	assert.NoError(t, mock.ExpectationsWereMet())
}
