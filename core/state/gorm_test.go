package state

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockStore wires a GormStore to a sqlmock connection.
func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestGormStore_GetNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `app_state`").
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"entry_key", "entry_value", "updated_at"}))

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetReturnsValue(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"entry_key", "entry_value"}).
		AddRow("feed:Bibit", []byte(`{"fetched_at":"2026-01-28T00:00:00Z"}`))
	mock.ExpectQuery("SELECT \\* FROM `app_state`").
		WithArgs("feed:Bibit", 1).
		WillReturnRows(rows)

	got, err := store.Get(context.Background(), "feed:Bibit")
	require.NoError(t, err)
	assert.Contains(t, string(got), "fetched_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_PutUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `app_state`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.Put(context.Background(), "fingerprint", []byte("12-100-0-0"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Delete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `app_state`").
		WithArgs("feed:Bibit").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Delete(context.Background(), "feed:Bibit")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
