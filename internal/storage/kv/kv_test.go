package kv

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("existing key", func(t *testing.T) {
		t.Parallel()

		store, mock := newStoreMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM app_state WHERE key = $1`)).
			WithArgs("flashcards").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":1}]`)))

		value, err := store.Load(context.Background(), "flashcards")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(value))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key returns nil without error", func(t *testing.T) {
		t.Parallel()

		store, mock := newStoreMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM app_state WHERE key = $1`)).
			WithArgs("flashcards").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		value, err := store.Load(context.Background(), "flashcards")
		require.NoError(t, err)
		assert.Nil(t, value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		t.Parallel()

		store, mock := newStoreMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM app_state WHERE key = $1`)).
			WithArgs("flashcards").
			WillReturnError(errors.New("connection refused"))

		_, err := store.Load(context.Background(), "flashcards")
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("upsert", func(t *testing.T) {
		t.Parallel()

		store, mock := newStoreMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO app_state`)).
			WithArgs("daily_progress", []byte(`{"streak":3}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Save(context.Background(), "daily_progress", []byte(`{"streak":3}`))
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure", func(t *testing.T) {
		t.Parallel()

		store, mock := newStoreMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO app_state`)).
			WithArgs("daily_progress", []byte(`{}`)).
			WillReturnError(errors.New("connection refused"))

		err := store.Save(context.Background(), "daily_progress", []byte(`{}`))
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemory_contract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()

	value, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Save(ctx, "k", []byte("v1")))
	require.NoError(t, store.Save(ctx, "k", []byte("v2")))

	value, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)

	// Mutating the returned slice must not corrupt the stored value.
	value[0] = 'x'
	value, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}
