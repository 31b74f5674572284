package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/storage"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(openDB(t))

	v, err := r.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Set(ctx, "session", []byte(`{"token":"a"}`)))
	require.NoError(t, r.Set(ctx, "session", []byte(`{"token":"b"}`)))

	v, err = r.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"b"}`, string(v))

	require.NoError(t, r.Delete(ctx, "session"))
	require.NoError(t, r.Delete(ctx, "session"))

	v, err = r.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_StampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	r := NewSQLiteRepository(db)

	require.NoError(t, r.Set(ctx, "k", []byte("v")))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata WHERE key = 'k' AND updated_at IS NOT NULL`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSet_InsideRolledBackTx(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := NewSQLiteRepository(tx).Set(ctx, "k", []byte("v")); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	v, err := NewSQLiteRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT value FROM metadata`).WillReturnError(boom)
	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(boom)
	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(boom)

	_, err = r.Get(ctx, "session")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to get metadata[session]")

	err = r.Set(ctx, "session", []byte("x"))
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to set metadata[session]")

	err = r.Delete(ctx, "session")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to delete metadata[session]")

	require.NoError(t, mock.ExpectationsWereMet())
}
