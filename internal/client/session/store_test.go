package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/repositories/metadata"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/storage"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
)

func newStore(t *testing.T, dsn string) *MetadataStore {
	t.Helper()
	db, err := storage.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMetadataStore(metadata.NewSQLiteRepository(db))
}

func sampleSession() models.Session {
	return models.Session{
		Token: "tok-1",
		User: models.UserProfile{
			ID:        "u1",
			Name:      "Juan Dela Cruz",
			Email:     "juan@example.com",
			Birthdate: "1990-01-01",
			Address:   "Purok 1",
		},
	}
}

func TestStore_EmptyGetReturnsNil(t *testing.T) {
	s := newStore(t, ":memory:")

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveThenGet(t *testing.T) {
	s := newStore(t, ":memory:")
	ctx := context.Background()

	want := sampleSession()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newStore(t, ":memory:")
	ctx := context.Background()

	first := sampleSession()
	second := sampleSession()
	second.Token = "tok-2"
	second.User.Email = "other@example.com"

	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-2", got.Token)
	assert.Equal(t, "other@example.com", got.User.Email)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := newStore(t, ":memory:")
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Save(ctx, sampleSession()))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetDoesNotMutate(t *testing.T) {
	s := newStore(t, ":memory:")
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleSession()))

	a, err := s.Get(ctx)
	require.NoError(t, err)
	b, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewMetadataStore(metadata.NewSQLiteRepository(db)).Save(ctx, sampleSession()))
	require.NoError(t, db.Close())

	reopened := newStore(t, path)
	got, err := reopened.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "u1", got.User.ID)
}

type fakeRepo struct {
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func (f *fakeRepo) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func TestStore_UsesSessionKey(t *testing.T) {
	repo := &fakeRepo{data: map[string][]byte{}}
	s := NewMetadataStore(repo)

	require.NoError(t, s.Save(context.Background(), sampleSession()))
	assert.Contains(t, string(repo.data[common.SessionStorageKey]), `"token":"tok-1"`)
}

func TestStore_ErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk gone")
	ctx := context.Background()

	s := NewMetadataStore(&fakeRepo{data: map[string][]byte{}, getErr: boom, setErr: boom, delErr: boom})

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Save(ctx, sampleSession()), boom)
	require.ErrorIs(t, s.Clear(ctx), boom)
}

func TestStore_CorruptRecord(t *testing.T) {
	repo := &fakeRepo{data: map[string][]byte{common.SessionStorageKey: []byte("{not json")}}
	_, err := NewMetadataStore(repo).Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode session")
}
