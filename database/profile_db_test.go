package database

import (
	"errors"
	"path/filepath"
	"testing"

	"profilekit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func newTestStore(t *testing.T) *ProfileStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProfileStore(db)
}

func httpProfile(name string, urls ...string) models.Profile {
	return models.Profile{
		Name:    name,
		Enabled: true,
		Kind:    models.ProfileKindHttp,
		HttpSettings: &models.HttpSettings{
			RequestHeaders:      []models.HttpHeader{{Name: "User-Agent", Value: "agent"}},
			Urls:                urls,
			Cookies:             []models.HttpCookie{{Name: "sid", Value: "{GUID}"}},
			GetResponseTemplate: "T",
		},
	}
}

func TestProfileStore_InsertAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	base, err := store.InsertProfile(models.Profile{Name: "P1", Description: "first", Enabled: true, Kind: models.ProfileKindBase})
	require.NoError(t, err)
	assert.Equal(t, int64(1), base.ID)

	h, err := store.InsertProfile(httpProfile("H1", "/a", "/b"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), h.ID)

	got, err := store.GetProfile(base.ID)
	require.NoError(t, err)
	assert.Equal(t, base, got)
	assert.Nil(t, got.HttpSettings)

	got, err = store.GetProfile(h.ID)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	require.NotNil(t, got.HttpSettings)
	assert.Equal(t, []string{"/a", "/b"}, got.Urls)
	assert.Equal(t, "sid", got.Cookies[0].Name)
}

func TestProfileStore_ConcurrentUpdatesAreNotLost(t *testing.T) {
	checkConcurrentUpdatesAreNotLost(t, newTestStore(t), 40)
}

func TestProfileStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetProfile(999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestProfileStore_ListOrderedByID(t *testing.T) {
	store := newTestStore(t)

	list, err := store.ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	for _, name := range []string{"c", "a", "b"} {
		_, err := store.InsertProfile(models.Profile{Name: name, Kind: models.ProfileKindBase})
		require.NoError(t, err)
	}
	list, err = store.ListProfiles()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, int64(3), list[2].ID)
}

func TestProfileStore_InsertWithSuppliedID(t *testing.T) {
	store := newTestStore(t)

	p, err := store.InsertProfile(models.Profile{ID: 42, Name: "fixed", Kind: models.ProfileKindBase})
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.ID)

	_, err = store.InsertProfile(models.Profile{ID: 42, Name: "again", Kind: models.ProfileKindBase})
	assert.ErrorIs(t, err, ErrIDTaken)

	next, err := store.InsertProfile(models.Profile{Name: "auto", Kind: models.ProfileKindBase})
	require.NoError(t, err)
	assert.Equal(t, int64(43), next.ID)
}

func TestProfileStore_UpdateAppliesMutation(t *testing.T) {
	store := newTestStore(t)
	h, err := store.InsertProfile(httpProfile("H1", "/a"))
	require.NoError(t, err)

	updated, err := store.UpdateProfile(h.ID, func(p *models.Profile) error {
		p.Urls = []string{"/b"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/b"}, updated.Urls)

	got, err := store.GetProfile(h.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/b"}, got.Urls)
	assert.Equal(t, "H1", got.Name)
}

func TestProfileStore_UpdateRejectsKindChange(t *testing.T) {
	store := newTestStore(t)
	p, err := store.InsertProfile(models.Profile{Name: "P1", Kind: models.ProfileKindBase})
	require.NoError(t, err)

	_, err = store.UpdateProfile(p.ID, func(p *models.Profile) error {
		p.Kind = models.ProfileKindHttp
		return nil
	})
	assert.ErrorIs(t, err, ErrKindChanged)

	got, err := store.GetProfile(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileKindBase, got.Kind)
}

func TestProfileStore_UpdateCallbackErrorLeavesRecord(t *testing.T) {
	store := newTestStore(t)
	p, err := store.InsertProfile(models.Profile{Name: "P1", Kind: models.ProfileKindBase})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = store.UpdateProfile(p.ID, func(p *models.Profile) error {
		p.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.GetProfile(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "P1", got.Name)
}

func TestProfileStore_UpdateMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateProfile(7, func(*models.Profile) error { return nil })
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestProfileStore_DeleteDoesNotReuseID(t *testing.T) {
	store := newTestStore(t)
	p, err := store.InsertProfile(httpProfile("H1", "/a"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteProfile(p.ID))
	_, err = store.GetProfile(p.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, store.DeleteProfile(p.ID), ErrRecordNotFound)

	next, err := store.InsertProfile(models.Profile{Name: "P2", Kind: models.ProfileKindBase})
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, next.ID)
}

func TestProfileStore_QueryFailureIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewProfileStore(db)
	diskErr := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT (.+) FROM profiles ORDER BY id ASC`).WillReturnError(diskErr)

	_, err = store.ListProfiles()
	assert.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileStore_UpdateRollsBackOnWriteFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewProfileStore(db)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "enabled", "kind",
		"http_request_headers", "http_urls", "http_cookies",
		"http_get_response", "http_post_request", "http_post_response"}).
		AddRow(int64(3), "P3", "", true, "Base", nil, nil, nil, nil, nil, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE id = \?`).WithArgs(int64(3)).WillReturnRows(rows)
	mock.ExpectExec(`UPDATE profiles`).WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	_, err = store.UpdateProfile(3, func(p *models.Profile) error {
		p.Name = "P3b"
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDefaultProfilesIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	added, err := SeedDefaultProfiles(store)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultProfiles), added)

	added, err = SeedDefaultProfiles(store)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	list, err := store.ListProfiles()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "DefaultHttpProfile", list[0].Name)
	assert.Equal(t, models.ProfileKindHttp, list[0].Kind)
	assert.NotEmpty(t, list[0].Urls)
}
