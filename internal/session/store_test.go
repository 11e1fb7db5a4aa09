package session

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore(t.TempDir())

	cookies := []*http.Cookie{
		{Name: "arc_session", Value: "opaque-value", Path: "/", HttpOnly: true},
	}
	require.NoError(t, store.Save(cookies))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "arc_session", loaded[0].Name)
	assert.Equal(t, "opaque-value", loaded[0].Value)
	assert.True(t, loaded[0].HttpOnly)
}

func TestCookieStoreMissingFileIsEmptySession(t *testing.T) {
	store := NewCookieStore(t.TempDir())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCookieStoreDropsExpiredCookies(t *testing.T) {
	store := NewCookieStore(t.TempDir())

	require.NoError(t, store.Save([]*http.Cookie{
		{Name: "stale", Value: "x", Expires: time.Now().Add(-time.Hour)},
		{Name: "live", Value: "y", Expires: time.Now().Add(time.Hour)},
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "live", loaded[0].Name)
}

func TestCookieStoreClearIsIdempotent(t *testing.T) {
	store := NewCookieStore(t.TempDir())

	require.NoError(t, store.Save([]*http.Cookie{{Name: "a", Value: "b"}}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
