package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/settings"
)

func openTemp(t *testing.T) *settings.Store {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	store, err := settings.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGet(t *testing.T) {
	store := openTemp(t)

	v, err := store.Get(settings.KeyLastPage)
	require.NoError(t, err)
	assert.Empty(t, v, "fresh database has no value")

	require.NoError(t, store.Set(settings.KeyLastPage, "board"))
	v, err = store.Get(settings.KeyLastPage)
	require.NoError(t, err)
	assert.Equal(t, "board", v)

	// Set replaces on conflict
	require.NoError(t, store.Set(settings.KeyLastPage, "team"))
	v, err = store.Get(settings.KeyLastPage)
	require.NoError(t, err)
	assert.Equal(t, "team", v)
}

func TestReopenKeepsValues(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store, err := settings.Open()
	require.NoError(t, err)
	require.NoError(t, store.Set(settings.KeyLastPage, "dashboard"))
	require.NoError(t, store.Close())

	store, err = settings.Open()
	require.NoError(t, err)
	defer store.Close()

	v, err := store.Get(settings.KeyLastPage)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", v)
}
