package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brutella/hap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ hap.Store = (*JSONStore)(nil)

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairing", "store.json")
	store := NewJSONStore(path)

	_, err := store.Get("uuid")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set("uuid", []byte("AA:BB:CC")))
	require.NoError(t, store.Set("controller-1.pairing", []byte{0x00, 0xff}))
	require.NoError(t, store.Set("controller-2.pairing", []byte("x")))

	// a fresh instance reads what the first one wrote
	reopened := NewJSONStore(path)
	v, err := reopened.Get("controller-1.pairing")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, v)

	keys, err := reopened.KeysWithSuffix(".pairing")
	require.NoError(t, err)
	assert.Equal(t, []string{"controller-1.pairing", "controller-2.pairing"}, keys)

	require.NoError(t, reopened.Delete("controller-1.pairing"))
	require.NoError(t, reopened.Delete("never-set"))
	keys, err = store.KeysWithSuffix(".pairing")
	require.NoError(t, err)
	assert.Equal(t, []string{"controller-2.pairing"}, keys)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewJSONStore(path).Get("uuid")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
