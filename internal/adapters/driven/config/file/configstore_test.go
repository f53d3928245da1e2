package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("embedding.provider", "local"))

	val, ok := store.Get("embedding.provider")
	assert.True(t, ok)
	assert.Equal(t, "local", val)
}

func TestConfigStore_GetMissing(t *testing.T) {
	store := newTestConfigStore(t)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("llm.model", "gemini-1.5-pro-latest"))
	require.NoError(t, store.Set("query.top_k", 5))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "gemini-1.5-pro-latest", store.GetString("llm.model"))
	assert.Equal(t, 5, store.GetInt("query.top_k"))
	assert.True(t, store.GetBool("verbose"))
}

func TestConfigStore_TypedGetterMismatch(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("query.top_k", 5))

	// Asking for the wrong type yields the zero value.
	assert.Empty(t, store.GetString("query.top_k"))
	assert.False(t, store.GetBool("query.top_k"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.provider", "gemini"))
	require.NoError(t, store.Set("query.top_k", 3))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "gemini", reopened.GetString("llm.provider"))
	assert.Equal(t, 3, reopened.GetInt("query.top_k"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()

	toml := "[embedding]\nprovider = \"openai\"\nmodel = \"text-embedding-3-small\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "openai", store.GetString("embedding.provider"))
	assert.Equal(t, "text-embedding-3-small", store.GetString("embedding.model"))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
