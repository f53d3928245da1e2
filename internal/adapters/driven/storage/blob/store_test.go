package blob

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

func TestStore_SaveAndRead(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Save(ctx, "notes.txt", []byte("the quick brown fox"))
	require.NoError(t, err)
	assert.Equal(t, ".txt", filepath.Ext(ref))

	data, err := store.Read(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("the quick brown fox"), data)
}

func TestStore_SameNameDistinctRefs(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ref1, err := store.Save(ctx, "notes.txt", []byte("one"))
	require.NoError(t, err)
	ref2, err := store.Save(ctx, "notes.txt", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)

	data, err := store.Read(ctx, ref1)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)
}

func TestStore_ReadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Save(ctx, "doc.pdf", []byte{0x25, 0x50, 0x44, 0x46})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, ref))
	require.NoError(t, store.Delete(ctx, ref))

	_, err = store.Read(ctx, ref)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RejectsTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read(context.Background(), "../escape.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Delete(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
