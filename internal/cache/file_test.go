package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileClient_SetGetDelete(t *testing.T) {
	c, err := NewFileClient(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Get(ctx, "swa_token")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.Set(ctx, "swa_token", "abc123"))
	require.NoError(t, c.Set(ctx, "swa_user", `{"name":"Jane"}`))

	val, err := c.Get(ctx, "swa_token")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", val)

	require.NoError(t, c.Delete(ctx, "swa_token"))
	_, err = c.Get(ctx, "swa_token")
	assert.ErrorIs(t, err, ErrNotFound)

	// The other entry survives the delete.
	val, err = c.Get(ctx, "swa_user")
	assert.NoError(t, err)
	assert.Equal(t, `{"name":"Jane"}`, val)
}

func TestFileClient_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c1, err := NewFileClient(dir)
	require.NoError(t, err)
	require.NoError(t, c1.Set(ctx, "swa_token", "persisted"))

	c2, err := NewFileClient(dir)
	require.NoError(t, err)
	val, err := c2.Get(ctx, "swa_token")
	assert.NoError(t, err)
	assert.Equal(t, "persisted", val)
}

func TestFileClient_ValueEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c, err := NewFileClient(dir)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "swa_token", "super-secret-token"))

	raw, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-token")
}

func TestFileClient_WrongKeyReportsCorrupt(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c1, err := NewFileClient(dir)
	require.NoError(t, err)
	require.NoError(t, c1.Set(ctx, "swa_token", "abc"))

	// Replacing the key file makes the existing cache undecryptable.
	require.NoError(t, os.Remove(filepath.Join(dir, keyFileName)))
	c2, err := NewFileClient(dir)
	require.NoError(t, err)

	_, err = c2.Get(ctx, "swa_token")
	assert.ErrorIs(t, err, ErrCorruptCache)

	// A write after corruption starts over with a fresh file.
	require.NoError(t, c2.Set(ctx, "swa_token", "new"))
	val, err := c2.Get(ctx, "swa_token")
	assert.NoError(t, err)
	assert.Equal(t, "new", val)
}
