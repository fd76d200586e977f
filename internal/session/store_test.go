package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"followup_tracker/internal/cache"
	"followup_tracker/internal/model"
)

// memCache is an in-memory cache.Client so tests can seed arbitrary
// (including corrupt) persisted state.
type memCache struct {
	entries map[string]string
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]string{}}
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	val, ok := m.entries[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return val, nil
}

func (m *memCache) Set(ctx context.Context, key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func testUser() *model.User {
	return &model.User{
		ID:    "u1",
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  model.RoleSoulWinner,
	}
}

func TestStore_EstablishThenHydrate_RoundTrip(t *testing.T) {
	mem := newMemCache()
	store := NewStore(mem)
	ctx := context.Background()

	user := testUser()
	require.NoError(t, store.Establish(ctx, user, "tok-123"))

	// A fresh store over the same cache simulates an app restart.
	restarted := NewStore(mem)
	hydrated, err := restarted.Hydrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, hydrated)
	assert.Equal(t, "tok-123", restarted.Token())
	assert.True(t, restarted.Authenticated())
}

func TestStore_Establish_RequiresBothValues(t *testing.T) {
	mem := newMemCache()
	store := NewStore(mem)
	ctx := context.Background()

	assert.ErrorIs(t, store.Establish(ctx, nil, "tok"), ErrMissingUser)
	assert.ErrorIs(t, store.Establish(ctx, &model.User{}, "tok"), ErrMissingUser)
	assert.ErrorIs(t, store.Establish(ctx, testUser(), ""), ErrMissingToken)

	// Failed establish must not touch persisted or in-memory state.
	assert.Empty(t, mem.entries)
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
}

func TestStore_Hydrate_EmptyCache(t *testing.T) {
	store := NewStore(newMemCache())

	_, err := store.Hydrate(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, store.Authenticated())
}

func TestStore_Hydrate_UndefinedSentinelClearsBoth(t *testing.T) {
	mem := newMemCache()
	mem.entries[UserKey] = "undefined"
	mem.entries[TokenKey] = "perfectly-good-token"
	store := NewStore(mem)

	_, err := store.Hydrate(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, mem.entries, "both entries must be wiped")
}

func TestStore_Hydrate_PartialWriteClearsBoth(t *testing.T) {
	mem := newMemCache()
	mem.entries[TokenKey] = "tok-only"
	store := NewStore(mem)

	_, err := store.Hydrate(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, mem.entries)
}

func TestStore_Hydrate_MalformedUserJSON(t *testing.T) {
	mem := newMemCache()
	mem.entries[UserKey] = "{not json"
	mem.entries[TokenKey] = "tok"
	store := NewStore(mem)

	_, err := store.Hydrate(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, mem.entries)
}

func TestStore_Hydrate_NormalizesLegacyID(t *testing.T) {
	mem := newMemCache()
	mem.entries[UserKey] = `{"_id":"abc","name":"Jane","email":"j@x.com","role":"soul_winner"}`
	mem.entries[TokenKey] = "tok"
	store := NewStore(mem)

	user, err := store.Hydrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", user.ID)
}

func TestStore_UpdateUser_LeavesTokenAlone(t *testing.T) {
	mem := newMemCache()
	store := NewStore(mem)
	ctx := context.Background()

	require.NoError(t, store.Establish(ctx, testUser(), "tok-123"))

	updated := testUser()
	updated.Name = "Jane Smith"
	require.NoError(t, store.UpdateUser(ctx, updated))

	assert.Equal(t, "Jane Smith", store.User().Name)
	assert.Equal(t, "tok-123", store.Token())
	assert.Equal(t, "tok-123", mem.entries[TokenKey])
}

func TestStore_UpdateUser_RequiresSession(t *testing.T) {
	store := NewStore(newMemCache())
	err := store.UpdateUser(context.Background(), testUser())
	assert.ErrorIs(t, err, ErrNotEstablished)
}

func TestStore_Clear_Idempotent(t *testing.T) {
	mem := newMemCache()
	store := NewStore(mem)
	ctx := context.Background()

	require.NoError(t, store.Establish(ctx, testUser(), "tok"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, mem.entries)
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
}
