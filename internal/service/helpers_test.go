package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"followup_tracker/internal/api"
	"followup_tracker/internal/cache"
	"followup_tracker/internal/model"
	"followup_tracker/internal/session"
)

type memCache struct {
	entries map[string]string
}

func newMemCache() *memCache { return &memCache{entries: map[string]string{}} }

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

// newTestGateway spins an httptest server around handler and returns a
// gateway pointed at it plus the fresh session store behind it.
func newTestGateway(t *testing.T, handler http.HandlerFunc) (*api.Gateway, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(newMemCache())
	return api.NewGateway(srv.URL, 2*time.Second, store), store
}

func decodeBody(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func establishTestSession(t *testing.T, store *session.Store) {
	t.Helper()
	user := &model.User{ID: "u1", Name: "Jane", Email: "j@x.com", Role: model.RoleSoulWinner}
	require.NoError(t, store.Establish(context.Background(), user, "tok"))
}

func testConvert() model.Convert {
	return model.Convert{
		Name:          "New Soul",
		Phone:         "0802",
		HouseAddress:  "12 Grace Street",
		DateBornAgain: "2026-08-01",
		AgeGroup:      "adult",
		Gender:        "female",
		MaritalStatus: "single",
		Career:        "nurse",
	}
}
