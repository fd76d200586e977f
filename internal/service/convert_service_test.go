package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertService_List_SendsCompatParams(t *testing.T) {
	var gotQuery url.Values
	gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"converts":[{"_id":"c1","name":"Ada","phone":"0801"}]}`))
	})
	establishTestSession(t, store)

	svc := NewConvertService(gw)
	converts, err := svc.List(context.Background(), 2, "ada", map[string]string{"status": "active"})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "2", gotQuery.Get("pageNumber"), "legacy param still sent")
	assert.Equal(t, "ada", gotQuery.Get("search"))
	assert.Equal(t, "ada", gotQuery.Get("keyword"), "legacy param still sent")
	assert.Equal(t, "active", gotQuery.Get("status"))

	require.Len(t, converts, 1)
	assert.Equal(t, "c1", converts[0].ID, "id normalized from _id")
}

func TestConvertService_List_ShapeVariants(t *testing.T) {
	shapes := map[string]string{
		"bare array": `[{"_id":"c1","name":"Ada"}]`,
		"converts":   `{"converts":[{"_id":"c1","name":"Ada"}]}`,
		"data":       `{"data":[{"_id":"c1","name":"Ada"}]}`,
		"results":    `{"results":[{"_id":"c1","name":"Ada"}]}`,
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			establishTestSession(t, store)

			converts, err := NewConvertService(gw).List(context.Background(), 1, "", nil)
			require.NoError(t, err)
			require.Len(t, converts, 1)
		})
	}
}

func TestConvertService_List_MalformedDegradesToEmpty(t *testing.T) {
	gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"nothing to see"}`))
	})
	establishTestSession(t, store)

	converts, err := NewConvertService(gw).List(context.Background(), 1, "", nil)
	require.NoError(t, err)
	assert.Empty(t, converts)
}

func TestConvertService_Get_UnwrapsNestedRecord(t *testing.T) {
	gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/converts/c1", r.URL.Path)
		w.Write([]byte(`{"data":{"_id":"c1","name":"Ada","visits":[1,3]}}`))
	})
	establishTestSession(t, store)

	convert, err := NewConvertService(gw).Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", convert.ID)
	assert.Equal(t, []int{1, 3}, convert.Visits)
}

func TestConvertService_ToggleVisit_PatchesVisitPath(t *testing.T) {
	var gotMethod, gotPath string
	gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message":"updated"}`))
	})
	establishTestSession(t, store)

	require.NoError(t, NewConvertService(gw).ToggleVisit(context.Background(), "c1", 5))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/converts/c1/visits/5", gotPath)
}

func TestConvertService_UpdateMilestones_SendsPartialUpdate(t *testing.T) {
	var got map[string]any
	gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/converts/c1/milestones", r.URL.Path)
		require.NoError(t, decodeBody(r, &got))
		w.Write([]byte(`{}`))
	})
	establishTestSession(t, store)

	svc := NewConvertService(gw)
	update := map[string]string{"waterBaptism": "InProgress"}
	require.NoError(t, svc.UpdateMilestones(context.Background(), "c1", update))

	assert.Equal(t, map[string]any{"waterBaptism": "InProgress"}, got)
}

func TestConvertService_Create_ReturnsRecord(t *testing.T) {
	gw, store := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"convert":{"_id":"c9","name":"New Soul","phone":"0802"}}`))
	})
	establishTestSession(t, store)

	created, err := NewConvertService(gw).Create(context.Background(), testConvert())
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
}
