package project

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorsketch/internal/sketch"
)

func testDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := Snapshot(sketch.NewState(), "remote plan")
	require.NoError(t, err)
	return doc
}

func TestRemoteStoreCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/plans", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Name string    `json:"name"`
			Data *Document `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "remote plan", payload.Name)
		require.NotNil(t, payload.Data)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"uuid": "abc-123"})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL)
	id, err := store.Create(context.Background(), testDocument(t))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}

func TestRemoteStoreLoad(t *testing.T) {
	doc := testDocument(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/plans/abc-123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"plan": map[string]interface{}{
				"name": "remote plan",
				"data": doc,
			},
		})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL)
	got, err := store.Load(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "remote plan", got.Name)
	assert.Equal(t, doc.PixelsPerMeter, got.PixelsPerMeter)
}

func TestRemoteStoreList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"plans": []map[string]interface{}{
				{"uuid": "a", "name": "one", "updated_at": "2026-08-01T10:00:00Z"},
				{"uuid": "b", "name": "two", "updated_at": "2026-08-02T10:00:00Z"},
			},
		})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL)
	plans, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "one", plans[0].Name)
}

func TestRemoteStoreUnwrapsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Plan not found"})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL)
	_, err := store.Load(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Plan not found")
}
