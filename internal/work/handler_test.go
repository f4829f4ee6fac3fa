package work

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(store Store) *Handler {
	return NewHandler(NewService(store), zap.NewNop().Sugar())
}

func TestHandlerList_EmptyIsJSONArray(t *testing.T) {
	h := newTestHandler(newFakeStore())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/works", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandlerList_NewestFirst(t *testing.T) {
	store := newFakeStore()
	base := time.Now()
	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, store.Insert(context.Background(), &Work{
			ID:        title,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	h := newTestHandler(store)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/works", nil))

	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "third"), strings.Index(body, "second"))
	assert.Less(t, strings.Index(body, "second"), strings.Index(body, "first"))
}

func TestHandlerCreate_ReturnsStoredRecord(t *testing.T) {
	h := newTestHandler(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/api/works",
		strings.NewReader(`{"title":"RestoPulse","category":"Logo","tags":["Tech","SaaS"]}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"title":"RestoPulse"`)
	assert.Contains(t, body, `"status":"Live"`)
	assert.Contains(t, body, `"views":0`)
	assert.Contains(t, body, `"id":"`)
}

func TestHandlerUpdate_UnknownIDGivesNullBody(t *testing.T) {
	h := newTestHandler(newFakeStore())

	req := httptest.NewRequest(http.MethodPut, "/api/works/missing", strings.NewReader(`{"title":"x"}`))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestHandlerDelete_AlwaysAcknowledges(t *testing.T) {
	h := newTestHandler(newFakeStore())

	req := httptest.NewRequest(http.MethodDelete, "/api/works/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Deleted successfully"}`, rec.Body.String())
}

func TestHandlerTrackView_Acknowledges(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(context.Background(), &Work{ID: "w1", Views: 5}))
	h := newTestHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/api/works/w1/view", nil)
	req.SetPathValue("id", "w1")
	rec := httptest.NewRecorder()
	h.TrackView(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	got, err := store.GetByID(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Views)
}
