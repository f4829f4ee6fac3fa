package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	row *Profile
}

var _ Store = (*fakeStore)(nil)

func (f *fakeStore) Get(context.Context) (*Profile, error) {
	if f.row == nil {
		return nil, sql.ErrNoRows
	}
	cpy := *f.row
	return &cpy, nil
}

func (f *fakeStore) Replace(_ context.Context, p *Profile) error {
	cpy := *p
	f.row = &cpy
	return nil
}

func TestGet_ReturnsSingleton(t *testing.T) {
	store := &fakeStore{row: &Profile{ID: SingletonID, Bio: "bio", Location: "Tanzania"}}
	h := NewHandler(store, zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Tanzania", got.Location)
}

func TestUpdate_ReplacesWholeDocument(t *testing.T) {
	store := &fakeStore{row: &Profile{ID: SingletonID, Bio: "old bio", Experience: "4+ Years"}}
	h := NewHandler(store, zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"bio":"new bio","experience":"5+ Years","location":"Tanzania","email":"e@example.com"}`))
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.row)
	assert.Equal(t, SingletonID, store.row.ID)
	assert.Equal(t, "new bio", store.row.Bio)
	assert.Equal(t, "5+ Years", store.row.Experience)
	assert.False(t, store.row.UpdatedAt.IsZero())
}
