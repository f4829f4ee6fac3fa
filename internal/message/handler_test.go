package message

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	msgs      []Message
	insertErr error
}

var _ Store = (*fakeStore)(nil)

func (f *fakeStore) Insert(_ context.Context, m *Message) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.msgs = append(f.msgs, *m)
	return nil
}

func (f *fakeStore) Count(context.Context) (int64, error) { return int64(len(f.msgs)), nil }

func (f *fakeStore) Recent(_ context.Context, limit int) ([]Message, error) {
	out := append([]Message(nil), f.msgs...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestSubmit_StoresMessage(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","message":"Hi there"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	require.Len(t, store.msgs, 1)
	m := store.msgs[0]
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Asha", m.Name)
	assert.Equal(t, "asha@example.com", m.Email)
	assert.Equal(t, "Hi there", m.Message)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestSubmit_MissingFieldIsRejected(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.msgs)
}
