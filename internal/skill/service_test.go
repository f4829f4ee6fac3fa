package skill

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows map[string]*Skill
}

var _ Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore { return &fakeStore{rows: map[string]*Skill{}} }

func (f *fakeStore) List(context.Context) ([]Skill, error) {
	out := make([]Skill, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Skill, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cpy := *s
	return &cpy, nil
}

func (f *fakeStore) Insert(_ context.Context, s *Skill) error {
	cpy := *s
	f.rows[s.ID] = &cpy
	return nil
}

func (f *fakeStore) Update(_ context.Context, s *Skill) error {
	if cur, ok := f.rows[s.ID]; ok {
		created := cur.CreatedAt
		cpy := *s
		cpy.CreatedAt = created
		f.rows[s.ID] = &cpy
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.Create(context.Background(), &Skill{Name: "Photoshop", Percentage: 92, Category: "design"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), &Skill{
		Name: "React", Percentage: 85, Category: "development", Icon: "React", Color: "#61DAFB",
	})
	require.NoError(t, err)

	pct := 90
	updated, err := svc.Update(context.Background(), created.ID, &Patch{Percentage: &pct})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 90, updated.Percentage)
	assert.Equal(t, "React", updated.Name)
	assert.Equal(t, "#61DAFB", updated.Color)
}

func TestUpdate_UnknownIDReturnsNil(t *testing.T) {
	svc := NewService(newFakeStore())

	name := "x"
	updated, err := svc.Update(context.Background(), "missing", &Patch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestList_OldestFirst(t *testing.T) {
	store := newFakeStore()
	base := time.Now()
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, store.Insert(context.Background(), &Skill{
			ID: name, Name: name, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	svc := NewService(store)

	skills, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "first", skills[0].Name)
	assert.Equal(t, "third", skills[2].Name)
}

func TestDelete_MissingIDIsNotAnError(t *testing.T) {
	svc := NewService(newFakeStore())
	assert.NoError(t, svc.Delete(context.Background(), "never-existed"))
}
