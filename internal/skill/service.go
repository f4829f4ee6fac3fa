package skill

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/elishalema/portfolio-service/pkg/utilities"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

func (s *Service) List(ctx context.Context) ([]Skill, error) {
	return s.store.List(ctx)
}

func (s *Service) Create(ctx context.Context, sk *Skill) (*Skill, error) {
	sk.ID = utilities.NewRecordID()
	sk.CreatedAt = time.Now()
	if err := s.store.Insert(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// Update merges the patch into the existing record; unknown id yields
// (nil, nil), surfaced as a 200 with a null body.
func (s *Service) Update(ctx context.Context, id string, p *Patch) (*Skill, error) {
	sk, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if p.Name != nil {
		sk.Name = *p.Name
	}
	if p.Percentage != nil {
		sk.Percentage = *p.Percentage
	}
	if p.Category != nil {
		sk.Category = *p.Category
	}
	if p.Icon != nil {
		sk.Icon = *p.Icon
	}
	if p.Color != nil {
		sk.Color = *p.Color
	}
	if err := s.store.Update(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
