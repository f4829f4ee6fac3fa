package work

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/elishalema/portfolio-service/pkg/utilities"
)

// Service applies defaults and the partial-update merge on top of the store.
type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

func (s *Service) List(ctx context.Context) ([]Work, error) {
	return s.store.List(ctx)
}

// Create fills defaults for omitted fields and stores the work.
func (s *Service) Create(ctx context.Context, w *Work) (*Work, error) {
	w.ID = utilities.NewRecordID()
	if w.Status == "" {
		w.Status = "Live"
	}
	w.Views = 0
	w.CreatedAt = time.Now()
	if err := s.store.Insert(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Update merges the patch into the existing record. Unknown id yields
// (nil, nil): the handler answers 200 with a null body, matching the
// observed behavior rather than a NotFound error.
func (s *Service) Update(ctx context.Context, id string, p *Patch) (*Work, error) {
	w, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Category != nil {
		w.Category = *p.Category
	}
	if p.ImageSrc != nil {
		w.ImageSrc = *p.ImageSrc
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Tags != nil {
		w.Tags = *p.Tags
	}
	if p.WebsiteURL != nil {
		w.WebsiteURL = *p.WebsiteURL
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if err := s.store.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete is idempotent: removing a missing id is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// TrackView bumps the view counter without reading it back.
func (s *Service) TrackView(ctx context.Context, id string) error {
	return s.store.IncrementViews(ctx, id)
}
