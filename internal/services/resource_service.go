// Package services – ResourceService
//
// This file implements the ResourceService, which manages the support
// directory (hotlines, legal aid, counselling) and its keyword search. The
// search index is rebuilt whenever the directory changes; the directory is
// small and read-heavy, so a full rebuild is cheaper than incremental
// maintenance.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/repo"
	"github.com/schoolsafe/go-report-backend/internal/search"
)

// ResourceService exposes read and admin-write operations over the support
// directory, plus keyword search backed by a search.Index.
type ResourceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// SearchK caps how many search hits are returned.
	SearchK int

	mu  sync.RWMutex
	idx search.Index
}

// NewResourceService constructs a ResourceService with sane defaults.
// Call Reindex before serving search traffic.
func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{DB: db, SearchK: 10}
}

// List returns the whole directory ordered by name.
func (s *ResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return repo.ListResources(ctx, s.DB)
}

// Get returns one directory entry.
func (s *ResourceService) Get(ctx context.Context, id uint) (*domain.Resource, error) {
	r, err := repo.GetResource(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return r, nil
}

// Search returns directory entries ranked by keyword relevance to query. A
// blank query or an empty index yields an empty result, not an error.
func (s *ResourceService) Search(ctx context.Context, query string) ([]domain.Resource, error) {
	s.mu.RLock()
	idx := s.idx
	s.mu.RUnlock()
	if idx == nil {
		if err := s.Reindex(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		idx = s.idx
		s.mu.RUnlock()
	}

	k := s.SearchK
	if k <= 0 {
		k = 10
	}
	hits := idx.TopK(query, k)
	if len(hits) == 0 {
		return []domain.Resource{}, nil
	}

	out := make([]domain.Resource, 0, len(hits))
	for _, h := range hits {
		r, err := repo.GetResource(ctx, s.DB, h.ID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				// Entry deleted since the last reindex; skip it.
				continue
			}
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

// Create validates and inserts a directory entry, then refreshes the index.
func (s *ResourceService) Create(ctx context.Context, r *domain.Resource) error {
	if err := validateResource(r); err != nil {
		return err
	}
	if err := repo.CreateResource(ctx, s.DB, r); err != nil {
		return err
	}
	return s.Reindex(ctx)
}

// Update validates and persists changes to an existing entry, then refreshes
// the index.
func (s *ResourceService) Update(ctx context.Context, r *domain.Resource) error {
	if err := validateResource(r); err != nil {
		return err
	}
	if err := repo.UpdateResource(ctx, s.DB, r); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrResourceNotFound
		}
		return err
	}
	return s.Reindex(ctx)
}

// Delete removes an entry and refreshes the index.
func (s *ResourceService) Delete(ctx context.Context, id uint) error {
	if err := repo.DeleteResource(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrResourceNotFound
		}
		return err
	}
	return s.Reindex(ctx)
}

// Reindex rebuilds the keyword index from the current directory contents.
func (s *ResourceService) Reindex(ctx context.Context) error {
	resources, err := repo.ListResources(ctx, s.DB)
	if err != nil {
		return err
	}
	docs := make([]search.Doc, 0, len(resources))
	for _, r := range resources {
		docs = append(docs, search.Doc{ID: r.ID, Text: resourceText(r)})
	}
	idx := search.NewIndex(docs)

	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()
	return nil
}

// resourceText flattens one entry into its searchable text.
func resourceText(r domain.Resource) string {
	return fmt.Sprintf("%s %s %s", r.Name, r.Category, r.Description)
}

func validateResource(r *domain.Resource) error {
	if r == nil {
		return ErrInvalidResource
	}
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Description) == "" {
		return ErrInvalidResource
	}
	if !r.Category.Valid() {
		return ErrInvalidResource
	}
	return nil
}
