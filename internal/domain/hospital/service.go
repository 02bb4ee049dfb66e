package hospital

import (
	"context"
)

// Service provides business logic for the Hospital domain.
type Service struct {
	hospitals Repository
}

// NewService creates a new Hospital domain service.
func NewService(hospitals Repository) *Service {
	return &Service{hospitals: hospitals}
}

func (s *Service) Create(ctx context.Context, h *Hospital) (string, error) {
	if err := h.Validate(); err != nil {
		return "", err
	}
	return s.hospitals.Create(ctx, h)
}

// Get returns the hospital with the given id, or docstore.ErrNotFound /
// docstore.ErrMalformedID. Used by the inventory and request domains for
// creation-time reference checks.
func (s *Service) Get(ctx context.Context, id string) (*Hospital, error) {
	return s.hospitals.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Hospital, error) {
	return s.hospitals.List(ctx)
}
