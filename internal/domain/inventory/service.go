package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/bloodbank/bloodbank/internal/domain/hospital"
)

// Service provides business logic for the Inventory domain.
type Service struct {
	items     Repository
	hospitals *hospital.Service
}

// NewService creates a new Inventory domain service.
func NewService(items Repository, hospitals *hospital.Service) *Service {
	return &Service{items: items, hospitals: hospitals}
}

// Add validates the batch, verifies the referenced hospital exists, and
// persists it. Nothing is persisted when the hospital is missing.
func (s *Service) Add(ctx context.Context, i *Item) (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}
	if _, err := s.hospitals.Get(ctx, i.HospitalID); err != nil {
		return "", fmt.Errorf("hospital %s: %w", i.HospitalID, err)
	}
	return s.items.Create(ctx, i)
}

// List returns inventory batches, optionally scoped to one hospital.
// Unless includeExpired is set, batches expiring before today are omitted.
func (s *Service) List(ctx context.Context, hospitalID string, includeExpired bool) ([]*Item, error) {
	minExpiry := ""
	if !includeExpired {
		minExpiry = time.Now().UTC().Format(DateLayout)
	}
	return s.items.List(ctx, hospitalID, minExpiry)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
