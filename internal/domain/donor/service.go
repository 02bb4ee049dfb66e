package donor

import (
	"context"
	"fmt"

	"github.com/bloodbank/bloodbank/internal/domain/notification"
)

// Service provides business logic for the Donor domain.
type Service struct {
	donors        Repository
	notifications *notification.Service
}

// NewService creates a new Donor domain service.
func NewService(donors Repository, notifications *notification.Service) *Service {
	return &Service{donors: donors, notifications: notifications}
}

// Register validates the donor, derives eligibility, persists the record,
// and records a registration notification addressed to the donor.
func (s *Service) Register(ctx context.Context, d *Donor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	d.Eligible = Eligible(d.Age, d.HealthOK)

	id, err := s.donors.Create(ctx, d)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Hello %s, your donor profile has been registered.", d.Name)
	if err := s.notifications.Record(ctx, &d.Email, "Registration Successful", msg, nil); err != nil {
		return id, err
	}
	return id, nil
}

// Get returns the donor with the given id, or docstore.ErrNotFound /
// docstore.ErrMalformedID. Used by the request domain for creation-time
// reference checks.
func (s *Service) Get(ctx context.Context, id string) (*Donor, error) {
	return s.donors.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, bloodGroup string, eligibleOnly bool) ([]*Donor, error) {
	return s.donors.List(ctx, bloodGroup, eligibleOnly)
}
