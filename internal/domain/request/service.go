package request

import (
	"context"
	"fmt"
	"time"

	"github.com/bloodbank/bloodbank/internal/domain/donor"
	"github.com/bloodbank/bloodbank/internal/domain/hospital"
	"github.com/bloodbank/bloodbank/internal/domain/notification"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Service provides business logic for the Request domain.
type Service struct {
	requests      Repository
	donors        *donor.Service
	hospitals     *hospital.Service
	notifications *notification.Service
}

// NewService creates a new Request domain service.
func NewService(requests Repository, donors *donor.Service, hospitals *hospital.Service, notifications *notification.Service) *Service {
	return &Service{
		requests:      requests,
		donors:        donors,
		hospitals:     hospitals,
		notifications: notifications,
	}
}

// Create validates the request, verifies both references exist, persists it
// as pending, and records a notification addressed to the donor. Nothing is
// persisted and no notification is recorded when a reference is missing.
func (s *Service) Create(ctx context.Context, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	d, err := s.donors.Get(ctx, req.DonorID)
	if err != nil {
		return "", fmt.Errorf("donor %s: %w", req.DonorID, err)
	}
	h, err := s.hospitals.Get(ctx, req.HospitalID)
	if err != nil {
		return "", fmt.Errorf("hospital %s: %w", req.HospitalID, err)
	}

	req.Status = StatusPending
	id, err := s.requests.Create(ctx, req)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("%s requested %d unit(s) of %s.", h.Name, req.Units, req.BloodGroup)
	meta := map[string]string{"request_id": id}
	if err := s.notifications.Record(ctx, &d.Email, "Blood Request", msg, meta); err != nil {
		return id, err
	}
	return id, nil
}

func (s *Service) List(ctx context.Context, status, donorID, hospitalID string) ([]*Request, error) {
	return s.requests.List(ctx, status, donorID, hospitalID)
}

// UpdateStatus moves a pending request to approved or declined, stamps
// updated_at, and records a notification addressed to the owning hospital.
// A failed hospital lookup is tolerated: the record is kept without an
// addressee.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if !TerminalStatuses[status] {
		var chk validation.Check
		chk.OneOf("status", status, TerminalStatuses)
		return chk.Err()
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if err := s.requests.SetStatus(ctx, id, status, updatedAt); err != nil {
		return err
	}

	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return err
	}

	var toEmail *string
	if h, err := s.hospitals.Get(ctx, req.HospitalID); err == nil {
		toEmail = &h.Email
	}

	msg := fmt.Sprintf("Request %s has been %s by the donor.", id, status)
	return s.notifications.Record(ctx, toEmail, "Request "+status, msg, nil)
}
