package notification

import (
	"context"
)

// DefaultListLimit bounds GET /notifications when no limit is supplied.
const DefaultListLimit = 50

// Service provides business logic for the Notification domain.
type Service struct {
	notifications Repository
}

// NewService creates a new Notification domain service.
func NewService(notifications Repository) *Service {
	return &Service{notifications: notifications}
}

// Create validates and persists a caller-supplied notification record.
func (s *Service) Create(ctx context.Context, n *Notification) (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}
	return s.notifications.Create(ctx, n)
}

// Record persists a system-generated notification record as a side effect of
// another operation. toEmail may be nil when the addressee is unknown.
func (s *Service) Record(ctx context.Context, toEmail *string, subject, message string, meta map[string]string) error {
	n := &Notification{
		ToEmail: toEmail,
		Subject: subject,
		Message: message,
		Meta:    meta,
	}
	_, err := s.notifications.Create(ctx, n)
	return err
}

func (s *Service) List(ctx context.Context, limit int) ([]*Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.notifications.List(ctx, limit)
}
