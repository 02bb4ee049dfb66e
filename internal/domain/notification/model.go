package notification

import (
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Notification is a persisted statement of intent to notify a party by email
// or SMS. Delivery is out of scope; only the record is kept. Stored in the
// "notification" collection.
type Notification struct {
	ID      string            `json:"id,omitempty"`
	ToEmail *string           `json:"to_email,omitempty"`
	ToPhone *string           `json:"to_phone,omitempty"`
	Subject string            `json:"subject"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// Validate checks the payload fields.
func (n *Notification) Validate() error {
	var chk validation.Check
	chk.Require("subject", n.Subject)
	chk.Require("message", n.Message)
	if n.ToEmail != nil {
		chk.Email("to_email", *n.ToEmail)
	}
	return chk.Err()
}
