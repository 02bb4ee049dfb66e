package hospital

import (
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Hospital is a registered hospital that owns inventory and issues blood
// requests. Stored in the "hospital" collection.
type Hospital struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	City  *string `json:"city,omitempty"`
}

// Validate checks the payload fields.
func (h *Hospital) Validate() error {
	var chk validation.Check
	chk.Require("name", h.Name)
	chk.Require("email", h.Email)
	chk.Email("email", h.Email)
	chk.Require("phone", h.Phone)
	return chk.Err()
}
