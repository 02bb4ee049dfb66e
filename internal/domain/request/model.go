package request

import (
	"github.com/bloodbank/bloodbank/internal/domain/donor"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Request lifecycle: created as pending, then moved exactly once to approved
// or declined via the status-update operation. No transition leaves a
// terminal state back to pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// TerminalStatuses are the values accepted by the status-update operation.
var TerminalStatuses = map[string]bool{
	StatusApproved: true,
	StatusDeclined: true,
}

// Request is a hospital's request for blood units from a donor. Stored in
// the "request" collection. Both references are weak: checked at creation
// time only.
type Request struct {
	ID         string `json:"id,omitempty"`
	HospitalID string `json:"hospital_id"`
	DonorID    string `json:"donor_id"`
	BloodGroup string `json:"blood_group"`
	Units      int    `json:"units"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// Validate checks the payload fields.
func (r *Request) Validate() error {
	var chk validation.Check
	chk.Require("hospital_id", r.HospitalID)
	chk.Require("donor_id", r.DonorID)
	chk.OneOf("blood_group", r.BloodGroup, donor.BloodGroups)
	chk.Min("units", r.Units, 1)
	return chk.Err()
}
