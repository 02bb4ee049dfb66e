package inventory

import (
	"time"

	"github.com/bloodbank/bloodbank/internal/domain/donor"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// DateLayout is the canonical ISO 8601 form of expiry dates. Storing dates
// as strings in this form makes lexicographic comparison equal to date
// comparison.
const DateLayout = "2006-01-02"

// Item is a batch of blood units held by a hospital. Stored in the
// "inventory" collection. HospitalID is a weak reference: checked at
// creation time only.
type Item struct {
	ID         string `json:"id,omitempty"`
	HospitalID string `json:"hospital_id"`
	BloodGroup string `json:"blood_group"`
	Units      int    `json:"units"`
	ExpiryDate string `json:"expiry_date"`
}

// Validate checks the payload fields and canonicalizes the expiry date.
func (i *Item) Validate() error {
	var chk validation.Check
	chk.Require("hospital_id", i.HospitalID)
	chk.OneOf("blood_group", i.BloodGroup, donor.BloodGroups)
	chk.Min("units", i.Units, 1)
	if t, err := time.Parse(DateLayout, i.ExpiryDate); err != nil {
		chk.Fail("expiry_date", "must be a date in YYYY-MM-DD form")
	} else {
		i.ExpiryDate = t.Format(DateLayout)
	}
	return chk.Err()
}
