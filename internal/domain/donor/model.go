package donor

import (
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Donation eligibility age bounds; ages outside the range are rejected at
// validation time, so stored donors always satisfy them.
const (
	MinAge = 18
	MaxAge = 65
)

// BloodGroups is the set of valid ABO/Rh blood group labels, shared with the
// inventory and request domains.
var BloodGroups = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
}

// Donor is a registered blood donor. Stored in the "donor" collection.
// Eligible is derived once at registration and never recomputed on read.
type Donor struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Age        int     `json:"age"`
	BloodGroup string  `json:"blood_group"`
	HealthOK   bool    `json:"health_ok"`
	City       *string `json:"city,omitempty"`
	Eligible   bool    `json:"eligible"`
}

// Validate checks the payload fields.
func (d *Donor) Validate() error {
	var chk validation.Check
	chk.Require("name", d.Name)
	chk.Require("email", d.Email)
	chk.Email("email", d.Email)
	chk.Require("phone", d.Phone)
	chk.IntRange("age", d.Age, MinAge, MaxAge)
	chk.OneOf("blood_group", d.BloodGroup, BloodGroups)
	return chk.Err()
}

// Eligible reports whether a donor currently qualifies to donate.
func Eligible(age int, healthOK bool) bool {
	return age >= MinAge && age <= MaxAge && healthOK
}
