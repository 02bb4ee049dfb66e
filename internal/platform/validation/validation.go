// Package validation provides per-entity payload validation: explicit checks
// accumulating field errors into a single typed error value.
package validation

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

// FieldError describes a single invalid payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of field errors produced by validating one payload.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Check collects validation results for one payload.
type Check struct {
	errs Errors
}

// Fail records a field error.
func (c *Check) Fail(field, format string, args ...interface{}) {
	c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Require records an error when value is empty.
func (c *Check) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Fail(field, "is required")
	}
}

// Email records an error when value is not a valid email address. Empty
// values are ignored; pair with Require for mandatory fields.
func (c *Check) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		c.Fail(field, "must be a valid email address")
	}
}

// IntRange records an error when value is outside [min, max].
func (c *Check) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		c.Fail(field, "must be between %d and %d", min, max)
	}
}

// Min records an error when value is below min.
func (c *Check) Min(field string, value, min int) {
	if value < min {
		c.Fail(field, "must be at least %d", min)
	}
}

// OneOf records an error when value is not in the allowed set.
func (c *Check) OneOf(field, value string, allowed map[string]bool) {
	if !allowed[value] {
		keys := make([]string, 0, len(allowed))
		for k := range allowed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		c.Fail(field, "must be one of %s", strings.Join(keys, ", "))
	}
}

// Err returns the accumulated errors, or nil when the payload is valid.
func (c *Check) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
