package validation

import (
	"regexp"
	"strings"
	"time"
)

// nameMaxLength bounds category and task names; spreadsheet cells never
// legitimately exceed this.
const nameMaxLength = 255

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a name fits the storage bounds
func (v *Validator) IsValidNameLength(s string) bool {
	length := len(strings.TrimSpace(s))
	return length >= 1 && length <= nameMaxLength
}

// IsValidID checks if an entity ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidDateRange checks that a start date does not follow its end date.
// Equal dates are a valid single-day range.
func (v *Validator) IsValidDateRange(start, end time.Time) bool {
	return !end.Before(start)
}

// IsValidHexColor checks if a color is a #rrggbb hex string
func (v *Validator) IsValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// TrimmedString trims whitespace and returns the cleaned string
func (v *Validator) TrimmedString(s string) string {
	return strings.TrimSpace(s)
}
