package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("Flooring"))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestValidator_IsValidNameLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidNameLength("T"))
	assert.True(t, v.IsValidNameLength("Install carpet"))
	assert.False(t, v.IsValidNameLength(""))
	assert.False(t, v.IsValidNameLength(string(make([]byte, 300))))
}

func TestValidator_IsValidID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidID(1))
	assert.False(t, v.IsValidID(0))
	assert.False(t, v.IsValidID(-5))
}

func TestValidator_IsValidDateRange(t *testing.T) {
	v := NewValidator()
	start := time.Date(2023, time.November, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, v.IsValidDateRange(start, start.AddDate(0, 0, 7)))
	assert.True(t, v.IsValidDateRange(start, start), "single-day range is valid")
	assert.False(t, v.IsValidDateRange(start, start.AddDate(0, 0, -1)))
}

func TestValidator_IsValidHexColor(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidHexColor("#2e7d32"))
	assert.True(t, v.IsValidHexColor("#ABCDEF"))
	assert.False(t, v.IsValidHexColor("2e7d32"))
	assert.False(t, v.IsValidHexColor("#2e7d3"))
	assert.False(t, v.IsValidHexColor("#2e7d3g"))
	assert.False(t, v.IsValidHexColor("green"))
}
