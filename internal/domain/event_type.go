package domain

import (
	"time"
)

// CustomEventType is a reusable (label, color) preset offered when authoring
// events. Events copy its values rather than referencing it, so deleting a
// preset never touches existing events.
type CustomEventType struct {
	ID        int64
	Label     string
	Color     string
	CreatedAt time.Time
}

// NewCustomEventType creates a new preset with the given label and color.
func NewCustomEventType(label, color string) CustomEventType {
	return CustomEventType{
		Label: label,
		Color: color,
	}
}

// IsValid checks if the preset has valid data.
func (ct CustomEventType) IsValid() bool {
	return ct.Label != "" && ct.Color != ""
}
