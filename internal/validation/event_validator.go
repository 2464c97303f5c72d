package validation

import (
	"time"
)

// EventValidator provides validation for Event and CustomEventType operations
type EventValidator struct {
	validator *Validator
}

// NewEventValidator creates a new event validator
func NewEventValidator() *EventValidator {
	return &EventValidator{
		validator: NewValidator(),
	}
}

// ValidateEventForCreation validates a new event's task reference and dates
func (ev *EventValidator) ValidateEventForCreation(taskID int64, start, end time.Time) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidID(taskID) {
		validationError.AddInvalidValueError("task_id", taskID, "must be a positive integer")
	}
	if start.IsZero() {
		validationError.AddRequiredError("start_date")
	}
	if !end.IsZero() && !ev.validator.IsValidDateRange(start, end) {
		validationError.AddInvalidRangeError("end_date", end, "must not precede start_date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDateRange validates that an updated event's dates stay ordered
func (ev *EventValidator) ValidateDateRange(start, end time.Time) error {
	if !ev.validator.IsValidDateRange(start, end) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("end_date", end, "must not precede start_date")
		return validationError
	}
	return nil
}

// ValidateEventID validates an event ID
func (ev *EventValidator) ValidateEventID(id int64) error {
	if !ev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("event_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateEventTypeForCreation validates a new custom event type preset.
// Both the label and the color are required.
func (ev *EventValidator) ValidateEventTypeForCreation(label, color string) error {
	validationError := NewValidationError()

	if !ev.validator.IsNonEmptyString(label) {
		validationError.AddRequiredError("label")
	}
	if !ev.validator.IsNonEmptyString(color) {
		validationError.AddRequiredError("color")
	} else if !ev.validator.IsValidHexColor(color) {
		validationError.AddInvalidFormatError("color", color, "#rrggbb")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
