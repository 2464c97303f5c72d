package validation

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskForCreation validates the category and name of a new task.
// Both must be non-empty after trimming; rows failing this are never stored.
func (tv *TaskValidator) ValidateTaskForCreation(category, name string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(category) {
		validationError.AddRequiredError("category")
	} else if !tv.validator.IsValidNameLength(category) {
		validationError.AddInvalidLengthError("category", category, 1, nameMaxLength)
	}

	if !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("task_name")
	} else if !tv.validator.IsValidNameLength(name) {
		validationError.AddInvalidLengthError("task_name", name, 1, nameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateCategoryName validates a category name for rename or delete
func (tv *TaskValidator) ValidateCategoryName(name string) error {
	if !tv.validator.IsNonEmptyString(name) {
		validationError := NewValidationError()
		validationError.AddRequiredError("category")
		return validationError
	}
	return nil
}
