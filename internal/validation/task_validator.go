package validation

// TaskValidator provides validation for task input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateNewTask checks the three raw input fields of a task to be added.
// Every field must be non-empty after trimming; violations are collected
// per field so the caller can report them all at once.
func (tv *TaskValidator) ValidateNewTask(id, description, datetime string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(id) {
		validationError.AddRequiredError("id")
	}
	if !tv.validator.IsNonEmptyString(description) {
		validationError.AddRequiredError("description")
	}
	if !tv.validator.IsNonEmptyString(datetime) {
		validationError.AddRequiredError("datetime")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// TrimID returns the lookup key form of a raw id field.
func (tv *TaskValidator) TrimID(id string) string {
	return tv.validator.TrimAndValidateString(id)
}

// TrimDescription returns the stored form of a raw description field.
func (tv *TaskValidator) TrimDescription(description string) string {
	return tv.validator.TrimAndValidateString(description)
}

// TrimDateTime returns the stored form of a raw datetime field. Only the
// field-level trim is applied; the value itself is never normalized.
func (tv *TaskValidator) TrimDateTime(datetime string) string {
	return tv.validator.TrimAndValidateString(datetime)
}
