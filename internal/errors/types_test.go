package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeDuplicateKey,
				Message: "a task with ID \"T1\" already exists",
			},
			expected: "duplicate_key: a task with ID \"T1\" already exists",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "storage operation failed: open",
				Cause:   errors.New("disk full"),
			},
			expected: "storage: storage operation failed: open (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypePersistence,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
}

func TestAppError_Is(t *testing.T) {
	err1 := NewDuplicateKeyError("T1")
	err2 := NewDuplicateKeyError("T2")
	err3 := NewStorageError("open", errors.New("boom"))

	if !err1.Is(err2) {
		t.Errorf("errors with the same type and code should match")
	}
	if err1.Is(err3) {
		t.Errorf("errors with different types should not match")
	}
	if err1.Is(errors.New("plain")) {
		t.Errorf("AppError should not match a plain error")
	}
}

func TestAppError_IsType(t *testing.T) {
	err := NewInvalidInputError("id is required", nil)

	if !err.IsType(ErrorTypeInvalidInput) {
		t.Errorf("IsType(ErrorTypeInvalidInput) = false, want true")
	}
	if err.IsType(ErrorTypeDuplicateKey) {
		t.Errorf("IsType(ErrorTypeDuplicateKey) = true, want false")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{
		Type:    ErrorTypeDeserialization,
		Message: "bad blob",
	}

	err.WithContext("slot", "taskManager_tasks")

	value, ok := err.GetContext("slot")
	if !ok {
		t.Fatalf("GetContext(slot) ok = false, want true")
	}
	if value != "taskManager_tasks" {
		t.Errorf("GetContext(slot) = %v, want taskManager_tasks", value)
	}
}

func TestAppError_GetContext_Missing(t *testing.T) {
	err := &AppError{
		Type:    ErrorTypeStorage,
		Message: "no context set",
	}

	if _, ok := err.GetContext("anything"); ok {
		t.Errorf("GetContext on empty context ok = true, want false")
	}
}
