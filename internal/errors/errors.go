package errors

import (
	"errors"
	"fmt"
)

// NewDuplicateKeyError creates an error for an ID that is already taken
func NewDuplicateKeyError(id string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicateKey,
		Message: fmt.Sprintf("a task with ID %q already exists", id),
		Code:    "DUPLICATE_KEY",
		Context: map[string]interface{}{
			"id": id,
		},
	}
}

// NewInvalidInputError creates an error for input rejected by validation
func NewInvalidInputError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: message,
		Code:    "INVALID_INPUT",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewPersistenceError creates an error for a failed durable write
func NewPersistenceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("failed to persist tasks during %s", operation),
		Code:    "PERSISTENCE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewDeserializationError creates an error for stored data that could not be decoded
func NewDeserializationError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDeserialization,
		Message: "stored task data could not be decoded",
		Code:    "DESERIALIZATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewStorageError creates an error for a storage backend failure
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewConfigurationError creates an error for an invalid configuration value
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
		Code:    "INVALID_CONFIGURATION",
		Context: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    string(errorType),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsDuplicateKey checks if the error reports an already-taken task ID
func IsDuplicateKey(err error) bool {
	return IsErrorType(err, ErrorTypeDuplicateKey)
}

// IsInvalidInput checks if the error reports rejected user input
func IsInvalidInput(err error) bool {
	return IsErrorType(err, ErrorTypeInvalidInput)
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeDuplicateKey:
			return appErr.Message
		case ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeConfiguration:
			return appErr.Message
		case ErrorTypePersistence:
			return "Your changes could not be written to disk."
		case ErrorTypeDeserialization:
			return "Previously saved tasks could not be read."
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeDuplicateKey, ErrorTypeInvalidInput:
			return false // These are user errors, not system errors
		case ErrorTypePersistence, ErrorTypeDeserialization, ErrorTypeStorage, ErrorTypeConfiguration:
			return true // These are system errors that should be logged
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
