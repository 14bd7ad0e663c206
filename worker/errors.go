package worker

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// isTableNotFoundError checks if the error indicates a missing table
func isTableNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceNotFoundException"
	}

	// Fallback to string matching for wrapped error types
	errStr := err.Error()
	return strings.Contains(errStr, "ResourceNotFoundException") ||
		strings.Contains(errStr, "Requested resource not found")
}

// isTableAlreadyExistsError checks if table creation lost a race to another
// instance creating the same table
func isTableAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceInUseException"
	}

	return strings.Contains(err.Error(), "ResourceInUseException")
}
