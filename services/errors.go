package services

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when the generation service reply cannot
// be converted into a valid maintenance schedule. It surfaces to the caller
// as a generation failure; an empty reply (the generation client absorbs
// transport errors into "") is just one more malformed-input case.
var ErrMalformedResponse = errors.New("malformed generation response")

// ValidationError reports a missing or invalid required input field. It is
// raised before any prompt is built or any external call is made.
type ValidationError struct {
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid field %q: %s", e.Field, e.Details)
	}
	return e.Details
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
