package collections

import "errors"

// ErrNotFound is returned when an entity is absent or the caller lacks any
// qualifying capability. The two causes are deliberately indistinguishable
// so an unauthorized caller cannot probe for existence.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a request with a human-readable reason. It is
// client-caused and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
