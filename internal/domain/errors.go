package domain

import "errors"

// Domain errors
var (
	// Account errors
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")

	// Checkout errors
	ErrEmptyCart             = errors.New("cart is empty")
	ErrOrderPersistence      = errors.New("order could not be persisted")
	ErrGuestCheckoutDisabled = errors.New("guest checkout is disabled")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError carries a user-facing message for rejected input.
// It is returned, not panicked, and its message is safe to send to
// the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AsValidationError returns the ValidationError wrapped in err, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
