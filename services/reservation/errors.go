package reservation

import "fmt"

// ValidationError reports malformed input: non-positive nights, a missing
// reason, a discounted rate above the original, and so on.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError reports an illegal status change. Both sides are
// kept so the caller can render an actionable message.
type InvalidTransitionError struct {
	Current   string
	Requested string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.Current, e.Requested)
}

// PaymentRequiredError blocks checkout (or a room-change commit) until the
// outstanding amount is collected.
type PaymentRequiredError struct {
	Amount   float64
	Currency string
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("payment required: %.2f %s outstanding", e.Amount, e.Currency)
}

// ConflictError reports that a room is unavailable for the requested dates.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// AlreadyDecidedError reports an attempt to re-decide an extension.
type AlreadyDecidedError struct {
	ExtensionID string
	Status      string
}

func (e *AlreadyDecidedError) Error() string {
	return fmt.Sprintf("extension %s already decided: %s", e.ExtensionID, e.Status)
}

// NotFoundError reports an unknown reservation, extension, assignment or room.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// UnauthorizedError reports a failed PIN or permission check.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Message)
}
