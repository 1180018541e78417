package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNotFound reports a lookup (by email or by ID) that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken reports a registration against an email already in the directory.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrNoActiveIdentity reports a collection operation without a bound identity.
	// This is a caller bug, not a user-facing condition.
	ErrNoActiveIdentity = errors.New("no active identity")

	// ErrNotAuthenticated reports access to session state outside the active state.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// TransportError carries a failed remote call: the HTTP status (zero for
// network-level failures) and the server-provided body text when available.
// It is never retried by this layer.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("http error: status %d", e.Status)
	}
	return "transport error"
}

// IsStatus reports whether err carries a TransportError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Status == status
}
