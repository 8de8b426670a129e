package models

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed input field. The
// operation that produced it aborts without mutating any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup miss against the catalog or the
// account store.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// QuotaError reports an operation rejected by a fixed limit. Limit is
// the value the caller ran into: maximum stock, registrations per day,
// or the spin cooldown in days.
type QuotaError struct {
	Resource string
	Limit    int
	Unit     string
}

func (e *QuotaError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("%s: limit is %d %s", e.Resource, e.Limit, e.Unit)
	}
	return fmt.Sprintf("%s: limit is %d", e.Resource, e.Limit)
}

// Common errors used throughout the application
var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrNotLoggedIn    = errors.New("no account is logged in")
	ErrInvalidLogin   = errors.New("invalid email or password")
	ErrDuplicateEmail = errors.New("email is already registered")
	ErrSpinInProgress = errors.New("a spin is already in progress")
)
