package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for input that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionFull is returned when a session has no remaining capacity.
	ErrSessionFull = errors.New("session is fully booked")
	// ErrPaymentNotVerified is returned when the payment provider reports any
	// status other than succeeded for a claimed payment. No registration may
	// be written when this error occurs.
	ErrPaymentNotVerified = errors.New("payment not verified")
	// ErrDuplicateRegistration is returned by the repository when a
	// registration with the same payment intent reference already exists.
	ErrDuplicateRegistration = errors.New("registration already exists for payment reference")
	// ErrUnauthorized is returned on failed admin credential or token checks.
	ErrUnauthorized = errors.New("unauthorized")
)

// OrphanedPaymentError reports a persistence failure that happened after the
// payment was verified as succeeded: money has moved but no registration row
// exists. Callers must surface it distinctly and log the payment reference so
// an operator can reconcile the charge.
type OrphanedPaymentError struct {
	PaymentIntentID string
	Err             error
}

func (e *OrphanedPaymentError) Error() string {
	return fmt.Sprintf("payment %s succeeded but registration was not persisted: %v", e.PaymentIntentID, e.Err)
}

func (e *OrphanedPaymentError) Unwrap() error { return e.Err }
