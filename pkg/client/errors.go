package client

import (
	"errors"
	"fmt"
)

// Kind is the normalized failure taxonomy surfaced to callers. Local
// validation never reaches the network; network and server failures are
// caught at this boundary and re-raised with a kind plus a readable
// message. No call is ever retried automatically.
type Kind string

const (
	KindValidationFailed Kind = "validation_failed"
	KindUnauthorized     Kind = "unauthorized"
	KindNotFound         Kind = "not_found"
	KindNetworkError     Kind = "network_error"
	KindServerError      Kind = "server_error"
)

// Error is the single error type returned by Client methods.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status when the request completed, 0 otherwise
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the failure kind, or "" for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool   { return KindOf(err) == KindValidationFailed }
