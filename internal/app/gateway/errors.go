// internal/app/gateway/errors.go
package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure for the screens that render it.
type Kind string

const (
	// KindNetwork: the request never completed (DNS, dial, timeout).
	KindNetwork Kind = "network"
	// KindAuth: the service rejected the bearer token. Callers treat the
	// session as absent and send the user back to login.
	KindAuth Kind = "auth"
	// KindValidation: the service rejected the submitted input.
	KindValidation Kind = "validation"
	// KindServer: the service reported a failure of its own.
	KindServer Kind = "server"
)

// Error is the single failure type every gateway call surfaces. Message is
// safe to show inline on the originating panel.
type Error struct {
	Kind    Kind
	Message string
	Status  int   // HTTP status when one was received, else 0
	Err     error // underlying transport error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsAuth reports whether err is a gateway auth failure.
func IsAuth(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindAuth
}

// AsError returns err as a *Error, wrapping unknown errors as KindNetwork
// so callers always have a kind and a displayable message.
func AsError(err error) *Error {
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}
	return &Error{Kind: KindNetwork, Message: "could not reach the internship service", Err: err}
}

// classify maps an HTTP status and service message onto a failure kind.
func classify(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindAuth, Message: message, Status: status}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &Error{Kind: KindValidation, Message: message, Status: status}
	default:
		return &Error{Kind: KindServer, Message: message, Status: status}
	}
}

// netError wraps a transport-level failure.
func netError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "could not reach the internship service", Err: err}
}
