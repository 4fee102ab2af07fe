package domain

import (
	"errors"
	"fmt"
)

var ErrPortalStatus = errors.New("unexpected portal status")

// AuthError reports a handshake step whose response did not have the expected shape.
type AuthError struct {
	Step   string
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	msg := "auth"
	if e.Step != "" {
		msg += " step " + e.Step
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// DeliveryError reports a non-2xx answer from an outbound collaborator.
type DeliveryError struct {
	Target     string
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("deliver to %s: status %d", e.Target, e.StatusCode)
	}
	return fmt.Sprintf("deliver to %s: status %d: %s", e.Target, e.StatusCode, e.Body)
}
