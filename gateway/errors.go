package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/ayursetu-client/internal/errors"
)

// ErrorPayload is the error body the backend services return on failure.
type ErrorPayload struct {
	Timestamp        string            `json:"timestamp,omitempty"`
	Status           int               `json:"status,omitempty"`
	Error            string            `json:"error,omitempty"`
	Message          string            `json:"message,omitempty"`
	Path             string            `json:"path,omitempty"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

// Error is the uniform failure returned for every unsuccessful request.
// Status is zero when no response was received.
type Error struct {
	Method  string
	Path    string
	Status  int
	Payload *ErrorPayload
	Body    []byte
	Err     error
}

func newTransportError(method, path string, err error) *Error {
	return &Error{Method: method, Path: path, Err: err}
}

func newStatusError(method, path string, status int, body []byte) *Error {
	e := &Error{Method: method, Path: path, Status: status, Body: body}
	var payload ErrorPayload
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		e.Payload = &payload
	} else if len(body) > 0 {
		// plain text bodies still carry a readable reason
		e.Payload = &ErrorPayload{Status: status, Message: string(body)}
	}
	return e
}

func (e *Error) kind() error {
	switch {
	case e.Status == 0:
		return apperrors.ErrTransport
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case e.Status >= 200 && e.Status < 300:
		return apperrors.ErrMalformedResponse
	default:
		return apperrors.ErrRequestFailed
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.kind())
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if m := e.Message(); m != "" {
		msg += ": " + m
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the failure kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.kind()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Message returns the backend provided message, if any.
func (e *Error) Message() string {
	if e == nil || e.Payload == nil {
		return ""
	}
	return e.Payload.Message
}

// ErrorMessage extracts the backend message from err, or "" when there is none.
func ErrorMessage(err error) string {
	var gwErr *Error
	if apperrors.As(err, &gwErr) {
		return gwErr.Message()
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var gwErr *Error
	if apperrors.As(err, &gwErr) {
		return gwErr.Status
	}
	return 0
}
