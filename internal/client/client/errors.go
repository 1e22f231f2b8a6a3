package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError is one server-side rejection. Type names the offending form
// field.
type FieldError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// APIError is a non-2xx response. Details is empty when the body carried
// no field-scoped errors.
type APIError struct {
	Status  int
	Details []FieldError
	Message string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error: status %d", e.Status)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	for _, d := range e.Details {
		fmt.Fprintf(&b, "; %s: %s", d.Type, d.Message)
	}
	return b.String()
}

// Unwrap lets errors.Is match ErrUnauthorized on 401 and 403.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

func (e *APIError) HasDetails() bool {
	return len(e.Details) > 0
}

const maxErrorMessage = 200

// decodeError understands both {"details":[{type,message}]} and
// {"error":{type,message}}. Entries without a type, and anything else,
// end up in Message.
func decodeError(status int, raw []byte) *APIError {
	e := &APIError{Status: status}

	var payload struct {
		Details []FieldError    `json:"details"`
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		e.Message = clip(strings.TrimSpace(string(raw)), maxErrorMessage)
		return e
	}

	for _, d := range payload.Details {
		switch {
		case d.Type != "":
			e.Details = append(e.Details, d)
		case d.Message != "" && e.Message == "":
			e.Message = d.Message
		}
	}

	if len(payload.Error) > 0 {
		var fe FieldError
		var s string
		switch {
		case json.Unmarshal(payload.Error, &fe) == nil && fe.Type != "":
			e.Details = append(e.Details, fe)
		case fe.Message != "":
			e.Message = fe.Message
		case json.Unmarshal(payload.Error, &s) == nil:
			e.Message = s
		}
	}
	if e.Message == "" {
		e.Message = payload.Message
	}
	return e
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
