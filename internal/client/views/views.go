// Package views holds the screen logic of the client as plain state
// machines. They know nothing about terminals: the CLI feeds them input,
// renders their state and follows their navigation requests.
package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/myrecords/internal/client/client"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
)

var (
	// ErrBusy is returned while a mutating request from the same view is
	// still in flight.
	ErrBusy           = errors.New("a request is already in progress")
	ErrInvalidForm    = errors.New("form has errors")
	ErrNoForm         = errors.New("no form is open")
	ErrFormOpen       = errors.New("a form is open")
	ErrNoConfirmation = errors.New("nothing is waiting for confirmation")
	ErrRecordNotFound = errors.New("record not found")
)

// Notifier shows transient messages, the way a toast would.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator moves the application to another route.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// FormState is a read-only copy of a draft for rendering.
type FormState struct {
	Values map[string]any
	Errors map[string]string
}

func snapshot(d *form.Draft) FormState {
	if d == nil {
		return FormState{Values: map[string]any{}, Errors: map[string]string{}}
	}
	return FormState{Values: d.Values(), Errors: d.Errors()}
}

// mergeFieldErrors copies server-side field rejections carried by err into
// d. It reports false when err has no field details.
func mergeFieldErrors(d *form.Draft, err error) bool {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || !apiErr.HasDetails() {
		return false
	}
	for _, fe := range apiErr.Details {
		d.SetError(fe.Type, fe.Message)
	}
	return true
}
