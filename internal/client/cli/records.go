package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/client/views"
)

// List refetches the records and prints them.
func (a *App) List(ctx context.Context) error {
	a.recordsView.Mount(ctx)
	renderRecords(a.out, a.recordsView)
	return nil
}

// New opens the create form.
func (a *App) New(ctx context.Context) error {
	if err := a.recordsView.OpenCreate(); err != nil {
		printlnFn(err)
		return err
	}
	return a.submitRecord(ctx)
}

// Edit opens the edit form seeded with the listed record.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.recordsView.OpenEdit(id); err != nil {
		if errors.Is(err, views.ErrRecordNotFound) {
			printlnFn(fmt.Sprintf("No record with id %d. Use 'list' to refresh.", id))
		} else {
			printlnFn(err)
		}
		return err
	}
	return a.submitRecord(ctx)
}

func (a *App) submitRecord(ctx context.Context) error {
	v := a.recordsView
	err := a.runForm(ctx, formBinding{
		fields: v.Fields(),
		state:  v.Form,
		input: func(name, raw string) error {
			_, err := v.Input(name, raw)
			return err
		},
		extra: func(onlyErrors bool) error {
			st := v.Form()
			if onlyErrors && st.Errors[validation.FieldPaidOut] == "" {
				return nil
			}
			paid, _ := st.Values[validation.FieldPaidOut].(bool)
			paid, err := GetYesNo(a.reader, "Paid out?", paid, a.out)
			if err != nil {
				return err
			}
			return v.SetPaidOut(paid)
		},
		retry: true,
	}, v.Submit)
	// The user gave up on the draft.
	if err != nil {
		_ = v.CloseModal()
		return err
	}
	renderRecords(a.out, v)
	return nil
}

// Delete asks for confirmation, then deletes the record and refetches.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	v := a.recordsView
	if err := v.RequestDelete(id); err != nil {
		printlnFn(err)
		return err
	}

	ok, err := GetYesNo(a.reader, fmt.Sprintf("Delete record %d?", id), false, a.out)
	if err != nil || !ok {
		_ = v.CancelDelete()
		return err
	}
	err = v.ConfirmDelete(ctx)
	renderRecords(a.out, v)
	return err
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		printlnFn(fmt.Sprintf("Invalid id %q", arg))
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
