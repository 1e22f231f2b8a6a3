package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/client/views"
	"github.com/dmitrijs2005/myrecords/internal/common"
)

// secretFields are read without echo.
var secretFields = map[string]bool{
	validation.FieldPassword:           true,
	validation.FieldNewPassword:        true,
	validation.FieldConfirmNewPassword: true,
}

// formBinding connects a view's form to the prompt loop.
type formBinding struct {
	fields []form.Field
	state  func() views.FormState
	input  func(name, raw string) error
	// extra prompts for values that are not text fields, such as toggles.
	extra func(onlyErrors bool) error
	// retry offers to resend the unchanged draft after a failure that put
	// no errors on the form.
	retry bool
}

// ask prompts for one field. current is the display value already in the
// draft; an empty answer keeps it and reports keep. Secret answers are
// copied out and the terminal buffer is zeroed before returning.
func (a *App) ask(f form.Field, current string) (raw string, keep bool, err error) {
	if secretFields[f.Name] {
		pw, err := getPassword(f.Label, a.out)
		if err != nil {
			return "", false, err
		}
		defer common.WipeByteArray(pw)
		return string(pw), false, nil
	}

	prompt := f.Label
	if current != "" {
		prompt += " [" + current + "]"
	}
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", false, err
	}
	if text == "" && current != "" {
		return "", true, nil
	}
	return text, false, nil
}

// fill prompts for every field of b, or only for those carrying an error.
func (a *App) fill(b formBinding, onlyErrors bool) error {
	st := b.state()
	for _, f := range b.fields {
		if onlyErrors && st.Errors[f.Name] == "" {
			continue
		}
		current, _ := st.Values[f.Name].(string)
		raw, keep, err := a.ask(f, current)
		if err != nil {
			return err
		}
		if keep {
			continue
		}
		if err := b.input(f.Name, raw); err != nil {
			return err
		}
	}
	if b.extra != nil {
		return b.extra(onlyErrors)
	}
	return nil
}

// runForm prompts, submits and, while the user agrees, re-prompts the
// fields the submission put errors on. A failure without field errors has
// already been notified by the view; it ends the loop unless b.retry is
// set and the user asks to send the same draft again.
func (a *App) runForm(ctx context.Context, b formBinding, submit func(context.Context) error) error {
	onlyErrors, resend := false, false
	for {
		if !resend {
			if err := a.fill(b, onlyErrors); err != nil {
				return err
			}
		}
		resend = false

		err := submit(ctx)
		if err == nil {
			return nil
		}

		st := b.state()
		if len(st.Errors) == 0 && !errors.Is(err, views.ErrInvalidForm) {
			if !b.retry {
				return err
			}
			again, askErr := GetYesNo(a.reader, "Retry?", true, a.out)
			if askErr != nil || !again {
				return err
			}
			resend = true
			continue
		}
		renderFormErrors(a.out, b.fields, st)

		again, askErr := GetYesNo(a.reader, "Fix and resubmit?", true, a.out)
		if askErr != nil || !again {
			return err
		}
		onlyErrors = true
	}
}
