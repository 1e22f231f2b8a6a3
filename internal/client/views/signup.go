package views

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/router"
	"github.com/dmitrijs2005/myrecords/internal/client/services"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

const MsgRegistered = "Data registered successfully!"

// SignupView is the registration form. It is not safe for concurrent use.
type SignupView struct {
	auth   services.AuthService
	notify Notifier
	nav    Navigator
	log    logging.Logger
	fields []form.Field
	draft  *form.Draft
}

func NewSignupView(auth services.AuthService, phone codec.Phone, notify Notifier, nav Navigator, log logging.Logger) *SignupView {
	v := &SignupView{
		auth:   auth,
		notify: notify,
		nav:    nav,
		log:    log.With("view", "signup"),
		fields: userFields(phone),
	}
	v.Reset()
	return v
}

func (v *SignupView) Reset() {
	v.draft = form.NewDraft(map[string]any{
		validation.FieldFirstName: "",
		validation.FieldLastName:  "",
		validation.FieldEmail:     "",
		validation.FieldPassword:  "",
		validation.FieldCPF:       "",
		validation.FieldPhone:     "",
	})
}

func (v *SignupView) Fields() []form.Field { return slices.Clone(v.fields) }

func (v *SignupView) Input(name, raw string) form.ChangeEvent {
	return input(v.fields, v.draft, name, raw)
}

func (v *SignupView) Form() FormState { return snapshot(v.draft) }

// Submit registers the account and moves to the login screen. Field
// rejections land on the form; other failures are only logged.
func (v *SignupView) Submit(ctx context.Context) error {
	if !validation.User.Apply(v.draft) {
		return ErrInvalidForm
	}
	payload, ok := userPayload(v.fields, v.draft)
	if !ok {
		return ErrInvalidForm
	}

	if _, err := v.auth.Register(ctx, payload); err != nil {
		if !mergeFieldErrors(v.draft, err) {
			v.log.Error(ctx, "register", "error", err)
		}
		return err
	}

	v.Reset()
	v.notify.Success(MsgRegistered)
	v.nav.Navigate(ctx, router.PathLogin)
	return nil
}

// userPayload strips the cpf and phone masks. A mask that cannot be
// parsed back puts its error on the field.
func userPayload(fields []form.Field, d *form.Draft) (models.UserPayload, bool) {
	p := models.UserPayload{
		FirstName: d.String(validation.FieldFirstName),
		LastName:  d.String(validation.FieldLastName),
		Email:     d.String(validation.FieldEmail),
		Password:  d.String(validation.FieldPassword),
	}

	ok := true
	canonical := func(name string) string {
		f, _ := lookup(fields, name)
		if f.Codec == nil {
			return d.String(name)
		}
		s, err := f.Codec.Parse(d.String(name))
		if err != nil {
			d.SetError(name, err.Error())
			ok = false
		}
		return s
	}
	p.CPF = canonical(validation.FieldCPF)
	p.Phone = canonical(validation.FieldPhone)
	return p, ok
}
