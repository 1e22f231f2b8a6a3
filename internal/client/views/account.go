package views

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/router"
	"github.com/dmitrijs2005/myrecords/internal/client/services"
	"github.com/dmitrijs2005/myrecords/internal/client/session"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

const (
	MsgDataUpdated      = "Data updated successfully!"
	MsgUpdateFailed     = "Failed to update user. Please try again."
	MsgAccountDeleted   = "Account deleted successfully!"
	MsgDeleteAcctFailed = "Failed to delete account. Please try again."
)

// AccountView is the account screen: the profile form, the password form
// and the delete-account confirmation. It is not safe for concurrent use.
type AccountView struct {
	auth    services.AuthService
	current *session.Context
	notify  Notifier
	nav     Navigator
	log     logging.Logger

	fields   []form.Field
	profile  *form.Draft
	password *form.Draft
	confirm  bool
}

func NewAccountView(auth services.AuthService, current *session.Context, phone codec.Phone, notify Notifier, nav Navigator, log logging.Logger) *AccountView {
	v := &AccountView{
		auth:    auth,
		current: current,
		notify:  notify,
		nav:     nav,
		log:     log.With("view", "account"),
		fields:  userFields(phone),
	}
	v.Load()
	return v
}

// Load seeds the profile form from the session and clears the password
// form. The profile password field always starts blank.
func (v *AccountView) Load() {
	u := v.current.User()
	if u == nil {
		u = &models.UserProfile{}
	}

	v.profile = form.NewDraft(map[string]any{validation.FieldPassword: ""})
	seed := map[string]string{
		validation.FieldFirstName: u.FirstName,
		validation.FieldLastName:  u.LastName,
		validation.FieldEmail:     u.Email,
		validation.FieldCPF:       u.CPF,
		validation.FieldPhone:     u.Phone,
	}
	for _, f := range v.fields {
		if val, ok := seed[f.Name]; ok {
			f.Seed(v.profile, val)
		}
	}

	v.password = form.NewDraft(map[string]any{
		validation.FieldPassword:           "",
		validation.FieldNewPassword:        "",
		validation.FieldConfirmNewPassword: "",
	})
	v.confirm = false
}

func (v *AccountView) ProfileFields() []form.Field  { return slices.Clone(v.fields) }
func (v *AccountView) PasswordFields() []form.Field { return slices.Clone(passwordFields) }

func (v *AccountView) Profile() FormState  { return snapshot(v.profile) }
func (v *AccountView) Password() FormState { return snapshot(v.password) }

func (v *AccountView) InputProfile(name, raw string) form.ChangeEvent {
	return input(v.fields, v.profile, name, raw)
}

func (v *AccountView) InputPassword(name, raw string) form.ChangeEvent {
	return input(passwordFields, v.password, name, raw)
}

// SubmitProfile sends the profile with cpf and phone unmasked. The
// returned profile replaces the session's.
func (v *AccountView) SubmitProfile(ctx context.Context) error {
	if !validation.User.Apply(v.profile) {
		return ErrInvalidForm
	}
	payload, ok := userPayload(v.fields, v.profile)
	if !ok {
		return ErrInvalidForm
	}

	if _, err := v.auth.UpdateProfile(ctx, payload); err != nil {
		if !mergeFieldErrors(v.profile, err) {
			v.log.Error(ctx, "update profile", "error", err)
			v.notify.Error(MsgUpdateFailed)
		}
		return err
	}

	v.profile.Set(validation.FieldPassword, "")
	v.notify.Success(MsgDataUpdated)
	return nil
}

// SubmitPassword checks the schema, then that both new passwords match.
// Nothing is sent unless both pass.
func (v *AccountView) SubmitPassword(ctx context.Context) error {
	if !validation.NewPassword.Apply(v.password) {
		return ErrInvalidForm
	}
	if !validation.CheckPasswordConfirmation(v.password) {
		return ErrInvalidForm
	}

	err := v.auth.ChangePassword(ctx, models.PasswordChange{
		Password:           v.password.String(validation.FieldPassword),
		NewPassword:        v.password.String(validation.FieldNewPassword),
		ConfirmNewPassword: v.password.String(validation.FieldConfirmNewPassword),
	})
	if err != nil {
		if !mergeFieldErrors(v.password, err) {
			v.log.Error(ctx, "change password", "error", err)
			v.notify.Error(MsgUpdateFailed)
		}
		return err
	}

	v.password.Reset(map[string]any{
		validation.FieldPassword:           "",
		validation.FieldNewPassword:        "",
		validation.FieldConfirmNewPassword: "",
	})
	v.notify.Success(MsgDataUpdated)
	return nil
}

func (v *AccountView) RequestDelete() { v.confirm = true }

func (v *AccountView) CancelDelete() { v.confirm = false }

func (v *AccountView) DeletePending() bool { return v.confirm }

// ConfirmDelete deletes the account, ends the session and goes to login.
func (v *AccountView) ConfirmDelete(ctx context.Context) error {
	if !v.confirm {
		return ErrNoConfirmation
	}
	v.confirm = false

	if err := v.auth.DeleteAccount(ctx); err != nil {
		v.log.Error(ctx, "delete account", "error", err)
		v.notify.Error(MsgDeleteAcctFailed)
		return err
	}

	v.notify.Success(MsgAccountDeleted)
	v.nav.Navigate(ctx, router.PathLogin)
	return nil
}

// Logout ends the session and goes to login. The navigation happens even
// when clearing storage fails.
func Logout(ctx context.Context, auth services.AuthService, nav Navigator, log logging.Logger) error {
	err := auth.Logout(ctx)
	if err != nil {
		log.Error(ctx, "logout", "error", err)
	}
	nav.Navigate(ctx, router.PathLogin)
	return err
}
