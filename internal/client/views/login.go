package views

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/router"
	"github.com/dmitrijs2005/myrecords/internal/client/services"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

const MsgLoginFailed = "Login failed! Please check your credentials."

// LoginView is the login form. It is not safe for concurrent use.
type LoginView struct {
	auth   services.AuthService
	notify Notifier
	nav    Navigator
	log    logging.Logger
	draft  *form.Draft
}

func NewLoginView(auth services.AuthService, notify Notifier, nav Navigator, log logging.Logger) *LoginView {
	v := &LoginView{auth: auth, notify: notify, nav: nav, log: log.With("view", "login")}
	v.Reset()
	return v
}

func (v *LoginView) Reset() {
	v.draft = form.NewDraft(map[string]any{
		validation.FieldEmail:    "",
		validation.FieldPassword: "",
	})
}

func (v *LoginView) Fields() []form.Field { return slices.Clone(loginFields) }

func (v *LoginView) Input(name, raw string) form.ChangeEvent {
	return input(loginFields, v.draft, name, raw)
}

func (v *LoginView) Form() FormState { return snapshot(v.draft) }

// Submit logs in and navigates home. A failed login always notifies;
// field details from the backend are also put on the form.
func (v *LoginView) Submit(ctx context.Context) error {
	if !validation.Login.Apply(v.draft) {
		return ErrInvalidForm
	}

	_, err := v.auth.Login(ctx, models.Credentials{
		Email:    v.draft.String(validation.FieldEmail),
		Password: v.draft.String(validation.FieldPassword),
	})
	if err != nil {
		v.notify.Error(MsgLoginFailed)
		if !mergeFieldErrors(v.draft, err) {
			v.log.Warn(ctx, "login failed", "error", err)
		}
		return err
	}

	v.Reset()
	v.nav.Navigate(ctx, router.PathHome)
	return nil
}
