package views

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/myrecords/internal/client/client"
	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/router"
	"github.com/dmitrijs2005/myrecords/internal/client/services"
	"github.com/dmitrijs2005/myrecords/internal/client/session"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

func setupSession(t *testing.T) (*session.Store, *session.Context) {
	t.Helper()
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db)
	current, err := session.NewContext(ctx, store, logging.Discard())
	require.NoError(t, err)
	return store, current
}

// ---- LoginView ----

func TestLogin_ValidationBlocksRequest(t *testing.T) {
	auth := &fakeAuth{}
	v := NewLoginView(auth, &fakeNotifier{}, &fakeNav{}, logging.Discard())

	require.ErrorIs(t, v.Submit(context.Background()), ErrInvalidForm)
	require.Empty(t, auth.calls)
	require.Equal(t, validation.MsgRequired, v.Form().Errors[validation.FieldEmail])
	require.Equal(t, validation.MsgRequired, v.Form().Errors[validation.FieldPassword])
}

func TestLogin_SuccessNavigatesHome(t *testing.T) {
	auth := &fakeAuth{}
	nav := &fakeNav{}
	v := NewLoginView(auth, &fakeNotifier{}, nav, logging.Discard())

	v.Input(validation.FieldEmail, "ana@example.com")
	v.Input(validation.FieldPassword, "secret")
	require.NoError(t, v.Submit(context.Background()))

	require.Equal(t, models.Credentials{Email: "ana@example.com", Password: "secret"}, auth.lastCredentials)
	require.Equal(t, []string{router.PathHome}, nav.paths)
	require.Equal(t, "", v.Form().Values[validation.FieldPassword])
}

func TestLogin_FailureNotifiesAndMergesDetails(t *testing.T) {
	auth := &fakeAuth{loginErr: &client.APIError{
		Status:  401,
		Details: []client.FieldError{{Type: validation.FieldPassword, Message: "Invalid password"}},
	}}
	n := &fakeNotifier{}
	nav := &fakeNav{}
	v := NewLoginView(auth, n, nav, logging.Discard())

	v.Input(validation.FieldEmail, "ana@example.com")
	v.Input(validation.FieldPassword, "wrong")
	require.Error(t, v.Submit(context.Background()))

	assert.Equal(t, []string{MsgLoginFailed}, n.failures)
	assert.Equal(t, "Invalid password", v.Form().Errors[validation.FieldPassword])
	assert.Empty(t, nav.paths)
	assert.Len(t, v.Fields(), 2)
}

// ---- SignupView ----

func TestSignup_StripsMasksAndGoesToLogin(t *testing.T) {
	auth := &fakeAuth{}
	nav := &fakeNav{}
	n := &fakeNotifier{}
	v := NewSignupView(auth, codec.Phone{}, n, nav, logging.Discard())

	v.Input(validation.FieldFirstName, "Ana")
	v.Input(validation.FieldLastName, "Souza")
	v.Input(validation.FieldEmail, "ana@example.com")
	v.Input(validation.FieldPassword, "secret")
	ev := v.Input(validation.FieldCPF, "12345678901")
	require.Equal(t, "123.456.789-01", ev.Value)
	ev = v.Input(validation.FieldPhone, "11987654321")
	require.Equal(t, "+55 (11) 98765-4321", ev.Value)

	require.NoError(t, v.Submit(context.Background()))

	require.Equal(t, models.UserPayload{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Password:  "secret",
		CPF:       "12345678901",
		Phone:     "+5511987654321",
	}, auth.lastUser)
	require.Equal(t, []string{router.PathLogin}, nav.paths)
	require.Equal(t, []string{MsgRegistered}, n.success)
}

func TestSignup_OptionalFieldsMayBeBlank(t *testing.T) {
	auth := &fakeAuth{}
	v := NewSignupView(auth, codec.Phone{}, &fakeNotifier{}, &fakeNav{}, logging.Discard())

	v.Input(validation.FieldFirstName, "Ana")
	v.Input(validation.FieldLastName, "Souza")
	v.Input(validation.FieldEmail, "ana@example.com")
	v.Input(validation.FieldPassword, "secret")

	require.NoError(t, v.Submit(context.Background()))
	require.Empty(t, auth.lastUser.CPF)
	require.Empty(t, auth.lastUser.Phone)
}

func TestSignup_IncompleteCPF(t *testing.T) {
	auth := &fakeAuth{}
	v := NewSignupView(auth, codec.Phone{}, &fakeNotifier{}, &fakeNav{}, logging.Discard())

	v.Input(validation.FieldFirstName, "Ana")
	v.Input(validation.FieldLastName, "Souza")
	v.Input(validation.FieldEmail, "ana@example.com")
	v.Input(validation.FieldPassword, "secret")
	v.Input(validation.FieldCPF, "1234")

	require.ErrorIs(t, v.Submit(context.Background()), ErrInvalidForm)
	require.Equal(t, validation.MsgCPFIncomplete, v.Form().Errors[validation.FieldCPF])
	require.Empty(t, auth.calls)
}

func TestSignup_ServerErrorShapes(t *testing.T) {
	auth := &fakeAuth{registerErr: &client.APIError{
		Status:  409,
		Details: []client.FieldError{{Type: validation.FieldEmail, Message: "Email already registered"}},
	}}
	nav := &fakeNav{}
	v := NewSignupView(auth, codec.Phone{}, &fakeNotifier{}, nav, logging.Discard())

	v.Input(validation.FieldFirstName, "Ana")
	v.Input(validation.FieldLastName, "Souza")
	v.Input(validation.FieldEmail, "ana@example.com")
	v.Input(validation.FieldPassword, "secret")

	require.Error(t, v.Submit(context.Background()))
	require.Equal(t, "Email already registered", v.Form().Errors[validation.FieldEmail])
	require.Empty(t, nav.paths)

	auth.registerErr = errors.New("boom")
	require.Error(t, v.Submit(context.Background()))
	require.Empty(t, nav.paths)
}

// ---- AccountView ----

func TestAccount_LoadSeedsFormattedProfile(t *testing.T) {
	_, current := setupSession(t)
	current.Replace(context.Background(), &models.UserProfile{
		FirstName: "Ana", LastName: "Souza", Email: "ana@example.com",
		CPF: "12345678901", Phone: "+5511987654321",
	})

	v := NewAccountView(&fakeAuth{}, current, codec.Phone{}, &fakeNotifier{}, &fakeNav{}, logging.Discard())
	p := v.Profile()

	assert.Equal(t, "Ana", p.Values[validation.FieldFirstName])
	assert.Equal(t, "123.456.789-01", p.Values[validation.FieldCPF])
	assert.Equal(t, "+55 (11) 98765-4321", p.Values[validation.FieldPhone])
	assert.Equal(t, "", p.Values[validation.FieldPassword])
	assert.Len(t, v.ProfileFields(), 6)
	assert.Len(t, v.PasswordFields(), 3)
}

func TestAccount_SubmitProfile(t *testing.T) {
	_, current := setupSession(t)
	current.Replace(context.Background(), &models.UserProfile{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", CPF: "12345678901"})

	auth := &fakeAuth{}
	n := &fakeNotifier{}
	v := NewAccountView(auth, current, codec.Phone{}, n, &fakeNav{}, logging.Discard())

	v.InputProfile(validation.FieldPassword, "secret")
	require.NoError(t, v.SubmitProfile(context.Background()))

	assert.Equal(t, "12345678901", auth.lastUser.CPF)
	assert.Equal(t, "secret", auth.lastUser.Password)
	assert.Equal(t, []string{MsgDataUpdated}, n.success)
	assert.Equal(t, "", v.Profile().Values[validation.FieldPassword])
}

func TestAccount_SubmitProfileFailures(t *testing.T) {
	_, current := setupSession(t)
	current.Replace(context.Background(), &models.UserProfile{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"})

	auth := &fakeAuth{updateErr: client.ErrUnavailable}
	n := &fakeNotifier{}
	v := NewAccountView(auth, current, codec.Phone{}, n, &fakeNav{}, logging.Discard())

	require.ErrorIs(t, v.SubmitProfile(context.Background()), ErrInvalidForm)
	require.Equal(t, validation.MsgRequired, v.Profile().Errors[validation.FieldPassword])

	v.InputProfile(validation.FieldPassword, "secret")
	require.ErrorIs(t, v.SubmitProfile(context.Background()), client.ErrUnavailable)
	require.Equal(t, []string{MsgUpdateFailed}, n.failures)

	auth.updateErr = &client.APIError{Status: 400, Details: []client.FieldError{{Type: validation.FieldEmail, Message: "Email in use"}}}
	require.Error(t, v.SubmitProfile(context.Background()))
	require.Equal(t, "Email in use", v.Profile().Errors[validation.FieldEmail])
	require.Len(t, n.failures, 1)
}

func TestAccount_PasswordMismatchSendsNothing(t *testing.T) {
	_, current := setupSession(t)
	auth := &fakeAuth{}
	v := NewAccountView(auth, current, codec.Phone{}, &fakeNotifier{}, &fakeNav{}, logging.Discard())

	v.InputPassword(validation.FieldPassword, "old")
	v.InputPassword(validation.FieldNewPassword, "new-1")
	v.InputPassword(validation.FieldConfirmNewPassword, "new-2")

	require.ErrorIs(t, v.SubmitPassword(context.Background()), ErrInvalidForm)
	require.Equal(t, validation.MsgPasswordMismatch, v.Password().Errors[validation.FieldConfirmNewPassword])
	require.Empty(t, auth.calls)
}

func TestAccount_PasswordSchemaRunsFirst(t *testing.T) {
	_, current := setupSession(t)
	auth := &fakeAuth{}
	v := NewAccountView(auth, current, codec.Phone{}, &fakeNotifier{}, &fakeNav{}, logging.Discard())

	v.InputPassword(validation.FieldNewPassword, "new")

	require.ErrorIs(t, v.SubmitPassword(context.Background()), ErrInvalidForm)
	errs := v.Password().Errors
	require.Equal(t, validation.MsgRequired, errs[validation.FieldPassword])
	require.Equal(t, validation.MsgRequired, errs[validation.FieldConfirmNewPassword])
	require.Empty(t, auth.calls)
}

func TestAccount_PasswordChange(t *testing.T) {
	_, current := setupSession(t)
	auth := &fakeAuth{}
	n := &fakeNotifier{}
	v := NewAccountView(auth, current, codec.Phone{}, n, &fakeNav{}, logging.Discard())

	v.InputPassword(validation.FieldPassword, "old")
	v.InputPassword(validation.FieldNewPassword, "new")
	v.InputPassword(validation.FieldConfirmNewPassword, "new")

	require.NoError(t, v.SubmitPassword(context.Background()))
	require.Equal(t, models.PasswordChange{Password: "old", NewPassword: "new", ConfirmNewPassword: "new"}, auth.lastPassword)
	require.Equal(t, "", v.Password().Values[validation.FieldNewPassword])
	require.Equal(t, []string{MsgDataUpdated}, n.success)

	auth.passwordErr = &client.APIError{Status: 400, Details: []client.FieldError{{Type: validation.FieldPassword, Message: "Wrong password"}}}
	v.InputPassword(validation.FieldPassword, "bad")
	v.InputPassword(validation.FieldNewPassword, "new")
	v.InputPassword(validation.FieldConfirmNewPassword, "new")
	require.Error(t, v.SubmitPassword(context.Background()))
	require.Equal(t, "Wrong password", v.Password().Errors[validation.FieldPassword])
}

func TestAccount_DeleteFlow(t *testing.T) {
	_, current := setupSession(t)
	auth := &fakeAuth{}
	nav := &fakeNav{}
	v := NewAccountView(auth, current, codec.Phone{}, &fakeNotifier{}, nav, logging.Discard())
	ctx := context.Background()

	require.ErrorIs(t, v.ConfirmDelete(ctx), ErrNoConfirmation)

	v.RequestDelete()
	require.True(t, v.DeletePending())
	v.CancelDelete()
	require.False(t, v.DeletePending())
	require.Empty(t, auth.calls)

	v.RequestDelete()
	require.NoError(t, v.ConfirmDelete(ctx))
	require.Equal(t, []string{"delete_account"}, auth.calls)
	require.Equal(t, []string{router.PathLogin}, nav.paths)

	auth.deleteErr = client.ErrUnavailable
	v.RequestDelete()
	require.ErrorIs(t, v.ConfirmDelete(ctx), client.ErrUnavailable)
	require.Len(t, nav.paths, 1)
}

func TestLogout_NavigatesEvenOnError(t *testing.T) {
	auth := &fakeAuth{logoutErr: errors.New("disk")}
	nav := &fakeNav{}

	require.Error(t, Logout(context.Background(), auth, nav, logging.Discard()))
	require.Equal(t, []string{router.PathLogin}, nav.paths)
}

// ---- session end to guard ----

// deletingClient serves only the account deletion; any other call panics.
type deletingClient struct {
	client.Client
	deleted int
}

func (c *deletingClient) DeleteUser(context.Context) error {
	c.deleted++
	return nil
}

func TestSessionEnd_NextProtectedNavigationRedirects(t *testing.T) {
	for _, end := range []string{"logout", "delete account"} {
		t.Run(end, func(t *testing.T) {
			store, current := setupSession(t)
			ctx := context.Background()
			require.NoError(t, store.SaveLogin(ctx, "tok", &models.UserProfile{FirstName: "Ana"}))
			current.SetToken("tok")

			guard := router.NewGuard(store, logging.Discard())
			require.False(t, guard.Resolve(ctx, router.PathHome).Redirected)

			dc := &deletingClient{}
			auth := services.NewAuthService(dc, store, current, logging.Discard())
			nav := &fakeNav{}

			if end == "logout" {
				require.NoError(t, Logout(ctx, auth, nav, logging.Discard()))
			} else {
				v := NewAccountView(auth, current, codec.Phone{}, &fakeNotifier{}, nav, logging.Discard())
				v.RequestDelete()
				require.NoError(t, v.ConfirmDelete(ctx))
				require.Equal(t, 1, dc.deleted)
			}

			d := guard.Resolve(ctx, router.PathHome)
			require.True(t, d.Redirected)
			require.Equal(t, router.PathLogin, d.Path)
		})
	}
}
