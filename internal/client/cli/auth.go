package cli

import (
	"context"

	"github.com/dmitrijs2005/myrecords/internal/client/views"
)

// Login prompts for email and password and submits the login form. On
// success the view navigates home.
func (a *App) Login(ctx context.Context) error {
	v := a.loginView
	v.Reset()
	return a.runForm(ctx, formBinding{
		fields: v.Fields(),
		state:  v.Form,
		input:  func(name, raw string) error { v.Input(name, raw); return nil },
	}, v.Submit)
}

// Signup prompts for the registration form. CPF and phone are masked as
// they are typed; on success the view navigates to login.
func (a *App) Signup(ctx context.Context) error {
	v := a.signupView
	v.Reset()
	return a.runForm(ctx, formBinding{
		fields: v.Fields(),
		state:  v.Form,
		input:  func(name, raw string) error { v.Input(name, raw); return nil },
	}, v.Submit)
}

// Logout ends the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	return views.Logout(ctx, a.auth, a, a.log)
}
