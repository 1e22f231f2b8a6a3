package cli

import "context"

// Account prints the signed-in profile.
func (a *App) Account(ctx context.Context) error {
	renderProfile(a.out, a.current.User(), a.phone)
	return nil
}

// Profile edits first name, last name, email, CPF and phone. The current
// password is asked for on every submission.
func (a *App) Profile(ctx context.Context) error {
	v := a.accountView
	v.Load()
	err := a.runForm(ctx, formBinding{
		fields: v.ProfileFields(),
		state:  v.Profile,
		input:  func(name, raw string) error { v.InputProfile(name, raw); return nil },
	}, v.SubmitProfile)
	if err == nil {
		renderProfile(a.out, a.current.User(), a.phone)
	}
	return err
}

// Password changes the password. Mismatched confirmations never reach
// the backend.
func (a *App) Password(ctx context.Context) error {
	v := a.accountView
	v.Load()
	return a.runForm(ctx, formBinding{
		fields: v.PasswordFields(),
		state:  v.Password,
		input:  func(name, raw string) error { v.InputPassword(name, raw); return nil },
	}, v.SubmitPassword)
}

// DeleteAccount confirms, then deletes the account and ends the session.
func (a *App) DeleteAccount(ctx context.Context) error {
	v := a.accountView
	v.RequestDelete()

	ok, err := GetYesNo(a.reader, "Delete your account? This cannot be undone.", false, a.out)
	if err != nil || !ok {
		v.CancelDelete()
		return err
	}
	return v.ConfirmDelete(ctx)
}
