// Package services binds the API client to the local session. Views talk to
// these services rather than to the transport directly.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/myrecords/internal/client/client"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/session"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

// AuthService covers everything that creates, changes or ends a session.
//
// Contract:
//   - Login: authenticate, persist token and profile, seed the context.
//   - Register: create an account; no session is started.
//   - UpdateProfile: send the new profile and mirror the result.
//   - ChangePassword: send the password change; the session is unchanged.
//   - DeleteAccount: delete remotely, then end the session locally.
//   - Logout: end the session locally.
type AuthService interface {
	Login(ctx context.Context, in models.Credentials) (*models.UserProfile, error)
	Register(ctx context.Context, in models.UserPayload) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, in models.UserPayload) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, in models.PasswordChange) error
	DeleteAccount(ctx context.Context) error
	Logout(ctx context.Context) error
}

// SessionStore is the durable half of the session as this package needs it.
type SessionStore interface {
	SaveLogin(ctx context.Context, token string, u *models.UserProfile) error
	ClearAll(ctx context.Context) error
}

type authService struct {
	client  client.Client
	store   SessionStore
	current *session.Context
	log     logging.Logger
}

func NewAuthService(c client.Client, store SessionStore, current *session.Context, log logging.Logger) AuthService {
	return &authService{client: c, store: store, current: current, log: log.With("service", "auth")}
}

func (a *authService) Login(ctx context.Context, in models.Credentials) (*models.UserProfile, error) {
	res, err := a.client.Login(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user := res.User
	if err := a.store.SaveLogin(ctx, res.Token, &user); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	a.current.SetToken(res.Token)
	a.current.Replace(ctx, &user)

	a.log.Info(ctx, "logged in", "user_id", user.ID)
	return &user, nil
}

func (a *authService) Register(ctx context.Context, in models.UserPayload) (*models.UserProfile, error) {
	u, err := a.client.Register(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

// UpdateProfile stores the profile the backend returns, not the one sent.
func (a *authService) UpdateProfile(ctx context.Context, in models.UserPayload) (*models.UserProfile, error) {
	u, err := a.client.UpdateUser(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	a.current.Replace(ctx, u)
	return u, nil
}

func (a *authService) ChangePassword(ctx context.Context, in models.PasswordChange) error {
	if err := a.client.UpdatePassword(ctx, in); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	if err := a.client.DeleteUser(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return a.Logout(ctx)
}

// Logout drops the in-memory session even when clearing storage fails.
func (a *authService) Logout(ctx context.Context) error {
	a.current.Clear()
	if err := a.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
