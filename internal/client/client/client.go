package client

import (
	"context"

	"github.com/dmitrijs2005/myrecords/internal/client/models"
)

// Client is the records backend API as seen by the client.
type Client interface {
	Register(ctx context.Context, in models.UserPayload) (*models.UserProfile, error)
	Login(ctx context.Context, in models.Credentials) (*models.LoginResult, error)
	UpdateUser(ctx context.Context, in models.UserPayload) (*models.UserProfile, error)
	UpdatePassword(ctx context.Context, in models.PasswordChange) error
	DeleteUser(ctx context.Context) error

	ListRecords(ctx context.Context) ([]models.Record, error)
	GetRecord(ctx context.Context, id int64) (*models.Record, error)
	CreateRecord(ctx context.Context, in models.RecordPayload) (*models.Record, error)
	UpdateRecord(ctx context.Context, id int64, in models.RecordPayload) (*models.Record, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// TokenSource yields the current session token, or "" when logged out.
// It is consulted on every authenticated call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
