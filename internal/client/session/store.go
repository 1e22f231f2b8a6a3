// Package session keeps the logged-in state of the client: a durable store
// for the token and cached profile, and an in-memory context seeded from it.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/myrecords/internal/dbx"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

var ErrMalformedProfile = errors.New("malformed stored user profile")

// Store is the durable key/value area behind the session. Values are
// strings; the profile is kept as JSON under KeyUser.
type Store struct {
	db      *sql.DB
	newRepo func(dbx.DBTX) metadata.Repository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
		newRepo: func(tx dbx.DBTX) metadata.Repository {
			return metadata.NewSQLiteRepository(tx)
		},
	}
}

func (s *Store) repo() metadata.Repository {
	return s.newRepo(s.db)
}

// Get returns the value under key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.repo().Get(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	return string(v), true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.repo().Set(ctx, key, []byte(value))
}

// Clear removes key. Clearing an absent key is not an error.
func (s *Store) Clear(ctx context.Context, key string) error {
	return s.repo().Delete(ctx, key)
}

// ClearAll drops the token and the cached profile together.
func (s *Store) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.newRepo(tx)
		if err := r.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return r.Delete(ctx, KeyUser)
	})
}

// Token returns the stored token or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	t, _, err := s.Get(ctx, KeyToken)
	return t, err
}

// User decodes the cached profile. It returns nil when none is stored and
// ErrMalformedProfile when the stored JSON cannot be decoded.
func (s *Store) User(ctx context.Context) (*models.UserProfile, error) {
	raw, ok, err := s.Get(ctx, KeyUser)
	if err != nil || !ok {
		return nil, err
	}
	var u models.UserProfile
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProfile, err)
	}
	return &u, nil
}

func (s *Store) SaveUser(ctx context.Context, u *models.UserProfile) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}
	return s.Set(ctx, KeyUser, string(b))
}

// SaveLogin stores the token and profile returned by a successful login
// in one transaction.
func (s *Store) SaveLogin(ctx context.Context, token string, u *models.UserProfile) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.newRepo(tx)
		if err := r.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, KeyUser, b)
	})
}
