package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

// Session is a snapshot of the logged-in state. An empty Token means
// logged out whatever User holds.
type Session struct {
	Token string
	User  *models.UserProfile
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Context is the in-memory holder of the current session. It is read from
// the Store once, at construction, and afterwards mirrors profile changes
// back into it.
type Context struct {
	mu    sync.RWMutex
	token string
	user  *models.UserProfile

	store *Store
	log   logging.Logger
}

// NewContext seeds a Context from store. A stored profile that cannot be
// decoded fails construction with ErrMalformedProfile.
func NewContext(ctx context.Context, store *Store, log logging.Logger) (*Context, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := store.User(ctx)
	if err != nil {
		return nil, err
	}
	return &Context{token: token, user: user, store: store, log: log}, nil
}

// Current returns a copy of the session.
func (c *Context) Current() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Session{Token: c.token, User: cloneUser(c.user)}
}

func (c *Context) User() *models.UserProfile {
	return c.Current().User
}

// Replace swaps the in-memory profile and then writes a non-nil profile
// through to the store. A nil profile is never written and never clears
// storage. Write failures are logged.
func (c *Context) Replace(ctx context.Context, u *models.UserProfile) {
	u = cloneUser(u)

	c.mu.Lock()
	c.user = u
	c.mu.Unlock()

	if u == nil {
		return
	}
	if err := c.store.SaveUser(ctx, u); err != nil {
		c.log.Error(ctx, "mirror user profile", "error", err)
	}
}

// SetToken records the token obtained at login.
func (c *Context) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Clear forgets the in-memory session. Storage is left alone.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.user = nil
}

func cloneUser(u *models.UserProfile) *models.UserProfile {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
