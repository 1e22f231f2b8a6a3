// Package metadata is the durable key/value area behind the client
// session. It lives in a local SQLite file so the session survives restarts.
package metadata

import (
	"context"
	"errors"
)

var ErrStore = errors.New("session storage error")

// Repository stores opaque values under string keys. Get reports absence
// with ok == false rather than an error.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
