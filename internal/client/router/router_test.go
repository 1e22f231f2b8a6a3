package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/myrecords/internal/logging"
)

type fakeTokens struct {
	token string
	err   error
	calls int
}

func (f *fakeTokens) Token(context.Context) (string, error) {
	f.calls++
	return f.token, f.err
}

func TestResolve_ProtectedWithoutTokenRedirectsToLogin(t *testing.T) {
	g := NewGuard(&fakeTokens{}, logging.Discard())

	for _, p := range []string{PathHome, PathAccount} {
		d := g.Resolve(context.Background(), p)
		require.Equal(t, PathLogin, d.Path, p)
		require.True(t, d.Redirected, p)
		require.Equal(t, p, d.Requested)
	}
}

func TestResolve_ProtectedWithTokenRenders(t *testing.T) {
	g := NewGuard(&fakeTokens{token: "tok"}, logging.Discard())

	for _, p := range []string{PathHome, PathAccount} {
		d := g.Resolve(context.Background(), p)
		require.Equal(t, p, d.Path)
		require.False(t, d.Redirected)
	}
}

func TestResolve_PublicAlwaysRendersWithoutReadingToken(t *testing.T) {
	for _, tok := range []string{"", "tok"} {
		ft := &fakeTokens{token: tok}
		g := NewGuard(ft, logging.Discard())

		for _, p := range []string{PathLogin, PathSignup} {
			d := g.Resolve(context.Background(), p)
			require.Equal(t, p, d.Path)
			require.False(t, d.Redirected)
		}
		require.Zero(t, ft.calls)
	}
}

func TestResolve_UnmatchedRedirectsToLogin(t *testing.T) {
	g := NewGuard(&fakeTokens{token: "tok"}, logging.Discard())

	for _, p := range []string{"", "/", "/records", "/home/extra"} {
		d := g.Resolve(context.Background(), p)
		require.Equal(t, PathLogin, d.Path, p)
		require.True(t, d.Redirected, p)
	}
}

func TestResolve_ReadsTokenOnEveryNavigation(t *testing.T) {
	ft := &fakeTokens{token: "tok"}
	g := NewGuard(ft, logging.Discard())
	ctx := context.Background()

	require.False(t, g.Resolve(ctx, PathHome).Redirected)

	ft.token = ""
	require.True(t, g.Resolve(ctx, PathHome).Redirected)
	require.Equal(t, 2, ft.calls)
}

func TestResolve_TokenErrorRedirects(t *testing.T) {
	g := NewGuard(&fakeTokens{token: "tok", err: errors.New("disk")}, logging.Discard())

	d := g.Resolve(context.Background(), PathHome)
	require.Equal(t, PathLogin, d.Path)
	require.True(t, d.Redirected)
}

func TestClean(t *testing.T) {
	cases := map[string]string{
		"home":       "/home",
		"/home/":     "/home",
		" /HOME ":    "/home",
		"/a/../home": "/home",
		"":           "/",
	}
	for in, want := range cases {
		require.Equal(t, want, Clean(in), in)
	}
}

func TestAccessString(t *testing.T) {
	require.Equal(t, "public", Public.String())
	require.Equal(t, "protected", Protected.String())
}
