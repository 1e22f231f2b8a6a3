// Package router decides which view a navigation lands on. Protected routes
// need a session token, read fresh from the store on every navigation.
package router

import (
	"context"
	"path"
	"strings"

	"github.com/dmitrijs2005/myrecords/internal/logging"
)

const (
	PathLogin   = "/login"
	PathSignup  = "/signup"
	PathHome    = "/home"
	PathAccount = "/account"
)

type Access int

const (
	Public Access = iota
	Protected
)

func (a Access) String() string {
	if a == Protected {
		return "protected"
	}
	return "public"
}

type Route struct {
	Path   string
	Access Access
}

// Routes is the navigation table.
var Routes = []Route{
	{Path: PathLogin, Access: Public},
	{Path: PathSignup, Access: Public},
	{Path: PathHome, Access: Protected},
	{Path: PathAccount, Access: Protected},
}

// TokenReader yields the stored session token, "" when there is none.
type TokenReader interface {
	Token(ctx context.Context) (string, error)
}

// Decision is where a navigation ends up. Redirected is set when Path
// differs from the requested one.
type Decision struct {
	Requested  string
	Path       string
	Redirected bool
}

type Guard struct {
	tokens TokenReader
	routes map[string]Route
	log    logging.Logger
}

func NewGuard(tokens TokenReader, log logging.Logger) *Guard {
	g := &Guard{tokens: tokens, routes: make(map[string]Route, len(Routes)), log: log}
	for _, r := range Routes {
		g.routes[r.Path] = r
	}
	return g
}

// Resolve maps a requested path to the view to render. Unknown paths and
// protected paths without a token go to the login view; the original
// target is not remembered.
func (g *Guard) Resolve(ctx context.Context, requested string) Decision {
	p := Clean(requested)
	route, ok := g.routes[p]
	if !ok {
		return redirect(requested, PathLogin)
	}
	if route.Access == Public {
		return Decision{Requested: requested, Path: p}
	}

	token, err := g.tokens.Token(ctx)
	if err != nil {
		g.log.Error(ctx, "read session token", "path", p, "error", err)
		return redirect(requested, PathLogin)
	}
	if token == "" {
		return redirect(requested, PathLogin)
	}
	return Decision{Requested: requested, Path: p}
}

func redirect(from, to string) Decision {
	return Decision{Requested: from, Path: to, Redirected: true}
}

// Clean normalises user-typed paths: "home", "/home/" and "/HOME" all
// become "/home".
func Clean(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
