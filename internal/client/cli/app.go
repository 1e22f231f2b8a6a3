package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/myrecords/internal/client/client"
	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/config"
	"github.com/dmitrijs2005/myrecords/internal/client/router"
	"github.com/dmitrijs2005/myrecords/internal/client/services"
	"github.com/dmitrijs2005/myrecords/internal/client/session"
	"github.com/dmitrijs2005/myrecords/internal/client/views"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

// App is the terminal front end: it owns the session, the views and the
// current route, and turns REPL commands into view calls.
type App struct {
	log     logging.Logger
	db      *sql.DB
	current *session.Context
	guard   *router.Guard
	auth    services.AuthService
	phone   codec.Phone

	loginView   *views.LoginView
	signupView  *views.SignupView
	recordsView *views.RecordsView
	accountView *views.AccountView

	path   string
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session database and wires the backend client, the
// services and the views. opts are passed to the HTTP client.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, opts ...client.Option) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("session database: %w", err)
	}

	store := session.NewStore(db)
	opts = append([]client.Option{
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimit),
	}, opts...)
	api, err := client.NewHTTPClient(cfg.APIBaseURL, store, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a, err := newApp(ctx, db, store, api, codec.Phone{CountryCode: cfg.PhoneCountryCode}, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(ctx context.Context, db *sql.DB, store *session.Store, api client.Client, phone codec.Phone, log logging.Logger) (*App, error) {
	current, err := session.NewContext(ctx, store, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		log:     log,
		db:      db,
		current: current,
		guard:   router.NewGuard(store, log),
		auth:    services.NewAuthService(api, store, current, log),
		phone:   phone,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	notify := consoleNotifier{}
	a.loginView = views.NewLoginView(a.auth, notify, a, log)
	a.signupView = views.NewSignupView(a.auth, phone, notify, a, log)
	a.recordsView = views.NewRecordsView(services.NewRecordService(api), notify, log)
	a.accountView = views.NewAccountView(a.auth, current, phone, notify, a, log)
	return a, nil
}

// Close releases the session database.
func (a *App) Close() error {
	return a.db.Close()
}

// Run opens the home route, which falls back to login without a session,
// and blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to myrecords (type 'help' for commands)")
	a.Navigate(ctx, router.PathHome)
	runREPL(ctx, a, a.status, a.reader)
}

// Navigate asks the guard for path and renders whatever it allows.
func (a *App) Navigate(ctx context.Context, path string) {
	d := a.guard.Resolve(ctx, path)
	a.path = d.Path
	if d.Redirected {
		a.log.Debug(ctx, "navigation redirected", "requested", d.Requested, "path", d.Path)
	}

	switch d.Path {
	case router.PathLogin:
		a.loginView.Reset()
		printlnFn("== Login ==  (login, signup)")
	case router.PathSignup:
		a.signupView.Reset()
		printlnFn("== Sign up ==  (signup, login)")
	case router.PathHome:
		a.recordsView.Mount(ctx)
		printlnFn("== Records ==")
		renderRecords(a.out, a.recordsView)
	case router.PathAccount:
		a.accountView.Load()
		printlnFn("== Account ==")
		renderProfile(a.out, a.current.User(), a.phone)
	}
}

// Goto is the user-typed form of Navigate.
func (a *App) Goto(ctx context.Context, path string) {
	a.Navigate(ctx, path)
}

func (a *App) route() string { return a.path }

// status is shown in the prompt: the user's initials when signed in and
// the current route.
func (a *App) status() string {
	s := a.path
	if initials := a.current.User().Initials(); initials != "" && a.current.Current().Authenticated() {
		s = initials + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// consoleNotifier prints notifications on their own line.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { printlnFn("[ok]", msg) }
func (consoleNotifier) Error(msg string)   { printlnFn("[error]", msg) }
