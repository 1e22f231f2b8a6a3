package cli

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/myrecords/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	route() string
	Goto(ctx context.Context, path string)

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	Account(ctx context.Context) error
	Profile(ctx context.Context) error
	Password(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// routeCommands lists what each screen accepts besides help, goto and exit.
var routeCommands = map[string][]string{
	router.PathLogin:   {"login", "signup"},
	router.PathSignup:  {"signup", "login"},
	router.PathHome:    {"list", "new", "edit", "delete", "account", "logout"},
	router.PathAccount: {"account", "profile", "password", "delete-account", "home", "logout"},
}

var globalCommands = []string{"goto", "help", "exit"}

// runREPL starts a simple read–eval–print loop for the myrecords CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Which commands are accepted depends on the
// current route:
//
//	/login    login (submit), signup (go to sign up)
//	/signup   signup (submit), login (go to login)
//	/home     (l)ist, new, edit <id>, delete <id>, account, logout
//	/account  account (show), profile, password, delete-account, home, logout
//	anywhere  help, goto <path>, exit | quit
//
// The loop exits on EOF or when the user types "exit" or "quit". Errors
// returned by handlers are ignored here; the views have already notified
// or logged them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mr %s> ", statusFn()))
		line, ok := readLine(in)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		if cmd == "l" {
			cmd = "list"
		}

		switch cmd {
		case "help":
			cmds := append(slices.Clone(routeCommands[a.route()]), globalCommands...)
			printlnFn("Available commands:", strings.Join(cmds, ", "))
			continue

		case "goto":
			if len(args) == 0 {
				printlnFn("Usage: goto <path>")
				continue
			}
			a.Goto(ctx, args[0])
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !slices.Contains(routeCommands[a.route()], cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		dispatch(ctx, a, cmd, args)
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	route := a.route()

	switch cmd {
	case "login":
		if route == router.PathLogin {
			_ = a.Login(ctx)
		} else {
			a.Goto(ctx, router.PathLogin)
		}

	case "signup":
		if route == router.PathSignup {
			_ = a.Signup(ctx)
		} else {
			a.Goto(ctx, router.PathSignup)
		}

	case "account":
		if route == router.PathAccount {
			_ = a.Account(ctx)
		} else {
			a.Goto(ctx, router.PathAccount)
		}

	case "home":
		a.Goto(ctx, router.PathHome)

	case "list":
		_ = a.List(ctx)

	case "new":
		_ = a.New(ctx)

	case "edit", "delete":
		if len(args) == 0 {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			return
		}
		if cmd == "edit" {
			_ = a.Edit(ctx, args[0])
		} else {
			_ = a.Delete(ctx, args[0])
		}

	case "profile":
		_ = a.Profile(ctx)

	case "password":
		_ = a.Password(ctx)

	case "delete-account":
		_ = a.DeleteAccount(ctx)

	case "logout":
		_ = a.Logout(ctx)
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; ok is false only at EOF.
func readLine(in *bufio.Reader) (string, bool) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
