// Package cli provides the interactive myrecords command-line client.
//
// It wires configuration, the local session store, the backend client and
// the views, then runs a REPL whose commands depend on the current route.
// Every navigation goes through the route guard, so a protected screen
// without a session always lands on login.
//
// Screens:
//   - /login and /signup: credentials and registration forms
//   - /home: the records table with create, edit and delete
//   - /account: profile, password change and account deletion
//
// Forms are filled field by field. Masked fields (CPF, phone, currency)
// are formatted as typed, passwords are read without echo, and a rejected
// submission offers to re-prompt only the fields that failed.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command table.
package cli
