// Package client contains the client-side building blocks that talk to the
// outside world: the records backend and the local session database.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the user endpoints (register, login, profile, password, deletion) and
//     record CRUD.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON,
//     attaches the session token as a bearer credential, tags every call
//     with an X-Request-ID, and decodes the backend's error payloads into
//     *APIError.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     that open the SQLite session file and apply embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are returned as
// *APIError; its Details carry per-field rejections and 401/403 responses
// match ErrUnauthorized with errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
