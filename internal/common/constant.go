// Package common contains shared constants and small helpers used across
// the myrecords client and the development backend.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated calls.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the session token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates a client call with backend logs.
	RequestIDHeaderName = "X-Request-ID"
)
