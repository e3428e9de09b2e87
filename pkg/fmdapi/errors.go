package fmdapi

import (
	"errors"
	"fmt"
)

// Sentinel errors for local contract failures. These are never produced
// by the server; they fail before or after the HTTP exchange.
var (
	// ErrNoLayout indicates an operation was called without a layout
	// while the client has no default layout configured.
	ErrNoLayout = errors.New("no layout given and no default layout configured")

	// ErrNoQuery indicates Find was called without any query criteria.
	ErrNoQuery = errors.New("find requires at least one query criterion")

	// ErrNoScript indicates RunScript was called without a script name.
	ErrNoScript = errors.New("script name is required")

	// ErrNoSession indicates Disconnect was called on an API-key client.
	// Otto API-key authentication has no server-side session to end.
	ErrNoSession = errors.New("session teardown requires username/password authentication")

	// ErrNoToken indicates a successful login response did not carry the
	// access token header. This is a server contract violation, not a
	// retryable condition.
	ErrNoToken = errors.New("login response missing " + tokenHeader + " header")

	// ErrRecordCount indicates FindOne matched a number of records
	// other than exactly one.
	ErrRecordCount = errors.New("expected exactly one record")
)

// Error wraps a local failure with the operation that produced it.
type Error struct {
	Op  string // operation name, e.g. "FindOne"
	Err error  // underlying error, usually one of the sentinels above
	Msg string // optional human-readable detail
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// APIError is the normalized form of any non-2xx Data API response,
// including failed logins. Code is the FileMaker error code from the
// first entry of the response envelope's messages array, or "500" when
// the envelope carries no messages.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("filemaker error %s: %s", e.Code, e.Message)
}

// errSentinelCode is used when a failure response carries no parseable
// message envelope.
const errSentinelCode = "500"

// errCodeNoMatch is FileMaker's "no records match the request" error.
// It is the only code any operation treats specially; see Find.
const errCodeNoMatch = "401"
