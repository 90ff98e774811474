package paperless

import "errors"

var (
	// ErrNotFound indicates the document store has no document with the
	// requested id.
	ErrNotFound = errors.New("document not found")

	// ErrAuth indicates the document store rejected the API token.
	ErrAuth = errors.New("document store authentication failed")

	// ErrTransport indicates any other network or HTTP failure talking to
	// the document store.
	ErrTransport = errors.New("document store request failed")
)
