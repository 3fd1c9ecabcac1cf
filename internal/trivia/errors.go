package trivia

import "errors"

// Failure kinds surfaced by the service. The HTTP layer maps ErrNotFound
// to 404 and both ErrMalformedRequest and ErrStorage to 422; keeping the
// two 422 causes distinct internally makes the logs and tests honest even
// though the wire code collapses them.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrMalformedRequest = errors.New("malformed request body")
	ErrStorage          = errors.New("storage operation failed")
)
