package errors

import (
	"errors"
	"fmt"
)

// Custom error types for the link board application

// ErrLinkNotFound is returned when a link ID doesn't exist in the database
var ErrLinkNotFound = errors.New("link not found")

// ErrDatabaseConnection is returned when database connection fails
var ErrDatabaseConnection = errors.New("database connection failed")

// ErrUnsupportedDriver is returned when the configured database driver is unknown
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ErrSubmissionRejected is returned by callers that need to turn a rejected
// submission into an error (the CLI exit path, for instance)
var ErrSubmissionRejected = errors.New("submission rejected")

// ErrLinkPersistFailed is returned when a validated link can't be stored
type ErrLinkPersistFailed struct {
	Title  string
	Reason error
}

func (e ErrLinkPersistFailed) Error() string {
	return fmt.Sprintf("failed to persist link %q: %v", e.Title, e.Reason)
}

func (e ErrLinkPersistFailed) Unwrap() error {
	return e.Reason
}

// ErrURLCheckFailed is returned when URL health check fails
type ErrURLCheckFailed struct {
	URL    string
	Reason string
}

func (e ErrURLCheckFailed) Error() string {
	return fmt.Sprintf("failed to check URL %s: %s", e.URL, e.Reason)
}

// ErrConfigLoad is returned when configuration loading fails
type ErrConfigLoad struct {
	Path   string
	Reason string
}

func (e ErrConfigLoad) Error() string {
	return fmt.Sprintf("failed to load config from %s: %s", e.Path, e.Reason)
}
