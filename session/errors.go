package session

import "errors"

// Sentinel errors for session operations.
var (
	// ErrNoBirthDate indicates a query issued before a birth date was set.
	ErrNoBirthDate = errors.New("session: birth date not set")

	// ErrUnknownCommand indicates an unrecognized command verb.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrUsage indicates a command with missing or malformed arguments.
	ErrUsage = errors.New("session: bad arguments")
)
