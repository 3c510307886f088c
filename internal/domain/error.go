package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidDateFormat  = errors.New("date of birth must be in MM-DD-YYYY format")
	ErrNotAwaitingMessage = errors.New("no custom message was requested")
	ErrInvalidExecContext = errors.New("invalid query execution context")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
)
