// errors/sync_errors.go
package errors

import "errors"

var (
	ErrFetchUnavailable  = errors.New("remote feed unavailable")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrSyncInProgress    = errors.New("sync already in progress")
	ErrCafeteriaNotFound = errors.New("cafeteria not found")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidDateParam  = errors.New("invalid date parameter")
)
