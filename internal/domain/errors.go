package domain

import "errors"

// ErrDatabaseConnection is the single error kind the database probe exposes.
// DNS failures, refused connections, rejected credentials and missing
// databases all match it via errors.Is.
var ErrDatabaseConnection = errors.New("database connection failure")

// ConnectionError carries the driver's failure for one connection attempt.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return ErrDatabaseConnection.Error()
	}
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Is(target error) bool { return target == ErrDatabaseConnection }
