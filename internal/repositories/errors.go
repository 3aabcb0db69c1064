package repositories

import "fmt"

type repoError struct {
	message     string
	notFound    bool
	conflict    bool
	unavailable bool
}

func (e repoError) Error() string       { return e.message }
func (e repoError) IsNotFound() bool    { return e.notFound }
func (e repoError) IsConflict() bool    { return e.conflict }
func (e repoError) IsUnavailable() bool { return e.unavailable }

// NewNotFoundError builds a RepositoryError categorised as not-found.
func NewNotFoundError(format string, args ...any) RepositoryError {
	return repoError{message: fmt.Sprintf(format, args...), notFound: true}
}

// NewConflictError builds a RepositoryError categorised as a conflict.
func NewConflictError(format string, args ...any) RepositoryError {
	return repoError{message: fmt.Sprintf(format, args...), conflict: true}
}

// NewUnavailableError builds a RepositoryError categorised as unavailable.
func NewUnavailableError(format string, args ...any) RepositoryError {
	return repoError{message: fmt.Sprintf(format, args...), unavailable: true}
}
