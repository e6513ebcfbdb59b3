package sixcities

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is matched by StatusErrors carrying a 404.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is matched by StatusErrors carrying a 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s %s returned status %d: %s", e.Method, e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

// Is lets callers match on ErrNotFound and ErrUnauthorized with errors.Is.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	}
	return false
}

// ValidationError lists the problems found in a payload before it was sent.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "invalid payload"
	case 1:
		return "invalid payload: " + e.Problems[0]
	default:
		return fmt.Sprintf("invalid payload: %s (+%d more)", e.Problems[0], len(e.Problems)-1)
	}
}
