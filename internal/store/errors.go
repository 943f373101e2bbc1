package store

import (
	"errors"
	"fmt"
)

// NotFoundError reports an identity lookup miss. Lookup misses are the
// only terminal failures in the system; everything else defaults.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s/%s", e.Kind, e.ID)
}

func ErrNotFound(kind, id string) error {
	return NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
