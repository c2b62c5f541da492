package flags

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistent indicates a flag set that violates a family invariant.
var ErrInconsistent = errors.New("flags: inconsistent configuration")

// InconsistencyError describes a family invariant violation, such as two
// primaries of a single-choice family or models wanted with no backend.
type InconsistencyError struct {
	Family  string
	Members []string
	Reason  string
}

// Error implements the error interface.
func (e *InconsistencyError) Error() string {
	if len(e.Members) > 0 {
		return fmt.Sprintf("configuration inconsistency in %s family: %s (%s)",
			e.Family, e.Reason, strings.Join(e.Members, ", "))
	}
	return fmt.Sprintf("configuration inconsistency in %s family: %s", e.Family, e.Reason)
}

// Unwrap returns ErrInconsistent so callers can use errors.Is.
func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistent
}

func inconsistent(family, reason string, members ...string) error {
	return &InconsistencyError{Family: family, Members: members, Reason: reason}
}
