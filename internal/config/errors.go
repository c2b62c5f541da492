// Package config holds the fixed generation parameters persisted alongside the
// feature flags, the invocation options of the generator, and their defaults
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidAppSuffix indicates an app suffix that is not a valid identifier part.
	ErrInvalidAppSuffix = errors.New("config: invalid app suffix")

	// ErrInvalidLogLevel indicates an unrecognised log level.
	ErrInvalidLogLevel = errors.New("config: invalid log level, must be one of: debug, info, warn, error")
)

// ValidationError reports one invalid option, named by its flag.
type ValidationError struct {
	Flag    string
	Message string
	Value   any
	Wrapped error // sentinel matched by errors.Is
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid --%s %q: %s", e.Flag, fmt.Sprint(e.Value), e.Message)
	}
	return fmt.Sprintf("invalid --%s: %s", e.Flag, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors collects every invalid option of one invocation.
// It matches ErrInvalidConfig and each contained sentinel.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Error()
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for i := range e {
		if errors.Is(e[i].Wrapped, target) {
			return true
		}
	}
	return false
}
