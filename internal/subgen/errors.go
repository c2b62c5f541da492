// Package subgen holds the sub-generators composed into a project run: the
// endpoint scaffolder and the client component configuration.
package subgen

import "errors"

// Sentinel errors for sub-generators.
var (
	// ErrInvalidRequest indicates a request the sub-generator cannot serve.
	ErrInvalidRequest = errors.New("subgen: invalid request")

	// ErrNeedleNotFound indicates a registration file without its insertion marker.
	ErrNeedleNotFound = errors.New("subgen: needle not found")
)
