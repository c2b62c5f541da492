// Package project wires the generator: it builds the stage pipeline steps
// that name the app, resolve the feature flags, persist the configuration,
// write the project tree and install its dependencies.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidRoot indicates the given project root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrNotInProject indicates no generated project encloses a directory.
	ErrNotInProject = errors.New("not in a generated project")

	// ErrProbeFailed indicates the npm version probe failed. It is logged,
	// never returned from a run.
	ErrProbeFailed = errors.New("npm version probe failed")

	// ErrInstallFailed indicates dependency installation failed.
	ErrInstallFailed = errors.New("dependency installation failed")
)
