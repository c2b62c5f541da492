// Package template generates the project file tree from an embedded
// template filesystem, filtered by the active feature flags.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates a template could not be read.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution referenced a missing key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template delimiters survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a template path that escapes the project root.
	ErrPathTraversal = errors.New("template: path traversal")
)
