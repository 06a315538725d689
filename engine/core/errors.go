package core

import "errors"

// Error kinds shared across the engine. Wrap with fmt.Errorf("%w: ...") and
// match with errors.Is.
var (
	// ErrInvalidConfiguration: negative segment counts, FOV at a tangent
	// singularity, non-positive sizes.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMissingResource: no texture frame to derive dimensions from.
	ErrMissingResource = errors.New("missing resource")

	// ErrBackendUnavailable: no accelerated context to create GPU resources.
	ErrBackendUnavailable = errors.New("rendering backend unavailable")
)
