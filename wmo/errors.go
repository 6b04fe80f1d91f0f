package wmo

import (
	"errors"
)

var (
	// ErrGroupNotOwned is returned by Owns when the root does not declare a group.
	ErrGroupNotOwned = errors.New("group not owned by root")

	// ErrMissingChunk is returned when a required chunk is absent from a file.
	ErrMissingChunk = errors.New("missing chunk")

	// ErrInvalidState is returned when an operation is not allowed in the model's current state.
	ErrInvalidState = errors.New("invalid state")

	// ErrClosed is returned when a closed model is used.
	ErrClosed = errors.New("model closed")

	// ErrMaterialIndex is returned when a material index is out of range.
	ErrMaterialIndex = errors.New("material index out of range")
)
