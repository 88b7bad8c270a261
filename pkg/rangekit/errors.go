package rangekit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidStride is raised by Step when the stride would never make progress.
	ErrInvalidStride errorkit.Error = "ErrInvalidStride"
	// ErrNoRanges is raised by CombineN when there is nothing to combine.
	ErrNoRanges errorkit.Error = "ErrNoRanges"
	// ErrNegativeBound is raised by index ranges with an end before their begin.
	ErrNegativeBound errorkit.Error = "ErrNegativeBound"
	// ErrCursorMismatch is raised when two erased cursors of a different origin are compared.
	ErrCursorMismatch errorkit.Error = "ErrCursorMismatch"
)
