package hash

import "errors"

// Errors returned by the sponge engine. Failures are always reported as
// values; the engine never panics on a corrupted or misused context.
var (
	// ErrInvalidContext signals a structural mismatch between a context's
	// declared family, digest length, rate and buffer bookkeeping. A context
	// in this condition must be reconstructed, never repaired in place.
	ErrInvalidContext = errors.New("hash: invalid sponge context")

	// ErrInvalidState signals an operation called out of sequence, such as
	// an update after finalization or a second finalization.
	ErrInvalidState = errors.New("hash: invalid sponge state")

	// ErrLengthOverflow signals that the absorbed-byte counter would wrap.
	// The context must be discarded.
	ErrLengthOverflow = errors.New("hash: absorbed length overflow")

	// ErrShortBuffer signals an output buffer smaller than the context's
	// configured digest or XOF output length.
	ErrShortBuffer = errors.New("hash: output buffer too short")
)
