package codec

import "errors"

// Decode errors. All are recoverable and deterministic: decoding the same
// malformed buffer twice yields the same kind both times. Callers match
// with errors.Is.
var (
	// ErrTruncated indicates the buffer ended before a declared field did.
	ErrTruncated = errors.New("truncated input")

	// ErrInvalidLength indicates a declared length or count that exceeds a
	// configured maximum, or trailing bytes after the root value.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnknownKind indicates an unrecognized discriminator byte.
	ErrUnknownKind = errors.New("unknown value kind")

	// ErrTooDeep indicates sequence nesting beyond the configured limit.
	ErrTooDeep = errors.New("nesting too deep")
)
