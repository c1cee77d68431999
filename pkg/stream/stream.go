// Package stream provides a sequential framed container for many encoded
// values in one file or pipe. Each frame is independently checksummed so a
// reader can distinguish clean end-of-stream from a torn or corrupted tail.
//
// Frame layout (little-endian):
//
//	[CRC32(4)][PayloadLen(4)][Payload]
//
// The CRC32 (IEEE) covers the length field and the payload.
package stream

import "errors"

const (
	crcSize    = 4
	lenSize    = 4
	headerSize = crcSize + lenSize

	// DefaultMaxFrame bounds a single frame payload. A corrupt length
	// field must not trigger a giant allocation.
	DefaultMaxFrame = 1 << 30

	defaultBufferSize = 64 * 1024
)

var (
	// ErrCorruptFrame indicates a short frame or a CRC mismatch.
	ErrCorruptFrame = errors.New("stream: corrupt frame")

	// ErrFrameTooLarge indicates a frame payload beyond the configured bound.
	ErrFrameTooLarge = errors.New("stream: frame too large")
)
