// Package codec implements the valbin binary format: serialization and
// deserialization of value trees for the write_in and read_out paths.
//
// # Binary Format
//
// Every value is encoded as a single discriminator byte followed by a
// kind-specific payload. All multi-byte integers are little-endian and
// fixed-width; there is no varint encoding, which keeps the hot path
// branch-free and cache-simulator friendly.
//
//	Value  := Kind(1) Payload
//	Int    := 0x00 | n(8, LE two's complement)
//	Bytes  := 0x01 | len(4, LE) | len raw bytes
//	String := 0x02 | len(4, LE) | len UTF-8 bytes
//	Seq    := 0x03 | count(4, LE) | count nested Value encodings
//
// The format is private and versionless: no magic, no header, no trailing
// data. An encoding is exactly one value; trailing bytes are an error.
//
// # Encoding
//
// Encoding cannot fail for a well-formed in-memory value. The encoder
// computes the exact output size in one linear pass over the tree, makes a
// single allocation, then fills it in a second linear pass. There is no
// per-element allocation and no backtracking. Payloads whose length does
// not fit in 32 bits panic at encode time; such values cannot be
// constructed by decoding.
//
// # Decoding
//
// Decoding is a single linear scan with a strictly increasing cursor:
//
//	Start -> ReadingKind -> ReadingPayload -> {Done | Failed}
//
// recursing into nested Start states for sequences. Malformed input is
// always reported as an error, never a panic:
//
//   - ErrTruncated: the buffer ends before a declared field does.
//   - ErrInvalidLength: a declared length or count exceeds a configured
//     maximum, or the buffer has trailing bytes after the root value.
//   - ErrUnknownKind: an unrecognized discriminator byte.
//   - ErrTooDeep: sequence nesting beyond the configured depth limit.
//
// A sequence count can never cause an allocation proportional to a bogus
// declared count: capacity is capped by what the remaining buffer could
// possibly hold.
//
// # Concurrency
//
// Encoder and Decoder hold only immutable configuration. Each call owns
// its own buffer and cursor, so concurrent calls on independent inputs
// need no locking.
package codec
