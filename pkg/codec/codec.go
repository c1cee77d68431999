package codec

// Wire-level sizes of the fixed fields.
const (
	kindSize = 1
	lenSize  = 4
	intSize  = 8

	// The smallest possible encoded value is an empty bytes/string/seq:
	// one kind byte plus one length field. Used to bound sequence
	// allocations against the remaining buffer.
	minValueSize = kindSize + lenSize
)

// Config carries the format limits enforced at decode time. Endianness and
// field widths are fixed constants of the format; the limits below exist to
// reject corrupt or malicious inputs early. A Config is immutable once
// handed to an Encoder or Decoder.
type Config struct {
	// MaxDepth is the maximum sequence nesting depth accepted by Decode.
	MaxDepth int

	// MaxSeqLen is the maximum element count accepted for a single
	// sequence. Zero or negative disables the check.
	MaxSeqLen int

	// MaxPayload is the maximum byte length accepted for a single bytes or
	// string payload. Zero or negative disables the check.
	MaxPayload int
}

// DefaultConfig returns the limits used by the CLI binaries unless a config
// file overrides them.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   64,
		MaxSeqLen:  1 << 20,
		MaxPayload: 1 << 30,
	}
}

// Encoder serializes value trees into the binary format. Safe for
// concurrent use.
type Encoder struct {
	cfg Config
}

// NewEncoder creates an encoder with the given limits.
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// Decoder reconstructs value trees from the binary format. Safe for
// concurrent use.
type Decoder struct {
	cfg Config
}

// NewDecoder creates a decoder with the given limits.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{cfg: cfg}
}
