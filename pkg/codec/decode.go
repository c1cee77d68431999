package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/norvik/valbin/pkg/value"
)

// Decode reconstructs a value tree from buf. The whole buffer must be
// exactly one encoded value; trailing bytes fail with ErrInvalidLength.
// The cursor only ever moves forward and decoded byte/string payloads are
// copied out, so the caller may reuse buf afterwards.
func (d *Decoder) Decode(buf []byte) (value.Value, error) {
	v, off, err := d.decode(buf, 0, 0)
	if err != nil {
		return value.Value{}, err
	}
	if off != len(buf) {
		return value.Value{}, fmt.Errorf("offset %d: %d trailing bytes after value: %w",
			off, len(buf)-off, ErrInvalidLength)
	}
	return v, nil
}

// decode reads one value starting at buf[off] and returns it with the new
// cursor position.
func (d *Decoder) decode(buf []byte, off, depth int) (value.Value, int, error) {
	if d.cfg.MaxDepth > 0 && depth > d.cfg.MaxDepth {
		return value.Value{}, off, fmt.Errorf("offset %d: nesting depth exceeds %d: %w",
			off, d.cfg.MaxDepth, ErrTooDeep)
	}
	if off >= len(buf) {
		return value.Value{}, off, fmt.Errorf("offset %d: missing kind byte: %w", off, ErrTruncated)
	}

	kind := value.Kind(buf[off])
	off += kindSize

	switch kind {
	case value.KindInt:
		if len(buf)-off < intSize {
			return value.Value{}, off, fmt.Errorf("offset %d: need %d bytes for int, have %d: %w",
				off, intSize, len(buf)-off, ErrTruncated)
		}
		n := int64(binary.LittleEndian.Uint64(buf[off:]))
		return value.Int(n), off + intSize, nil

	case value.KindBytes, value.KindString:
		n, off, err := d.readLen(buf, off, kind)
		if err != nil {
			return value.Value{}, off, err
		}
		if kind == value.KindString {
			return value.String(string(buf[off : off+n])), off + n, nil
		}
		data := make([]byte, n)
		copy(data, buf[off:])
		return value.Bytes(data), off + n, nil

	case value.KindSeq:
		return d.decodeSeq(buf, off, depth)

	default:
		return value.Value{}, off, fmt.Errorf("offset %d: discriminator 0x%02X: %w",
			off-kindSize, byte(kind), ErrUnknownKind)
	}
}

// readLen reads a u32 length field and validates it against the configured
// maximum and the remaining buffer. A length larger than the remainder is
// truncation: the declared bytes simply are not there.
func (d *Decoder) readLen(buf []byte, off int, kind value.Kind) (int, int, error) {
	if len(buf)-off < lenSize {
		return 0, off, fmt.Errorf("offset %d: missing %s length field: %w", off, kind, ErrTruncated)
	}
	n := int(binary.LittleEndian.Uint32(buf[off:]))
	off += lenSize
	if d.cfg.MaxPayload > 0 && n > d.cfg.MaxPayload {
		return 0, off, fmt.Errorf("offset %d: %s length %d exceeds limit %d: %w",
			off-lenSize, kind, n, d.cfg.MaxPayload, ErrInvalidLength)
	}
	if n > len(buf)-off {
		return 0, off, fmt.Errorf("offset %d: %s payload declares %d bytes, %d remain: %w",
			off-lenSize, kind, n, len(buf)-off, ErrTruncated)
	}
	return n, off, nil
}

func (d *Decoder) decodeSeq(buf []byte, off, depth int) (value.Value, int, error) {
	if len(buf)-off < lenSize {
		return value.Value{}, off, fmt.Errorf("offset %d: missing seq count field: %w", off, ErrTruncated)
	}
	count := int(binary.LittleEndian.Uint32(buf[off:]))
	off += lenSize
	if d.cfg.MaxSeqLen > 0 && count > d.cfg.MaxSeqLen {
		return value.Value{}, off, fmt.Errorf("offset %d: seq count %d exceeds limit %d: %w",
			off-lenSize, count, d.cfg.MaxSeqLen, ErrInvalidLength)
	}

	// Cap the allocation by what the remaining bytes could possibly hold:
	// a corrupt count field must not translate into a proportional
	// allocation. If count is a lie, element decoding hits ErrTruncated.
	capHint := count
	if rem := (len(buf) - off) / minValueSize; capHint > rem {
		capHint = rem
	}
	items := make([]value.Value, 0, capHint)

	var err error
	var item value.Value
	for i := 0; i < count; i++ {
		item, off, err = d.decode(buf, off, depth+1)
		if err != nil {
			return value.Value{}, off, err
		}
		items = append(items, item)
	}
	return value.Seq(items...), off, nil
}
