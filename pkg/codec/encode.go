package codec

import (
	"encoding/binary"

	"github.com/norvik/valbin/pkg/value"
)

// EncodedSize returns the exact number of bytes Encode will produce for v.
// One linear pass over the tree, no allocation.
func EncodedSize(v value.Value) int {
	switch v.Kind {
	case value.KindInt:
		return kindSize + intSize
	case value.KindBytes:
		return kindSize + lenSize + len(v.Data)
	case value.KindString:
		return kindSize + lenSize + len(v.Str)
	case value.KindSeq:
		n := kindSize + lenSize
		for i := range v.Items {
			n += EncodedSize(v.Items[i])
		}
		return n
	default:
		panic("codec: encode of invalid value kind")
	}
}

// Encode serializes v into a freshly allocated buffer. It never fails for a
// well-formed value: the size pre-pass makes exactly one allocation and the
// fill pass cannot run out of room. Payloads longer than 32 bits panic; such
// values are a construction-time bug, not a runtime condition.
func (e *Encoder) Encode(v value.Value) []byte {
	buf := make([]byte, EncodedSize(v))
	e.put(buf, 0, v)
	return buf
}

// Append serializes v onto dst, growing it as needed, and returns the
// extended slice. Lets hot loops reuse one buffer across values.
func (e *Encoder) Append(dst []byte, v value.Value) []byte {
	off := len(dst)
	need := EncodedSize(v)
	if cap(dst)-off < need {
		grown := make([]byte, off, nextCap(off+need, cap(dst)))
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:off+need]
	e.put(dst, off, v)
	return dst
}

// nextCap doubles the current capacity until it fits need, so repeated
// Append calls grow the buffer in amortized constant time.
func nextCap(need, cur int) int {
	if cur == 0 {
		return need
	}
	for cur < need {
		cur *= 2
	}
	return cur
}

// put writes the encoding of v at buf[off:] and returns the new offset.
// buf must already be large enough.
func (e *Encoder) put(buf []byte, off int, v value.Value) int {
	buf[off] = byte(v.Kind)
	off += kindSize

	switch v.Kind {
	case value.KindInt:
		binary.LittleEndian.PutUint64(buf[off:], uint64(v.Int))
		return off + intSize
	case value.KindBytes:
		off = putLen(buf, off, len(v.Data))
		return off + copy(buf[off:], v.Data)
	case value.KindString:
		off = putLen(buf, off, len(v.Str))
		return off + copy(buf[off:], v.Str)
	case value.KindSeq:
		off = putLen(buf, off, len(v.Items))
		for i := range v.Items {
			off = e.put(buf, off, v.Items[i])
		}
		return off
	default:
		panic("codec: encode of invalid value kind")
	}
}

func putLen(buf []byte, off, n int) int {
	if n > int(^uint32(0)) {
		panic("codec: payload too large for 32-bit length field")
	}
	binary.LittleEndian.PutUint32(buf[off:], uint32(n))
	return off + lenSize
}
