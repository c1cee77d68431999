package value

import "bytes"

// Kind discriminates the variants of a Value. The numeric values are part
// of the binary format: each encoded Value starts with its Kind as a single
// discriminator byte.
type Kind uint8

const (
	KindInt    Kind = 0x00 // 64-bit signed integer
	KindBytes  Kind = 0x01 // raw byte string
	KindString Kind = 0x02 // UTF-8 text
	KindSeq    Kind = 0x03 // ordered sequence of Values
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k <= KindSeq
}

// Value is a discriminated union over the four supported kinds. It is a
// plain struct rather than an interface so that scalar values decode
// without any heap allocation and sequences stay contiguous in memory.
// Only the field matching Kind is meaningful; the others hold zero values.
type Value struct {
	Kind  Kind
	Int   int64
	Data  []byte
	Str   string
	Items []Value
}

// Int constructs an integer Value.
func Int(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// Bytes constructs a byte-string Value. The slice is referenced, not copied.
func Bytes(b []byte) Value {
	return Value{Kind: KindBytes, Data: b}
}

// String constructs a text Value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Seq constructs a sequence Value from the given items.
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindSeq, Items: items}
}

// Equal reports deep structural equality. A nil and an empty byte string
// compare equal, as do nil and empty sequences.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindBytes:
		return bytes.Equal(v.Data, o.Data)
	case KindString:
		return v.Str == o.Str
	case KindSeq:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
