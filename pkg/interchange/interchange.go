// Package interchange maps binary-format values to and from human-editable
// document forms. The JSON form is what write_in reads and read_out emits:
//
//	{"int": 42}
//	{"bytes": "yv4="}            // base64
//	{"str": "hello"}
//	{"seq": [{"int": 1}, {"seq": []}]}
//
// Exactly one field must be set per document node. The CBOR form is the
// same structure in CBOR, for harnesses that want a binary interchange.
package interchange

import (
	"errors"
	"fmt"

	"github.com/norvik/valbin/pkg/value"
)

// ErrAmbiguousNode indicates a document node that sets zero or more than
// one of the int/bytes/str/seq fields.
var ErrAmbiguousNode = errors.New("interchange: node must set exactly one of int, bytes, str, seq")

// node is the document form of a single value. Pointer fields distinguish
// "absent" from zero values, so empty strings and empty sequences survive
// the round trip.
type node struct {
	Int   *int64  `json:"int,omitempty"`
	Bytes *[]byte `json:"bytes,omitempty"`
	Str   *string `json:"str,omitempty"`
	Seq   *[]node `json:"seq,omitempty"`
}

func toNode(v value.Value) (node, error) {
	switch v.Kind {
	case value.KindInt:
		n := v.Int
		return node{Int: &n}, nil
	case value.KindBytes:
		b := v.Data
		if b == nil {
			b = []byte{}
		}
		return node{Bytes: &b}, nil
	case value.KindString:
		s := v.Str
		return node{Str: &s}, nil
	case value.KindSeq:
		items := make([]node, len(v.Items))
		for i := range v.Items {
			item, err := toNode(v.Items[i])
			if err != nil {
				return node{}, err
			}
			items[i] = item
		}
		return node{Seq: &items}, nil
	default:
		return node{}, fmt.Errorf("interchange: invalid value kind 0x%02X", byte(v.Kind))
	}
}

func fromNode(n node) (value.Value, error) {
	set := 0
	if n.Int != nil {
		set++
	}
	if n.Bytes != nil {
		set++
	}
	if n.Str != nil {
		set++
	}
	if n.Seq != nil {
		set++
	}
	if set != 1 {
		return value.Value{}, ErrAmbiguousNode
	}

	switch {
	case n.Int != nil:
		return value.Int(*n.Int), nil
	case n.Bytes != nil:
		return value.Bytes(*n.Bytes), nil
	case n.Str != nil:
		return value.String(*n.Str), nil
	default:
		items := make([]value.Value, len(*n.Seq))
		for i, child := range *n.Seq {
			item, err := fromNode(child)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = item
		}
		return value.Seq(items...), nil
	}
}
