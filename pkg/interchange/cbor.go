package interchange

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/norvik/valbin/pkg/value"
)

// Deterministic CBOR (RFC 8949 core) so identical values always produce
// identical documents, keeping profiling inputs byte-stable.
var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		panic(err)
	}
	cborEnc = em
	cborDec = dm
}

// ToCBOR renders v as a CBOR value document.
func ToCBOR(v value.Value) ([]byte, error) {
	n, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(n)
}

// FromCBOR parses a CBOR value document.
func FromCBOR(data []byte) (value.Value, error) {
	var n node
	if err := cborDec.Unmarshal(data, &n); err != nil {
		return value.Value{}, fmt.Errorf("interchange: parse cbor document: %w", err)
	}
	return fromNode(n)
}
