// Package corpus builds and persists deterministic benchmark inputs for
// the encode/decode hot paths. A fixed seed always yields the same value
// trees and therefore the same encoded bytes, which keeps cache-simulation
// profiles repeatable across runs.
package corpus

import (
	"fmt"
	"math/rand"

	"github.com/norvik/valbin/pkg/value"
)

// Class selects the rough size and shape of generated values, mirroring
// the small/medium/large inputs the codec benchmarks use.
type Class string

const (
	ClassSmall  Class = "small"  // a few scalar fields
	ClassMedium Class = "medium" // ~1 KiB payloads, shallow nesting
	ClassLarge  Class = "large"  // ~10 KiB payloads, deeper nesting
)

// ParseClass validates a class name from a CLI flag.
func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassSmall, ClassMedium, ClassLarge:
		return Class(s), nil
	default:
		return "", fmt.Errorf("unknown corpus class %q (want small, medium or large)", s)
	}
}

// Generator produces pseudo-random value trees from a fixed seed. Not safe
// for concurrent use; give each goroutine its own Generator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. The same seed and call sequence always
// produce the same values.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Value generates one value of the given class.
func (g *Generator) Value(class Class) value.Value {
	switch class {
	case ClassMedium:
		return g.seq(4, 8, 1024, 2)
	case ClassLarge:
		return g.seq(8, 16, 10240, 3)
	default:
		return g.seq(2, 4, 16, 1)
	}
}

// Batch generates n values of the given class.
func (g *Generator) Batch(class Class, n int) []value.Value {
	values := make([]value.Value, n)
	for i := range values {
		values[i] = g.Value(class)
	}
	return values
}

// seq generates a sequence of minItems..maxItems elements. depth controls
// how many more levels of nesting may appear below this one.
func (g *Generator) seq(minItems, maxItems, maxPayload, depth int) value.Value {
	n := minItems + g.rng.Intn(maxItems-minItems+1)
	items := make([]value.Value, n)
	for i := range items {
		if depth > 0 && g.rng.Intn(4) == 0 {
			items[i] = g.seq(minItems, maxItems, maxPayload/2, depth-1)
		} else {
			items[i] = g.scalar(maxPayload)
		}
	}
	return value.Seq(items...)
}

func (g *Generator) scalar(maxPayload int) value.Value {
	switch g.rng.Intn(3) {
	case 0:
		return value.Int(g.rng.Int63() - g.rng.Int63())
	case 1:
		return value.Bytes(g.payload(maxPayload))
	default:
		return value.String(string(g.payload(maxPayload)))
	}
}

// payload produces 1..max bytes of printable content. Printable keeps the
// string variants valid UTF-8 and the JSON document form readable.
func (g *Generator) payload(max int) []byte {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	n := 1 + g.rng.Intn(max)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return b
}
