package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norvik/valbin/pkg/codec"
	"github.com/norvik/valbin/pkg/value"
)

func TestGenerator_Deterministic(t *testing.T) {
	for _, class := range []Class{ClassSmall, ClassMedium, ClassLarge} {
		t.Run(string(class), func(t *testing.T) {
			a := NewGenerator(42).Batch(class, 10)
			b := NewGenerator(42).Batch(class, 10)

			require.Len(t, b, len(a))
			for i := range a {
				assert.True(t, a[i].Equal(b[i]), "value %d differs between identical seeds", i)
			}
		})
	}
}

func TestGenerator_SeedsDiffer(t *testing.T) {
	a := NewGenerator(1).Value(ClassMedium)
	b := NewGenerator(2).Value(ClassMedium)
	assert.False(t, a.Equal(b), "different seeds produced identical values")
}

func TestGenerator_ValuesAreEncodable(t *testing.T) {
	enc := codec.NewEncoder(codec.DefaultConfig())
	dec := codec.NewDecoder(codec.DefaultConfig())
	g := NewGenerator(7)

	for _, class := range []Class{ClassSmall, ClassMedium, ClassLarge} {
		for _, v := range g.Batch(class, 20) {
			require.Equal(t, value.KindSeq, v.Kind)

			decoded, err := dec.Decode(enc.Encode(v))
			require.NoError(t, err)
			assert.True(t, decoded.Equal(v))
		}
	}
}

func TestGenerator_ClassSizes(t *testing.T) {
	g := NewGenerator(3)

	avg := func(class Class) int {
		total := 0
		for _, v := range g.Batch(class, 20) {
			total += codec.EncodedSize(v)
		}
		return total / 20
	}

	small, medium, large := avg(ClassSmall), avg(ClassMedium), avg(ClassLarge)
	assert.Less(t, small, medium, "small (%d) should encode smaller than medium (%d)", small, medium)
	assert.Less(t, medium, large, "medium (%d) should encode smaller than large (%d)", medium, large)
}

func TestParseClass(t *testing.T) {
	for _, s := range []string{"small", "medium", "large"} {
		c, err := ParseClass(s)
		require.NoError(t, err)
		assert.Equal(t, Class(s), c)
	}

	_, err := ParseClass("jumbo")
	assert.Error(t, err)
}
