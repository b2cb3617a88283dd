package vec3

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndependent_DropsZeroAndDependent(t *testing.T) {
	in := []Vec3{
		Zero,
		New(1, 0, 0),
		New(-2, 0, 0), // parallel
		New(1, 1, 0),
		New(3, 1, 0), // in plane
		New(0, 0, 0),
		New(5, 5, 5),
		New(0, 0, 1), // rank already 3
	}

	got := Independent(in)
	assert.Equal(t, []Vec3{New(1, 0, 0), New(1, 1, 0), New(5, 5, 5)}, got)
}

func TestIndependent_AllZero(t *testing.T) {
	assert.Empty(t, Independent([]Vec3{Zero, Zero}))
	assert.Empty(t, Independent(nil))
}

func TestReducer_Incremental(t *testing.T) {
	var r Reducer
	require.False(t, r.Add(New(0, 2, 0)))
	require.False(t, r.Add(New(0, -1, 0), New(0, 0, 0)))
	assert.Equal(t, 1, r.Len())

	require.False(t, r.Add(New(1, 1, 0)))
	require.True(t, r.Add(New(2, 2, 0), New(0, 0, -1)))
	assert.True(t, r.Full())

	// ignored once full
	r.Add(New(7, 7, 7))
	assert.Equal(t, []Vec3{New(0, 2, 0), New(1, 1, 0), New(0, 0, -1)}, r.Vectors())

	r.Reset()
	assert.Equal(t, 0, r.Len())
}

func TestReducer_VectorsIsCopy(t *testing.T) {
	var r Reducer
	r.Add(New(1, 0, 0))
	vs := r.Vectors()
	vs[0] = Zero
	assert.Equal(t, New(1, 0, 0), r.Vectors()[0])
}

// triples groups a flat slice of coordinates into vectors.
func triples(cs []int) []Vec3 {
	out := make([]Vec3, 0, len(cs)/3)
	for i := 0; i+2 < len(cs); i += 3 {
		out = append(out, New(cs[i], cs[i+1], cs[i+2]))
	}
	return out
}

func TestReducerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("never more than three vectors", prop.ForAll(
		func(cs []int) bool {
			return len(Independent(triples(cs))) <= MaxRank
		},
		gen.SliceOf(gen.IntRange(-3, 3)),
	))

	properties.Property("kept vectors are pairwise independent and non-zero", prop.ForAll(
		func(cs []int) bool {
			kept := Independent(triples(cs))
			for i, v := range kept {
				if v.IsZero() {
					return false
				}
				for _, w := range kept[i+1:] {
					if Parallel(v, w) {
						return false
					}
				}
			}
			if len(kept) == 3 && Det(kept[0], kept[1], kept[2]) == 0 {
				return false
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-3, 3)),
	))

	properties.Property("every input lies in the span of the kept set", prop.ForAll(
		func(cs []int) bool {
			in := triples(cs)
			kept := Independent(in)
			for _, v := range in {
				var r Reducer
				r.Add(kept...)
				if r.Add(v); r.Len() != len(kept) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-3, 3)),
	))

	properties.Property("zero input reduces to nothing", prop.ForAll(
		func(n int) bool {
			return len(Independent(make([]Vec3, n))) == 0
		},
		gen.IntRange(0, 16),
	))

	properties.TestingRun(t)
}
