// File: reduce.go
// Role: greedy reduction of integer vectors to a maximal independent subset.
// Determinism: first-come wins; the kept vectors keep their input order.
// Concurrency: Reducer is not safe for concurrent use.

package vec3

// MaxRank is the largest number of independent vectors in three dimensions.
const MaxRank = 3

// Independent returns a maximal linearly independent subset of vs, scanning
// vs in order and keeping each vector that raises the rank of the kept set.
// Zero vectors and duplicates are discarded. The scan stops at MaxRank.
func Independent(vs []Vec3) []Vec3 {
	var r Reducer
	r.Add(vs...)

	return r.Vectors()
}

// Reducer accumulates candidate vectors and retains at most MaxRank
// linearly independent ones. The zero value is ready to use.
type Reducer struct {
	basis []Vec3
}

// Add feeds candidates to the reducer in order and reports whether the
// reducer is full. Candidates arriving after it is full are ignored.
func (r *Reducer) Add(vs ...Vec3) bool {
	for _, v := range vs {
		if r.Full() {
			return true
		}
		if r.raisesRank(v) {
			r.basis = append(r.basis, v)
		}
	}

	return r.Full()
}

// raisesRank reports whether v is outside the span of the current basis.
func (r *Reducer) raisesRank(v Vec3) bool {
	switch len(r.basis) {
	case 0:
		return !v.IsZero()
	case 1:
		return !Parallel(r.basis[0], v)
	case 2:
		return Det(r.basis[0], r.basis[1], v) != 0
	default:
		return false
	}
}

// Vectors returns a copy of the retained vectors in insertion order.
func (r *Reducer) Vectors() []Vec3 {
	out := make([]Vec3, len(r.basis))
	copy(out, r.basis)

	return out
}

// Len returns the number of retained vectors (the rank so far).
func (r *Reducer) Len() int { return len(r.basis) }

// Full reports whether MaxRank independent vectors have been found.
func (r *Reducer) Full() bool { return len(r.basis) >= MaxRank }

// Reset empties the reducer.
func (r *Reducer) Reset() { r.basis = r.basis[:0] }
