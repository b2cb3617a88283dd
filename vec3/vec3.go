// File: vec3.go
// Role: Vec3 value type and its exact integer arithmetic.
// Determinism: pure functions, no allocation beyond the returned values.
// Concurrency: Vec3 is a value; safe to share.

package vec3

import (
	"strconv"
	"strings"
)

// Vec3 is an integer 3-vector, typically a lattice translation.
type Vec3 [3]int

// Zero is the null translation.
var Zero = Vec3{}

// New returns the vector (x, y, z).
func New(x, y, z int) Vec3 { return Vec3{x, y, z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Scale returns k·v.
func (v Vec3) Scale(k int) Vec3 { return Vec3{k * v[0], k * v[1], k * v[2]} }

// IsZero reports whether v is the null vector.
func (v Vec3) IsZero() bool { return v == Zero }

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) int { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns the vector product v×w. It is zero iff v and w are parallel
// (or one of them is zero).
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Det returns the determinant of the 3×3 matrix with rows a, b, c,
// i.e. the triple product a·(b×c).
func Det(a, b, c Vec3) int { return a.Dot(b.Cross(c)) }

// Parallel reports whether v and w are linearly dependent.
func Parallel(v, w Vec3) bool { return v.Cross(w).IsZero() }

// String renders v as "(x, y, z)".
func (v Vec3) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(')')

	return sb.String()
}
