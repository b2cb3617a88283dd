// Package vec3 provides exact integer 3-vectors and the reduction of a vector
// stream to a maximal linearly independent subset.
//
// What
//
//   - Vec3 is a comparable value type ([3]int) usable as a map key.
//   - Cross, Dot and Det are computed in integer arithmetic; no tolerance is
//     involved anywhere, so rank decisions are exact.
//   - Independent and Reducer keep at most MaxRank vectors, discarding zero
//     vectors and anything already in the span of the kept ones.
//
// Determinism
//
//	Reduction is greedy in input order: the first vector that raises the rank
//	is the one that is kept. Feeding the same sequence always yields the same
//	representatives.
//
// Complexity
//
//   - Reducer.Add: O(1) per candidate (at most one cross product or determinant).
//
// Usage
//
//	var r vec3.Reducer
//	r.Add(vec3.New(1, 0, 0), vec3.New(2, 0, 0), vec3.New(0, 1, 0))
//	fmt.Println(r.Len()) // 2
package vec3
