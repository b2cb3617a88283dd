// Package centering re-embeds a periodic component so that it sits inside a
// single unit cell as far as its connectivity allows ("elastic" centering).
//
// What
//
//   - Center(g) works on a clone of g and never mutates the input.
//   - A BFS tree is grown from the root (the first node unless WithRoot is
//     given). Level by level, each tree child that is not already joined to
//     its parent by a zero-translation edge is moved by the opposite of the
//     first non-zero parent→child translation, with core.Graph.TranslateNode.
//   - Afterwards the zero-translation edges alone must connect every node;
//     otherwise ErrCenteringImpossible is returned.
//
// Centering an already centered graph changes nothing.
//
// Errors
//
//	ErrGraphNil, ErrEmptyGraph, ErrRootNotFound, ErrMultipleZeroDeltas,
//	ErrCenteringImpossible, core.ErrInconsistentEdge.
package centering
