// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadParameter indicates a negative count or bound.
var ErrBadParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates that a stochastic constructor has no RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete a topology.
var ErrConstructFailed = errors.New("builder: construction failed")
