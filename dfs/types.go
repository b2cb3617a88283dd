// File: types.go
// Role: sentinel errors and options shared by simple-path and cycle enumeration.

package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNodeNotFound indicates that a source or target node does not exist.
	ErrNodeNotFound = errors.New("dfs: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// SkipAll is returned by a path visitor to stop enumeration early.
	// It is never returned by the enumerators themselves.
	SkipAll = errors.New("dfs: skip remaining paths")
)

// Option configures path and cycle enumeration.
type Option func(*Options)

// Options holds the enumeration knobs.
type Options struct {
	// Ctx allows cancellation of long enumerations; checked once per expansion.
	Ctx context.Context

	// Cutoff bounds the number of edges of an enumerated path. Zero means the
	// conventional default of NodeCount-1.
	Cutoff int

	err error
}

// DefaultOptions returns background context and the default cutoff.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCutoff limits paths to at most n edges; n must be positive.
func WithCutoff(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: cutoff must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Cutoff = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
