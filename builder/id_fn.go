// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// id_fn.go - node ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based global index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// SiteIDFn returns an IDFn producing "<prefix><idx>", e.g. "Fe0", "Fe1".
func SiteIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
