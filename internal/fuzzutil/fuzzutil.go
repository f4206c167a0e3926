// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fuzzutil holds small, deterministic generators shared by
// property-style _test.go files across packages, in the spirit of
// testing/quick but seeded for reproducibility rather than drawing from
// crypto/rand. A property test seeds a Gen and checks its property over a
// fixed number of draws in a plain loop.
package fuzzutil

import (
	"math/rand"

	"github.com/luxfi/symevm/common"
)

// Gen wraps a seeded math/rand source so every property test in the module
// draws from the same reproducible stream.
type Gen struct {
	r *rand.Rand
}

// New returns a Gen seeded deterministically from seed.
func New(seed int64) *Gen {
	return &Gen{r: rand.New(rand.NewSource(seed))}
}

// W256 returns a pseudo-random 256-bit value, occasionally a small
// boundary value to bias coverage toward edge cases (0 and 1).
func (g *Gen) W256() common.W256 {
	switch g.r.Intn(10) {
	case 0:
		return common.NewW256(0)
	case 1:
		return common.NewW256(1)
	default:
		var b [32]byte
		g.r.Read(b[:])
		return common.Word256(b[:])
	}
}

// Addr returns a pseudo-random 160-bit address.
func (g *Gen) Addr() common.Addr {
	var b [common.AddrLength]byte
	g.r.Read(b[:])
	return common.AddrFromBytes(b[:])
}

// Bytes returns n pseudo-random bytes.
func (g *Gen) Bytes(n int) []byte {
	b := make([]byte, n)
	g.r.Read(b)
	return b
}

// IntRange returns a pseudo-random int in [lo, hi).
func (g *Gen) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}

// Bool returns a pseudo-random bool.
func (g *Gen) Bool() bool { return g.r.Intn(2) == 1 }
