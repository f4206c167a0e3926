// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fuzzutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenIsDeterministicForSameSeed(t *testing.T) {
	require := require.New(t)
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		require.True(a.W256().Eq(b.W256()))
	}
}

func TestGenAddrIsRightWidth(t *testing.T) {
	require := require.New(t)
	g := New(1)
	addr := g.Addr()
	require.Len(addr[:], 20)
}

func TestGenIntRangeStaysInBounds(t *testing.T) {
	require := require.New(t)
	g := New(2)
	for i := 0; i < 50; i++ {
		v := g.IntRange(3, 9)
		require.GreaterOrEqual(v, 3)
		require.Less(v, 9)
	}
}
