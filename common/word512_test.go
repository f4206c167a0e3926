// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMul512Mod512MatchesAddModMulMod(t *testing.T) {
	require := require.New(t)
	a, b, m := NewW256(1_000_000_007), NewW256(999_999_937), NewW256(97)

	want := MulMod(a, b, m)
	got := Mod512(Mul512(a, b), m)
	require.True(want.Eq(got))
}

func TestMod512ByZeroIsZero(t *testing.T) {
	require := require.New(t)
	got := Mod512(Mul512(NewW256(5), NewW256(5)), ZeroW256)
	require.True(got.IsZero())
}

func TestAdd512CarriesAcrossHalf(t *testing.T) {
	require := require.New(t)
	maxLo := Not(ZeroW256)
	sum := Add512(Word512{Hi: ZeroW256, Lo: maxLo}, Word512{Hi: ZeroW256, Lo: OneW256})
	require.True(sum.Hi.Eq(OneW256))
	require.True(sum.Lo.IsZero())
}
