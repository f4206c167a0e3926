// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/expr"
)

func TestNewPEqSameSort(t *testing.T) {
	require := require.New(t)
	a := expr.Lit{Val: common.NewW256(1)}
	b := expr.Lit{Val: common.NewW256(1)}
	p := NewPEq(a, b)
	_, ok := p.(PEq)
	require.True(ok)
}

func TestNewPEqDifferentSortReducesToFalse(t *testing.T) {
	require := require.New(t)
	word := expr.Lit{Val: common.NewW256(1)}
	addr := expr.LitAddr{Addr: common.ZeroAddr}
	p := NewPEq(word, addr)
	b, ok := p.(PBool)
	require.True(ok)
	require.False(b.Val)
}

func TestPandEmptyIsTrue(t *testing.T) {
	require := require.New(t)
	p := Pand(nil)
	b, ok := p.(PBool)
	require.True(ok)
	require.True(b.Val)
}

func TestPorEmptyIsFalse(t *testing.T) {
	require := require.New(t)
	p := Por(nil)
	b, ok := p.(PBool)
	require.True(ok)
	require.False(b.Val)
}

func TestPandFoldsLeftToRight(t *testing.T) {
	require := require.New(t)
	x := PBool{true}
	y := PBool{false}
	p := Pand([]Prop{x, y})
	require.Equal("PAnd(PAnd(PBool(true),PBool(true)),PBool(false))", p.ConstraintString())
}

func TestRelWordConstructors(t *testing.T) {
	require := require.New(t)
	a := expr.Lit{Val: common.NewW256(1)}
	b := expr.Lit{Val: common.NewW256(2)}
	require.Contains(PLT(a, b).ConstraintString(), "PLT(")
	require.Contains(PGT(a, b).ConstraintString(), "PGT(")
	require.Contains(PLEq(a, b).ConstraintString(), "PLEq(")
	require.Contains(PGEq(a, b).ConstraintString(), "PGEq(")
}

func TestNeqIsNegatedEquality(t *testing.T) {
	require := require.New(t)
	a := expr.Lit{Val: common.NewW256(1)}
	b := expr.Lit{Val: common.NewW256(2)}
	p := Neq(a, b)
	neg, ok := p.(PNeg)
	require.True(ok)
	_, ok = neg.X.(PEq)
	require.True(ok)
}

func TestPropSatisfiesExprConstraint(t *testing.T) {
	require := require.New(t)
	var c expr.Constraint = PBool{true}
	require.Equal("PBool(true)", c.ConstraintString())
}
