// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/effect"
	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
)

func TestConcreteBurnUnderflow(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(10)
	require.Nil(c.Burn(5))
	require.Equal(uint64(5), c.Remaining)

	err := c.Burn(100)
	require.NotNil(err)
	_, ok := err.(evmerrors.OutOfGas)
	require.True(ok)
	require.Equal(uint64(0), c.Remaining)
}

func TestConcreteBurnExpByteLength(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(1000)
	err := c.BurnExp(expr.Lit{Val: common.NewW256(256)}) // needs 2 bytes
	require.Nil(err)
	require.Equal(uint64(1000-2*c.Sched.ExpByte), c.Remaining)
}

func TestConcreteBurnExpZero(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(1000)
	err := c.BurnExp(expr.Lit{Val: common.ZeroW256})
	require.Nil(err)
	require.Equal(uint64(1000), c.Remaining)
}

func TestConcreteGasTryFrom(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(1000)
	g, ok := c.GasTryFrom(expr.Lit{Val: common.NewW256(42)})
	require.True(ok)
	require.Equal(uint64(42), g)

	_, ok = c.GasTryFrom(expr.Var{Name: "x"})
	require.False(ok)
}

func TestConcreteEnsureGas(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(10)

	called := false
	res := c.EnsureGas(5, func() effect.VMResult {
		called = true
		return effect.VMSuccess{}
	})
	require.True(called)
	_, ok := res.(effect.VMSuccess)
	require.True(ok)

	res2 := c.EnsureGas(1000, func() effect.VMResult {
		t.Fatal("must not be called when gas is insufficient")
		return nil
	})
	_, ok = res2.(effect.VMFailure)
	require.True(ok)
}

func TestConcreteBranchRequiresConcreteCond(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(1000)

	res := c.Branch(expr.Lit{Val: common.OneW256}, func(b bool) effect.VMResult {
		require.True(b)
		return effect.VMSuccess{}
	})
	_, ok := res.(effect.VMSuccess)
	require.True(ok)

	res2 := c.Branch(expr.Var{Name: "cond"}, func(bool) effect.VMResult {
		t.Fatal("symbolic condition must not resolve concretely")
		return nil
	})
	_, ok = res2.(effect.VMFailure)
	require.True(ok)
}

func TestSymbolicNeverBurns(t *testing.T) {
	require := require.New(t)
	s := &Symbolic{}
	require.Nil(s.Burn(1 << 40))
	require.Nil(s.BurnExp(expr.Var{Name: "e"}))
	require.Nil(s.BurnMemExp(1 << 40))
	require.Nil(s.BurnSHA3(1 << 40))
}

func TestSymbolicBranchSuspendsOnUnknownCond(t *testing.T) {
	require := require.New(t)
	s := &Symbolic{}
	res := s.Branch(expr.Var{Name: "x"}, func(bool) effect.VMResult { return nil })
	he, ok := res.(effect.HandleEffect)
	require.True(ok)
	_, ok = he.Eff.(effect.PleaseAskSMT)
	require.True(ok)
}

func TestSymbolicBranchResolvesConcreteCond(t *testing.T) {
	require := require.New(t)
	s := &Symbolic{}
	res := s.Branch(expr.Lit{Val: common.ZeroW256}, func(b bool) effect.VMResult {
		require.False(b)
		return effect.VMSuccess{}
	})
	_, ok := res.(effect.VMSuccess)
	require.True(ok)
}

func TestCostOfCreateAndCall(t *testing.T) {
	require := require.New(t)
	c := NewConcrete(1_000_000)
	require.True(c.CostOfCreate(64) > c.Sched.CreateBase)
	require.Equal(c.Sched.CallBase+c.Sched.CallNewAcct+c.Sched.CallValue, c.CostOfCall(false, true))
	require.Equal(c.Sched.CallBase, c.CostOfCall(true, false))
}
