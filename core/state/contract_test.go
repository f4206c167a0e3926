// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/bytecode"
	"github.com/luxfi/symevm/core/expr"
)

func TestContractToExprCConcreteRuntime(t *testing.T) {
	require := require.New(t)
	c := Contract{
		Code:             bytecode.Runtime{Code: bytecode.ConcreteRuntime{Bytes: []byte{0x60, 0x01}}},
		Storage:          expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		TransientStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:          expr.Lit{Val: common.NewW256(10)},
		Nonce:            expr.Lit{Val: common.NewW256(1)},
		CodeHash:         common.NewW256(0),
	}
	view := c.ToExprC()
	buf, ok := expr.MaybeConcreteBuf(view.Code)
	require.True(ok)
	require.Equal([]byte{0x60, 0x01}, buf)
	require.Equal(expr.Lit{Val: common.NewW256(10)}, view.Balance)
}

func TestContractToExprCSymbolicRuntime(t *testing.T) {
	require := require.New(t)
	c := Contract{
		Code:             bytecode.Runtime{Code: bytecode.SymbolicRuntime{Bytes: []expr.ByteTerm{expr.LitByte{Val: 1}, expr.LitByte{Val: 2}}}},
		Storage:          expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		TransientStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:          expr.Lit{Val: common.NewW256(0)},
		Nonce:            expr.Lit{Val: common.NewW256(0)},
	}
	view := c.ToExprC()
	_, ok := expr.MaybeConcreteBuf(view.Code)
	require.False(ok, "symbolic runtime code must not collapse to a concrete buffer")
}

func TestContractToExprCInitCode(t *testing.T) {
	require := require.New(t)
	c := Contract{
		Code:             bytecode.Init{Bytes: []byte{0x60, 0x00}, DataSection: expr.AbstractBuf{Name: "ctor-args"}},
		Storage:          expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		TransientStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:          expr.Lit{Val: common.NewW256(0)},
		Nonce:            expr.Lit{Val: common.NewW256(0)},
	}
	view := c.ToExprC()
	buf, ok := expr.MaybeConcreteBuf(view.Code)
	require.True(ok)
	require.Equal([]byte{0x60, 0x00}, buf)
}

func TestContractToExprCUnknownCode(t *testing.T) {
	require := require.New(t)
	c := Contract{
		Code:             bytecode.Unknown{Addr: expr.LitAddr{Addr: common.ZeroAddr}},
		Storage:          expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		TransientStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:          expr.Lit{Val: common.NewW256(0)},
		Nonce:            expr.Lit{Val: common.NewW256(0)},
	}
	view := c.ToExprC()
	require.Equal("AbstractBuf(\"unknown-code\")", view.Code.String())
}
