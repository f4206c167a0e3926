// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import (
	"github.com/luxfi/symevm/core/effect"
	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
)

// Schedule holds the constant costs a Concrete gas meter charges. A single
// fixed schedule stands in for the fork-indexed fee tables a full client
// would carry; callers needing fork-specific pricing supply their own
// Schedule value.
type Schedule struct {
	Sha3Word      uint64
	MemoryWord    uint64
	MemoryWordSq  uint64 // divisor for the quadratic memory term
	ExpByte       uint64
	CreateBase    uint64
	CreateByte    uint64
	CallBase      uint64
	CallNewAcct   uint64
	CallValue     uint64
}

// DefaultSchedule mirrors the costs in effect since the Shanghai fork.
var DefaultSchedule = Schedule{
	Sha3Word:     6,
	MemoryWord:   3,
	MemoryWordSq: 512,
	ExpByte:      50,
	CreateBase:   32000,
	CreateByte:   200,
	CallBase:     2600,
	CallNewAcct:  25000,
	CallValue:    9000,
}

// Concrete meters a single u64 gas budget, erroring on underflow exactly as
// a real EVM would.
type Concrete struct {
	Remaining uint64
	Sched     Schedule
}

// NewConcrete starts a meter with g units and the default schedule.
func NewConcrete(g uint64) *Concrete {
	return &Concrete{Remaining: g, Sched: DefaultSchedule}
}

func (c *Concrete) Burn(g uint64) evmerrors.EvmError {
	if g > c.Remaining {
		have := c.Remaining
		c.Remaining = 0
		return evmerrors.OutOfGas{Have: have, Need: g}
	}
	c.Remaining -= g
	return nil
}

func (c *Concrete) BurnExp(w expr.Word) evmerrors.EvmError {
	n, ok := byteLen(w)
	if !ok {
		return evmerrors.IllegalOverflow{}
	}
	return c.Burn(uint64(n) * c.Sched.ExpByte)
}

func (c *Concrete) BurnMemExp(newSize uint64) evmerrors.EvmError {
	words := (newSize + 31) / 32
	cost := words*c.Sched.MemoryWord + (words*words)/c.Sched.MemoryWordSq
	return c.Burn(cost)
}

func (c *Concrete) BurnSHA3(n uint64) evmerrors.EvmError {
	words := (n + 31) / 32
	return c.Burn(words * c.Sched.Sha3Word)
}

func (c *Concrete) InitialGas(txGasLimit uint64) uint64 {
	c.Remaining = txGasLimit
	return txGasLimit
}

func (c *Concrete) EnsureGas(g uint64, k func() effect.VMResult) effect.VMResult {
	if g > c.Remaining {
		return effect.VMFailure{Err: evmerrors.OutOfGas{Have: c.Remaining, Need: g}}
	}
	return k()
}

func (c *Concrete) GasTryFrom(w expr.Word) (uint64, bool) {
	lit, ok := w.(expr.Lit)
	if !ok || !lit.Val.IsUint64() {
		return 0, false
	}
	return lit.Val.Uint64(), true
}

func (c *Concrete) CostOfCreate(initCodeLen uint64) uint64 {
	words := (initCodeLen + 31) / 32
	return c.Sched.CreateBase + words*c.Sched.CreateByte
}

func (c *Concrete) CostOfCall(targetExists, transfersValue bool) uint64 {
	cost := c.Sched.CallBase
	if !targetExists {
		cost += c.Sched.CallNewAcct
	}
	if transfersValue {
		cost += c.Sched.CallValue
	}
	return cost
}

func (c *Concrete) Branch(cond expr.Word, k func(bool) effect.VMResult) effect.VMResult {
	lit, ok := cond.(expr.Lit)
	if !ok {
		return effect.VMFailure{Err: evmerrors.IllegalOverflow{}}
	}
	return k(!lit.Val.IsZero())
}
