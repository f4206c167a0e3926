// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gas declares the cost-accounting operations the interpreter calls
// through, without committing to how gas is charged. Two realizations
// (Concrete, Symbolic) implement VMOps identically in shape but differently
// in behavior, so the interpreter's source is flavor-agnostic: concrete
// execution actually burns gas and can run out of it, symbolic execution
// tracks nothing and always succeeds.
package gas

import (
	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/effect"
	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
)

// VMOps is the cost contract the interpreter calls through for every
// gas-relevant operation.
type VMOps interface {
	// Burn deducts g from the remaining budget. Concrete: errors on
	// underflow. Symbolic: a no-op.
	Burn(g uint64) evmerrors.EvmError

	// BurnExp charges the EXP opcode's cost, which depends on the exponent's
	// byte length.
	BurnExp(w expr.Word) evmerrors.EvmError

	// BurnMemExp charges the memory-expansion cost to grow to newSize bytes.
	BurnMemExp(newSize uint64) evmerrors.EvmError

	// BurnSHA3 charges the per-word cost of hashing an n-byte buffer.
	BurnSHA3(n uint64) evmerrors.EvmError

	// InitialGas returns the gas budget a fresh top-level call starts with.
	InitialGas(txGasLimit uint64) uint64

	// EnsureGas checks that at least g remains, then invokes k. Concrete:
	// fails closed with OutOfGas. Symbolic: always invokes k.
	EnsureGas(g uint64, k func() effect.VMResult) effect.VMResult

	// GasTryFrom narrows an EWord to a gas amount. Concrete: the word must
	// be a concrete Lit that fits in 64 bits. Symbolic: always succeeds with
	// an unspecified placeholder, since gas is untracked.
	GasTryFrom(w expr.Word) (uint64, bool)

	// CostOfCreate returns the gas cost of a CREATE/CREATE2 with the given
	// init code length.
	CostOfCreate(initCodeLen uint64) uint64

	// CostOfCall returns the gas cost of a CALL-family instruction, given
	// whether the target account already exists and whether value is
	// transferred.
	CostOfCall(targetExists, transfersValue bool) uint64

	// Branch evaluates cond and invokes k with the resolved boolean.
	// Concrete: cond must already be a concrete Lit. Symbolic: a concrete Lit
	// is resolved directly; any other cond returns a PleaseAskSMT suspension
	// without invoking k. Branch does not record the answered branch as a
	// path constraint, does not resume k, and never emits PleaseChoosePath.
	Branch(cond expr.Word, k func(bool) effect.VMResult) effect.VMResult
}

// byteLen returns the number of bytes needed to represent w with no leading
// zero byte, matching the EXP opcode's "byte length of the exponent" cost
// basis. Zero has byte length zero.
func byteLen(w expr.Word) (int, bool) {
	lit, ok := w.(expr.Lit)
	if !ok {
		return 0, false
	}
	if lit.Val.IsZero() {
		return 0, true
	}
	n := 0
	for i := 0; i < 32; i++ {
		if common.ByteAt(i, lit.Val) != 0 {
			n = 32 - i
			break
		}
	}
	return n, true
}
