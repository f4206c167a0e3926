// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evmerrors collects the EVM-level failure values a frame can
// terminate with. Every variant is a plain Go error value, never a panic;
// internal invariant breaks are the one exception (see InternalError).
package evmerrors

import (
	"fmt"

	"github.com/luxfi/symevm/common"
)

// EvmError is any error a frame can fail with, surfaced as VMFailure.
type EvmError interface {
	error
	isEvmError()
}

// BalanceTooLow reports an attempted transfer exceeding the sender's balance.
type BalanceTooLow struct{ Have, Need common.W256 }

func (BalanceTooLow) isEvmError() {}
func (e BalanceTooLow) Error() string {
	return fmt.Sprintf("balance too low: have %s need %s", e.Have.Hex(), e.Need.Hex())
}

// UnrecognizedOpcode reports an opcode byte with no decoding.
type UnrecognizedOpcode struct{ Op byte }

func (UnrecognizedOpcode) isEvmError() {}
func (e UnrecognizedOpcode) Error() string {
	return fmt.Sprintf("unrecognized opcode: 0x%02x", e.Op)
}

// SelfDestruction is returned when a frame ends via SELFDESTRUCT.
type SelfDestruction struct{}

func (SelfDestruction) isEvmError()    {}
func (SelfDestruction) Error() string { return "self destruction" }

// StackUnderrun reports an operation with fewer stack items than required.
type StackUnderrun struct{}

func (StackUnderrun) isEvmError()    {}
func (StackUnderrun) Error() string { return "stack underrun" }

// BadJumpDestination reports a JUMP/JUMPI target that is not a valid JUMPDEST.
type BadJumpDestination struct{}

func (BadJumpDestination) isEvmError()    {}
func (BadJumpDestination) Error() string { return "bad jump destination" }

// Revert carries the returndata of an explicit REVERT.
type Revert struct{ Data []byte }

func (Revert) isEvmError() {}
func (e Revert) Error() string {
	return fmt.Sprintf("execution reverted: %d bytes", len(e.Data))
}

// OutOfGas reports insufficient remaining gas for an operation.
type OutOfGas struct{ Have, Need uint64 }

func (OutOfGas) isEvmError() {}
func (e OutOfGas) Error() string {
	return fmt.Sprintf("out of gas: have %d need %d", e.Have, e.Need)
}

// StackLimitExceeded reports a push past the 1024-deep stack limit.
type StackLimitExceeded struct{}

func (StackLimitExceeded) isEvmError()    {}
func (StackLimitExceeded) Error() string { return "stack limit exceeded" }

// IllegalOverflow reports an arithmetic width violation the interpreter
// refuses to let pass silently (distinct from ordinary wrapping arithmetic).
type IllegalOverflow struct{}

func (IllegalOverflow) isEvmError()    {}
func (IllegalOverflow) Error() string { return "illegal overflow" }

// StateChangeWhileStatic reports a mutating opcode executed inside a
// STATICCALL frame.
type StateChangeWhileStatic struct{}

func (StateChangeWhileStatic) isEvmError()    {}
func (StateChangeWhileStatic) Error() string { return "state change while static" }

// InvalidMemoryAccess reports an out-of-range or overflowing memory offset.
type InvalidMemoryAccess struct{}

func (InvalidMemoryAccess) isEvmError()    {}
func (InvalidMemoryAccess) Error() string { return "invalid memory access" }

// CallDepthLimitReached reports the 1024-frame call depth limit being hit.
type CallDepthLimitReached struct{}

func (CallDepthLimitReached) isEvmError()    {}
func (CallDepthLimitReached) Error() string { return "call depth limit reached" }

// MaxCodeSizeExceeded reports deployed runtime code over the size limit.
type MaxCodeSizeExceeded struct{ Limit, Got int }

func (MaxCodeSizeExceeded) isEvmError() {}
func (e MaxCodeSizeExceeded) Error() string {
	return fmt.Sprintf("max code size exceeded: limit %d got %d", e.Limit, e.Got)
}

// MaxInitCodeSizeExceeded reports init code over the EIP-3860 size limit.
type MaxInitCodeSizeExceeded struct{ Limit, Got int }

func (MaxInitCodeSizeExceeded) isEvmError() {}
func (e MaxInitCodeSizeExceeded) Error() string {
	return fmt.Sprintf("max init code size exceeded: limit %d got %d", e.Limit, e.Got)
}

// InvalidFormat reports malformed EIP-3541/EOF-style code.
type InvalidFormat struct{}

func (InvalidFormat) isEvmError()    {}
func (InvalidFormat) Error() string { return "invalid format" }

// PrecompileFailure reports a precompiled contract execution failure.
type PrecompileFailure struct{}

func (PrecompileFailure) isEvmError()    {}
func (PrecompileFailure) Error() string { return "precompile failure" }

// ReturnDataOutOfBounds reports a RETURNDATACOPY past the buffered length.
type ReturnDataOutOfBounds struct{}

func (ReturnDataOutOfBounds) isEvmError()    {}
func (ReturnDataOutOfBounds) Error() string { return "return data out of bounds" }

// NonceOverflow reports a sender nonce at its uint64 maximum.
type NonceOverflow struct{}

func (NonceOverflow) isEvmError()    {}
func (NonceOverflow) Error() string { return "nonce uint64 overflow" }

// BadCheatCode reports an unrecognized test-harness cheat code selector.
type BadCheatCode struct{ Selector common.FunctionSelector }

func (BadCheatCode) isEvmError() {}
func (e BadCheatCode) Error() string {
	b := e.Selector.Bytes()
	return fmt.Sprintf("bad cheat code: 0x%x", b)
}

// NonexistentFork reports a fork index with no matching fork in the harness.
type NonexistentFork struct{ Index int32 }

func (NonexistentFork) isEvmError() {}
func (e NonexistentFork) Error() string {
	return fmt.Sprintf("nonexistent fork: %d", e.Index)
}
