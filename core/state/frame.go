// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/bytecode"
	"github.com/luxfi/symevm/core/expr"
)

// FrameState is the per-call-depth scratch state an interpreter mutates
// while stepping through one contract invocation: the executing code, the
// program counter, stack, memory, calldata, and the caller/callvalue/gas the
// frame was entered with, grouping the stack+memory+contract triple into a
// single per-call scope object.
type FrameState struct {
	Contract     common.Addr
	CodeContract common.Addr
	Code         bytecode.RuntimeCode

	PC         int
	Stack      []expr.Word
	Memory     expr.BufTerm
	MemorySize expr.Word

	Calldata  expr.BufTerm
	CallValue expr.Word
	Caller    expr.AddrTerm

	Gas        expr.Word
	ReturnData expr.BufTerm
	Static     bool
}

// FrameReversion snapshots everything a frame must restore on revert: the
// substate and the set of contracts this frame (or its descendants) had
// already mutated before it began.
type FrameReversion struct {
	Substate  *Substate
	Contracts map[common.Addr]Contract
}

// Frame is one stack entry in a call's nesting: the live scratch state plus
// the reversion point to restore to if this call fails and its effects must
// be discarded without unwinding the whole transaction.
type Frame struct {
	State     FrameState
	Reversion FrameReversion
}

// Push creates a new child Frame call-entered from parent, snapshotting
// parent's substate as the reversion point.
func Push(parent *Frame, child FrameState, sub *Substate, contracts map[common.Addr]Contract) *Frame {
	snapshotContracts := make(map[common.Addr]Contract, len(contracts))
	for k, v := range contracts {
		snapshotContracts[k] = v
	}
	return &Frame{
		State: child,
		Reversion: FrameReversion{
			Substate:  sub.Snapshot(),
			Contracts: snapshotContracts,
		},
	}
}

// Pop discards f's effects by restoring sub to f's reversion point and
// writing back the contract set f started with into contracts.
func (f *Frame) Pop(sub *Substate, contracts map[common.Addr]*Contract) {
	sub.Restore(f.Reversion.Substate)
	for addr, c := range f.Reversion.Contracts {
		c := c
		contracts[addr] = &c
	}
}
