// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evmerrors

import "fmt"

// PartialExec is the reason a symbolic frame terminated as Unfinished
// instead of running to a Success/Failure/Revert conclusion.
type PartialExec interface {
	error
	isPartialExec()
}

// UnexpectedSymbolicArg reports an instruction that required a concrete
// argument (e.g. a JUMP target) which stayed symbolic.
type UnexpectedSymbolicArg struct {
	PC   int
	Msg  string
	Args []string
}

func (UnexpectedSymbolicArg) isPartialExec() {}
func (e UnexpectedSymbolicArg) Error() string {
	return fmt.Sprintf("unexpected symbolic argument at pc %d: %s %v", e.PC, e.Msg, e.Args)
}

// MaxIterationsReached reports a loop-unroll bound hit at the given program
// counter and contract address.
type MaxIterationsReached struct {
	PC   int
	Addr string
}

func (MaxIterationsReached) isPartialExec() {}
func (e MaxIterationsReached) Error() string {
	return fmt.Sprintf("max iterations reached at pc %d in %s", e.PC, e.Addr)
}

// JumpIntoSymbolicCode reports control flow reaching a code region whose
// bytes are symbolic.
type JumpIntoSymbolicCode struct {
	PC      int
	JumpDst int
}

func (JumpIntoSymbolicCode) isPartialExec() {}
func (e JumpIntoSymbolicCode) Error() string {
	return fmt.Sprintf("jump into symbolic code: pc %d -> %d", e.PC, e.JumpDst)
}
