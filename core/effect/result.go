// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package effect

import (
	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
)

// VMResult is what a frame step returns: either it finished (successfully,
// with a failure, or as an unfinished partial run) or it suspended on an
// Effect.
type VMResult interface {
	isVMResult()
}

// Unfinished reports a symbolic-only partial run: a required concretization
// was impossible, so the frame halted early with whatever constraints had
// accumulated.
type Unfinished struct {
	Reason evmerrors.PartialExec
}

func (Unfinished) isVMResult() {}

// VMFailure reports the frame ending with an EvmError.
type VMFailure struct {
	Err evmerrors.EvmError
}

func (VMFailure) isVMResult() {}

// VMSuccess reports the frame completing with a return buffer.
type VMSuccess struct {
	ReturnBuf expr.BufTerm
}

func (VMSuccess) isVMResult() {}

// HandleEffect reports the frame suspending on eff; the driver must resume
// with the matching *Resume value before execution can continue.
type HandleEffect struct {
	Eff Effect
}

func (HandleEffect) isVMResult() {}
