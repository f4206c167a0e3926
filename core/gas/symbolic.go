// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import (
	"github.com/luxfi/symevm/core/effect"
	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
	"github.com/luxfi/symevm/core/prop"
	"github.com/luxfi/symevm/metrics"
)

// Symbolic tracks no gas at all: every Burn* call is a no-op that never
// fails, matching a symbolic executor's goal of exploring every reachable
// path rather than pruning on a concrete gas budget.
type Symbolic struct {
	// Constraints accumulates path constraints pushed by Branch when an SMT
	// query resolves a condition one way or the other.
	Constraints []prop.Prop
}

func (*Symbolic) Burn(uint64) evmerrors.EvmError                 { return nil }
func (*Symbolic) BurnExp(expr.Word) evmerrors.EvmError            { return nil }
func (*Symbolic) BurnMemExp(uint64) evmerrors.EvmError            { return nil }
func (*Symbolic) BurnSHA3(uint64) evmerrors.EvmError              { return nil }
func (*Symbolic) InitialGas(uint64) uint64                        { return 0 }

func (*Symbolic) EnsureGas(_ uint64, k func() effect.VMResult) effect.VMResult {
	return k()
}

func (*Symbolic) GasTryFrom(expr.Word) (uint64, bool) {
	return 0, true
}

func (*Symbolic) CostOfCreate(uint64) uint64                { return 0 }
func (*Symbolic) CostOfCall(bool, bool) uint64               { return 0 }

// Branch resolves cond immediately when it is already a concrete Lit;
// otherwise it suspends with a PleaseAskSMT effect so the driver can consult
// the solver under the accumulated constraints. The caller is expected to
// re-invoke Branch (or push the resolved constraint itself) once the effect
// is answered — this method only produces the suspension or the already-
// known answer, it does not block.
func (s *Symbolic) Branch(cond expr.Word, k func(bool) effect.VMResult) effect.VMResult {
	if lit, ok := cond.(expr.Lit); ok {
		return k(!lit.Val.IsZero())
	}
	metrics.RecordEffect("PleaseAskSMT")
	return effect.HandleEffect{Eff: effect.PleaseAskSMT{Cond: cond, Constraints: s.Constraints}}
}

// PushConstraint records p as holding on the current path, called by the
// driver after an SMT answer or a PleaseChoosePath resolution determines
// which branch was taken.
func (s *Symbolic) PushConstraint(p prop.Prop) {
	s.Constraints = append(s.Constraints, p)
}
