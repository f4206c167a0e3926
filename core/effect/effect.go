// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package effect models the suspensions a running frame may emit when it
// needs something from outside the pure core: contract bytecode, a storage
// slot, an SMT query, an FFI call, or a path choice. Each suspension pairs
// with a resume token rather than a first-class continuation closure, so a
// driver can serialize, inspect, or replay a paused frame without capturing
// arbitrary mutable state.
package effect

import (
	"github.com/luxfi/symevm/core/expr"
	"github.com/luxfi/symevm/core/prop"
)

// Effect is a suspension a frame emits in place of a result, asking its
// driver to supply external information before execution continues.
type Effect interface {
	isEffect()
}

// PleaseFetchContract asks the driver for the bytecode/state of Addr as of
// BaseState.
type PleaseFetchContract struct {
	Addr      expr.AddrTerm
	BaseState string
}

func (PleaseFetchContract) isEffect() {}

// FetchContractResume carries the contract the driver fetched, to be handed
// back to the paused frame.
type FetchContractResume struct {
	Contract expr.C
}

// PleaseFetchSlot asks the driver for the value of Slot in Addr's storage.
type PleaseFetchSlot struct {
	Addr expr.AddrTerm
	Slot expr.Word
}

func (PleaseFetchSlot) isEffect() {}

// FetchSlotResume carries the fetched slot value.
type FetchSlotResume struct {
	Value expr.Word
}

// SMTAnswer is the solver's verdict on whether Cond is forced under the
// accumulated path constraints.
type SMTAnswer int

const (
	// SMTUnknown means the solver could not decide.
	SMTUnknown SMTAnswer = iota
	// SMTCaseTrue means Cond is forced true.
	SMTCaseTrue
	// SMTCaseFalse means Cond is forced false.
	SMTCaseFalse
)

// PleaseAskSMT asks whether Cond is forced under Constraints.
type PleaseAskSMT struct {
	Cond        expr.Word
	Constraints []prop.Prop
}

func (PleaseAskSMT) isEffect() {}

// AskSMTResume carries the solver's answer.
type AskSMTResume struct {
	Answer SMTAnswer
}

// PleaseDoFFI asks the driver to invoke an external command, guarded by the
// runtime's allowFFI setting.
type PleaseDoFFI struct {
	Argv []string
}

func (PleaseDoFFI) isEffect() {}

// DoFFIResume carries the command's stdout.
type DoFFIResume struct {
	Stdout []byte
}

// PleaseChoosePath asks the driver (symbolic mode only) to select a branch
// of Cond when the solver could not decide it alone.
type PleaseChoosePath struct {
	Cond expr.Word
}

func (PleaseChoosePath) isEffect() {}

// ChoosePathResume carries the chosen branch.
type ChoosePathResume struct {
	Branch bool
}
