// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/effect"
	"github.com/luxfi/symevm/core/expr"
	"github.com/luxfi/symevm/core/gas"
	"github.com/luxfi/symevm/core/prop"
	"github.com/luxfi/symevm/core/trace"
	"github.com/luxfi/symevm/metrics"
)

// VM is the whole execution context threaded through a run: the current
// result (if the run has concluded or suspended), the call-frame stack, the
// world/block/tx state, the accumulated log events and execution trace, the
// fetch/path cache, the gas-accounting strategy, the iteration-bound tracker
// used to detect non-terminating symbolic loops, the accumulated path
// constraints, and the human-readable address labels attached for
// diagnostics.
type VM struct {
	Result effect.VMResult
	Frames []*Frame

	Env   *Env
	Block Block
	Tx    *Tx

	Logs  []trace.Event
	Trace *trace.Zipper
	Cache *Cache

	Gas gas.VMOps

	Iterations  map[CodeLocation]int
	Constraints []prop.Prop

	Labels map[common.Addr]string
	Config RuntimeConfig
}

// NewConcreteVM builds a VM configured for fully concrete execution: a
// gas.Concrete cost contract burning real gas, starting from root at the
// given entry contract.
func NewConcreteVM(env *Env, block Block, tx *Tx, root common.Addr, gasLimit uint64) *VM {
	return &VM{
		Frames:     nil,
		Env:        env,
		Block:      block,
		Tx:         tx,
		Trace:      trace.NewZipper(expr.LitAddr{Addr: root}),
		Cache:      Identity(),
		Gas:        gas.NewConcrete(gasLimit),
		Iterations: make(map[CodeLocation]int),
		Labels:     make(map[common.Addr]string),
		Config:     DefaultRuntimeConfig(),
	}
}

// NewSymbolicVM builds a VM configured for symbolic execution: a
// gas.Symbolic cost contract that suspends on undecidable branches instead
// of burning gas, accumulating path constraints as it goes.
func NewSymbolicVM(env *Env, block Block, tx *Tx, root common.Addr) *VM {
	sym := &gas.Symbolic{}
	return &VM{
		Frames:     nil,
		Env:        env,
		Block:      block,
		Tx:         tx,
		Trace:      trace.NewZipper(expr.LitAddr{Addr: root}),
		Cache:      Identity(),
		Gas:        sym,
		Iterations: make(map[CodeLocation]int),
		Labels:     make(map[common.Addr]string),
		Config:     DefaultRuntimeConfig(),
	}
}

// CurrentFrame returns the innermost active frame, or nil at the top level.
func (vm *VM) CurrentFrame() *Frame {
	if len(vm.Frames) == 0 {
		return nil
	}
	return vm.Frames[len(vm.Frames)-1]
}

// EnterCall pushes a new frame, recording the entry in the execution trace.
func (vm *VM) EnterCall(opIx int, callee common.Addr, state FrameState) *Frame {
	f := Push(vm.CurrentFrame(), state, vm.Tx.Substate, snapshotContracts(vm.Env.Contracts))
	vm.Frames = append(vm.Frames, f)
	vm.Trace.EnterFrame(opIx, expr.LitAddr{Addr: callee}, "CALL")
	return f
}

// ExitCall pops the innermost frame. On revert, it discards the frame's
// effects via Pop; on success, it simply removes the frame, letting the
// caller observe whatever state the callee left behind.
func (vm *VM) ExitCall(opIx int, returnBuf expr.BufTerm, reverted bool) {
	f := vm.CurrentFrame()
	if f == nil {
		return
	}
	vm.Frames = vm.Frames[:len(vm.Frames)-1]
	if reverted {
		f.Pop(vm.Tx.Substate, vm.Env.Contracts)
	}
	vm.Trace.ExitFrame(opIx, returnBuf)
}

// IncIteration bumps the loop-iteration counter for loc and reports the new
// count, letting a caller enforce a bound and produce a MaxIterationsReached
// partial result once it is exceeded.
func (vm *VM) IncIteration(loc CodeLocation) int {
	vm.Iterations[loc]++
	count := vm.Iterations[loc]
	if vm.Config.MaxIterations > 0 && count == vm.Config.MaxIterations+1 {
		metrics.IterationBoundHits.Inc()
	}
	return count
}

// PushConstraint records a path constraint accumulated during symbolic
// execution.
func (vm *VM) PushConstraint(p prop.Prop) {
	vm.Constraints = append(vm.Constraints, p)
}

func snapshotContracts(contracts map[common.Addr]*Contract) map[common.Addr]Contract {
	out := make(map[common.Addr]Contract, len(contracts))
	for k, v := range contracts {
		out[k] = *v
	}
	return out
}
