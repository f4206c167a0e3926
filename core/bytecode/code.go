// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bytecode represents contract code without decoding or
// interpreting it: ContractCode distinguishes code that has not been
// fetched yet, constructor (init) code, and runtime code, and RuntimeCode
// further distinguishes fully concrete bytes from a stream that interleaves
// concrete opcodes with symbolic pushdata.
package bytecode

import (
	"fmt"

	"github.com/luxfi/symevm/core/expr"
)

// RuntimeCode is the code a contract executes once construction has
// finished.
type RuntimeCode interface {
	isRuntimeCode()
	String() string
}

// ConcreteRuntime is fully known runtime bytecode.
type ConcreteRuntime struct{ Bytes []byte }

func (ConcreteRuntime) isRuntimeCode() {}
func (c ConcreteRuntime) String() string { return fmt.Sprintf("ConcreteRuntime(%x)", c.Bytes) }

// SymbolicRuntime is runtime bytecode with some symbolic bytes, e.g.
// unresolved Solidity immutables baked into otherwise-concrete code.
type SymbolicRuntime struct{ Bytes []expr.ByteTerm }

func (SymbolicRuntime) isRuntimeCode() {}
func (s SymbolicRuntime) String() string {
	out := "SymbolicRuntime(["
	for i, b := range s.Bytes {
		if i > 0 {
			out += ","
		}
		out += b.String()
	}
	return out + "])"
}

// ContractCode is a contract's code in one of three states: not yet
// fetched, still in its constructor phase, or settled runtime code.
type ContractCode interface {
	isContractCode()
	String() string
}

// Unknown marks code that has not been fetched for the given address.
type Unknown struct{ Addr expr.AddrTerm }

func (Unknown) isContractCode() {}
func (u Unknown) String() string { return fmt.Sprintf("Unknown(%s)", u.Addr.String()) }

// Init is constructor code: concrete bytes plus an abstract data section
// standing in for ABI-encoded constructor arguments appended after it.
type Init struct {
	Bytes       []byte
	DataSection expr.BufTerm
}

func (Init) isContractCode() {}
func (i Init) String() string {
	return fmt.Sprintf("Init(%x,%s)", i.Bytes, i.DataSection.String())
}

// Runtime wraps settled runtime code.
type Runtime struct{ Code RuntimeCode }

func (Runtime) isContractCode() {}
func (r Runtime) String() string { return fmt.Sprintf("Runtime(%s)", r.Code.String()) }
