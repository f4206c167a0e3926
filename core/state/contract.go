// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/bytecode"
	"github.com/luxfi/symevm/core/expr"
)

// CodeOp pairs a decoded opcode with the index of its first byte, letting
// OpIxMap answer "what instruction contains byte i" in O(1).
type CodeOp struct {
	Idx int32
	Op  bytecode.GenericOp[expr.Word]
}

// Contract is the full runtime account record: code plus every storage-like
// view a frame can observe, balance/nonce, and the decoded-instruction index
// the interpreter consults for O(1) PC-to-opcode lookups. This is richer
// than expr.C (the reduced view embedded in End-state terms): expr.C is an
// immutable expression payload, Contract is the live, mutable record a VM
// threads through execution.
type Contract struct {
	Code             bytecode.ContractCode
	Storage          expr.StorageTerm
	TransientStorage expr.StorageTerm
	OrigStorage      expr.StorageTerm
	Balance          expr.Word
	Nonce            expr.Word
	CodeHash         common.W256
	OpIxMap          []int32
	CodeOps          []CodeOp
	External         bool
}

// ToExprC projects Contract down to the reduced view embedded in a
// Success end-state term.
func (c Contract) ToExprC() expr.C {
	var codeBuf expr.BufTerm
	switch code := c.Code.(type) {
	case bytecode.Runtime:
		switch rc := code.Code.(type) {
		case bytecode.ConcreteRuntime:
			codeBuf = expr.ConcreteBuf{Bytes: rc.Bytes}
		case bytecode.SymbolicRuntime:
			codeBuf = joinByteTerms(rc.Bytes)
		}
	case bytecode.Init:
		codeBuf = expr.ConcreteBuf{Bytes: code.Bytes}
	default:
		codeBuf = expr.AbstractBuf{Name: "unknown-code"}
	}
	return expr.C{
		Code:     codeBuf,
		Storage:  c.Storage,
		TStorage: c.TransientStorage,
		Balance:  c.Balance,
		Nonce:    c.Nonce,
	}
}

// joinByteTerms folds a symbolic byte stream into a single Buf by repeated
// WriteByte over an AbstractBuf base, in index order.
func joinByteTerms(bytes []expr.ByteTerm) expr.BufTerm {
	var buf expr.BufTerm = expr.AbstractBuf{Name: "symbolic-runtime"}
	for i, b := range bytes {
		buf = expr.WriteByte{
			Index: expr.Lit{Val: common.NewW256(uint64(i))},
			Val:   b,
			Prev:  buf,
		}
	}
	return buf
}
