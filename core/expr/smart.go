// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "github.com/luxfi/symevm/common"

// NewKeccak builds a Keccak term, reducing straight to a Lit digest when buf
// is fully concrete rather than leaving a hashable node around an already-
// known input.
func NewKeccak(buf BufTerm) Word {
	if bs, ok := MaybeConcreteBuf(buf); ok {
		return Lit{common.Keccak256Word(bs)}
	}
	return Keccak{Buf: buf}
}

// NewSHA256 builds a SHA256 term, reducing to a Lit digest when buf is fully
// concrete.
func NewSHA256(buf BufTerm) Word {
	if bs, ok := MaybeConcreteBuf(buf); ok {
		return Lit{common.SHA256Word(bs)}
	}
	return SHA256{Buf: buf}
}

// NewWAddr builds a WAddr term, collapsing straight to a Lit when addr is a
// concrete LitAddr so downstream word-level simplification does not have to
// see through the wrapper.
func NewWAddr(addr AddrTerm) Word {
	if la, ok := MaybeLitAddr(addr); ok {
		return Lit{common.AddrToW256(la)}
	}
	return WAddr{Addr: addr}
}

// NewIndexWord builds an IndexWord term, resolving immediately when both the
// index and the word are concrete.
func NewIndexWord(i int, w Word) ByteTerm {
	if lit, ok := w.(Lit); ok && i >= 0 && i < 32 {
		return LitByte{common.ByteAt(i, lit.Val)}
	}
	return IndexWord{I: i, W: w}
}

// NewEqByte builds an EqByte term, resolving immediately when both operands
// are concrete bytes.
func NewEqByte(a, b ByteTerm) Word {
	la, oka := MaybeLitByte(a)
	lb, okb := MaybeLitByte(b)
	if oka && okb {
		if la == lb {
			return Lit{common.OneW256}
		}
		return Lit{common.ZeroW256}
	}
	return EqByte{A: a, B: b}
}
