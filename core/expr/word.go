// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import (
	"fmt"

	"github.com/luxfi/symevm/common"
)

// Lit is a concrete 256-bit literal, the canonical constructor for concrete
// word results.
type Lit struct{ Val common.W256 }

func (Lit) isWord()         {}
func (Lit) Sort() Sort      { return SortEWord }
func (l Lit) String() string { return fmt.Sprintf("Lit(%s)", l.Val.Hex()) }

// Var is a named symbolic word (e.g. a fuzzed calldata slot or user-named
// free variable).
type Var struct{ Name string }

func (Var) isWord()          {}
func (Var) Sort() Sort       { return SortEWord }
func (v Var) String() string { return fmt.Sprintf("Var(%q)", v.Name) }

func unary(name string, x Word) string { return fmt.Sprintf("%s(%s)", name, x.String()) }
func binary(name string, a, b Word) string {
	return fmt.Sprintf("%s(%s,%s)", name, a.String(), b.String())
}

// NewAdd builds the raw Add(l,r) node. Smart-constructor reduction over two
// Lit operands is the simplifier's job, not this package's; these
// constructors stay raw so a simplifier can rebuild terms without
// re-checking sorts.
func NewAdd(l, r Word) Word  { return taggedBin{"Add", l, r} }
func NewSub(l, r Word) Word  { return taggedBin{"Sub", l, r} }
func NewMul(l, r Word) Word  { return taggedBin{"Mul", l, r} }
func NewDiv(l, r Word) Word  { return taggedBin{"Div", l, r} }
func NewSDiv(l, r Word) Word { return taggedBin{"SDiv", l, r} }
func NewMod(l, r Word) Word  { return taggedBin{"Mod", l, r} }
func NewSMod(l, r Word) Word { return taggedBin{"SMod", l, r} }
func NewExp(l, r Word) Word  { return taggedBin{"Exp", l, r} }
func NewMin(l, r Word) Word  { return taggedBin{"Min", l, r} }
func NewMax(l, r Word) Word  { return taggedBin{"Max", l, r} }

// NewSEx builds SEx(byteNum, w): the EVM SIGNEXTEND operation.
func NewSEx(byteNum, w Word) Word { return taggedBin{"SEx", byteNum, w} }

// ternaryWord backs the arity-3 modular operations built by NewAddMod/NewMulMod.
type ternaryWord struct {
	op      string
	A, B, M Word
}

func (ternaryWord) isWord()    {}
func (ternaryWord) Sort() Sort { return SortEWord }
func (t ternaryWord) String() string {
	return fmt.Sprintf("%s(%s,%s,%s)", t.op, t.A.String(), t.B.String(), t.M.String())
}

func NewAddMod(a, b, m Word) Word { return ternaryWord{"AddMod", a, b, m} }
func NewMulMod(a, b, m Word) Word { return ternaryWord{"MulMod", a, b, m} }

// Comparisons: LT, GT, LEq, GEq, SLT, SGT, Eq, IsZero, all yielding EWord 0/1.
func NewLT(l, r Word) Word  { return taggedBin{"LT", l, r} }
func NewGT(l, r Word) Word  { return taggedBin{"GT", l, r} }
func NewLEq(l, r Word) Word { return taggedBin{"LEq", l, r} }
func NewGEq(l, r Word) Word { return taggedBin{"GEq", l, r} }
func NewSLT(l, r Word) Word { return taggedBin{"SLT", l, r} }
func NewSGT(l, r Word) Word { return taggedBin{"SGT", l, r} }
func NewEqW(l, r Word) Word { return taggedBin{"Eq", l, r} }

type unaryWord struct {
	op string
	X  Word
}

func (unaryWord) isWord()          {}
func (unaryWord) Sort() Sort       { return SortEWord }
func (u unaryWord) String() string { return unary(u.op, u.X) }

func NewIsZero(x Word) Word { return unaryWord{"IsZero", x} }
func NewNot(x Word) Word    { return unaryWord{"Not", x} }

// Bitwise: And, Or, Xor, SHL, SHR, SAR.
func NewAnd(l, r Word) Word { return taggedBin{"And", l, r} }
func NewOr(l, r Word) Word  { return taggedBin{"Or", l, r} }
func NewXor(l, r Word) Word { return taggedBin{"Xor", l, r} }
func NewSHL(shift, w Word) Word { return taggedBin{"SHL", shift, w} }
func NewSHR(shift, w Word) Word { return taggedBin{"SHR", shift, w} }
func NewSAR(shift, w Word) Word { return taggedBin{"SAR", shift, w} }

// taggedBin is the uniform representation behind all (Word,Word)->Word
// constructors; the op tag disambiguates the operator for String() and for
// the simplifier/SMT encoder to switch on.
type taggedBin struct {
	Op   string
	L, R Word
}

func (taggedBin) isWord()          {}
func (taggedBin) Sort() Sort       { return SortEWord }
func (t taggedBin) String() string { return binary(t.Op, t.L, t.R) }

// WAddr wraps an EAddr as an EWord (e.g. pushing an address onto the stack).
type WAddr struct{ Addr AddrTerm }

func (WAddr) isWord()          {}
func (WAddr) Sort() Sort       { return SortEWord }
func (w WAddr) String() string { return fmt.Sprintf("WAddr(%s)", w.Addr.String()) }
