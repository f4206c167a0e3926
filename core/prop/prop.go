// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prop implements the path-constraint language: a small boolean
// algebra over expr.Node terms, used to record what must hold for a given
// execution branch or end state to be reachable.
package prop

import (
	"fmt"

	"github.com/luxfi/symevm/core/expr"
)

// Prop is any proposition constructor in this package. It satisfies
// expr.Constraint so End-state terms can hold path-constraint lists without
// core/expr importing this package.
type Prop interface {
	ConstraintString() string
	isProp()
}

// PBool is a constant proposition, used as the identity element for PAnd
// (true) and POr (false) folds.
type PBool struct{ Val bool }

func (PBool) isProp() {}
func (b PBool) ConstraintString() string { return fmt.Sprintf("PBool(%t)", b.Val) }

// PEq is sort-polymorphic equality between two expr.Node values of the same
// sort. Two nodes of differing sort are never equal; NewPEq below reduces
// that case straight to PBool(false) instead of building an always-false
// node.
type PEq struct{ A, B expr.Node }

func (PEq) isProp() {}
func (p PEq) ConstraintString() string {
	return fmt.Sprintf("PEq(%s,%s)", p.A.String(), p.B.String())
}

// NewPEq builds a PEq, short-circuiting to PBool(false) when A and B have
// differing sorts.
func NewPEq(a, b expr.Node) Prop {
	if a.Sort() != b.Sort() {
		return PBool{false}
	}
	return PEq{A: a, B: b}
}

// relWord is the shared shape for the four EWord orderings.
type relWord struct {
	op   string
	A, B expr.Word
}

func (relWord) isProp() {}
func (r relWord) ConstraintString() string {
	return fmt.Sprintf("%s(%s,%s)", r.op, r.A.String(), r.B.String())
}

// PLT, PGT, PLEq, PGEq compare two EWord terms, unsigned.
func PLT(a, b expr.Word) Prop  { return relWord{"PLT", a, b} }
func PGT(a, b expr.Word) Prop  { return relWord{"PGT", a, b} }
func PLEq(a, b expr.Word) Prop { return relWord{"PLEq", a, b} }
func PGEq(a, b expr.Word) Prop { return relWord{"PGEq", a, b} }

// PNeg negates a proposition.
type PNeg struct{ X Prop }

func (PNeg) isProp() {}
func (n PNeg) ConstraintString() string { return fmt.Sprintf("PNeg(%s)", n.X.ConstraintString()) }

// PAnd is a binary conjunction. Use Pand to fold a slice with the correct
// identity element.
type PAnd struct{ L, R Prop }

func (PAnd) isProp() {}
func (a PAnd) ConstraintString() string {
	return fmt.Sprintf("PAnd(%s,%s)", a.L.ConstraintString(), a.R.ConstraintString())
}

// POr is a binary disjunction. Use Por to fold a slice with the correct
// identity element.
type POr struct{ L, R Prop }

func (POr) isProp() {}
func (o POr) ConstraintString() string {
	return fmt.Sprintf("POr(%s,%s)", o.L.ConstraintString(), o.R.ConstraintString())
}

// PImpl is material implication: L holding forces R to hold.
type PImpl struct{ L, R Prop }

func (PImpl) isProp() {}
func (i PImpl) ConstraintString() string {
	return fmt.Sprintf("PImpl(%s,%s)", i.L.ConstraintString(), i.R.ConstraintString())
}

// Pand folds xs with PAnd, left to right, starting from the identity
// PBool(true). An empty slice is vacuously true.
func Pand(xs []Prop) Prop {
	acc := Prop(PBool{true})
	for _, x := range xs {
		acc = PAnd{L: acc, R: x}
	}
	return acc
}

// Por folds xs with POr, left to right, starting from the identity
// PBool(false). An empty slice is vacuously false.
func Por(xs []Prop) Prop {
	acc := Prop(PBool{false})
	for _, x := range xs {
		acc = POr{L: acc, R: x}
	}
	return acc
}
