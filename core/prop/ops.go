// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prop

import "github.com/luxfi/symevm/core/expr"

// And builds a binary conjunction; right-associative chaining is the
// caller's responsibility (Pand folds a slice in one step instead).
func And(l, r Prop) Prop { return PAnd{L: l, R: r} }

// Or builds a binary disjunction.
func Or(l, r Prop) Prop { return POr{L: l, R: r} }

// Not negates p.
func Not(p Prop) Prop { return PNeg{X: p} }

// Implies builds l => r.
func Implies(l, r Prop) Prop { return PImpl{L: l, R: r} }

// Neq is the negation of sort-respecting equality.
func Neq(a, b expr.Node) Prop { return Not(NewPEq(a, b)) }
