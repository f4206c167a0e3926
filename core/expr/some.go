// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "reflect"

// SomeExpr is a heterogeneous wrapper over any sort of Node, used wherever
// expressions of differing sort need to live in one container (e.g. a
// common-subexpression map keyed across Buf/Storage/EWord terms). Equality
// and ordering are sort-respecting.
type SomeExpr struct {
	Node Node
}

// Some wraps any Node as a SomeExpr.
func Some(n Node) SomeExpr { return SomeExpr{Node: n} }

// Equal reports whether a and b have the same sort and are structurally
// equal. Sort mismatch is always unequal, regardless of payload — an
// EWord and an EAddr never compare equal even if one wraps the other.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Sort() != b.Sort() {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Equal reports whether e and o are the same sort and structurally equal.
func (e SomeExpr) Equal(o SomeExpr) bool { return Equal(e.Node, o.Node) }

// Compare gives a total order over Nodes of any sort: differing sorts order
// by the fixed sort code; same-sort nodes order by their
// deterministic String() rendering, which is injective over the constructors
// this package defines (each constructor's String embeds every subterm's own
// String, so no two distinct well-formed terms of the same sort render
// identically).
func Compare(a, b Node) int {
	ca, cb := sortCode(a.Sort()), sortCode(b.Sort())
	if ca != cb {
		if ca < cb {
			return -1
		}
		return 1
	}
	sa, sb := a.String(), b.String()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b, usable as a sort.Interface
// Less callback or a map-key comparator.
func Less(a, b Node) bool { return Compare(a, b) < 0 }
