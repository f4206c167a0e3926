// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import (
	"fmt"
	"sort"
)

// Constraint is implemented by core/prop.Prop. It is declared here, rather
// than importing the prop package directly, because every End-state term
// embeds a path-constraint list and core/prop's propositions are themselves
// built over Word (this package) — importing prop from expr would close an
// import cycle. Anything that builds an End term takes its constraints as
// Constraint values; core/prop.Prop satisfies this trivially.
type Constraint interface {
	// ConstraintString renders the proposition deterministically, mirroring
	// Node.String's role for expressions.
	ConstraintString() string
}

// EvmErr is implemented by core/evmerrors.EvmError for the same reason:
// Failure embeds an error without expr depending on the evmerrors package.
type EvmErr interface {
	error
}

// PartialReason is implemented by core/evmerrors.PartialExec, embedded in
// Partial end states.
type PartialReason interface {
	error
}

// TraceContext is a snapshot of the point in the trace tree at which a
// terminal node was produced: the op index and the contract address
// executing at that point. It intentionally does not reference the trace
// rose-tree itself (core/trace), keeping End-state terms self-contained
// values rather than holders of a live cursor.
type TraceContext struct {
	OpIx    int
	Contract AddrTerm
}

func (t TraceContext) String() string {
	return fmt.Sprintf("TraceContext(%d,%s)", t.OpIx, t.Contract.String())
}

func constraintsString(cs []Constraint) string {
	s := "["
	for i, c := range cs {
		if i > 0 {
			s += ","
		}
		s += c.ConstraintString()
	}
	return s + "]"
}

// Partial is an End term for a frame that halted early because a required
// concretization was impossible.
type Partial struct {
	Constraints []Constraint
	Ctx         TraceContext
	Reason      PartialReason
}

func (Partial) isEnd()    {}
func (Partial) Sort() Sort { return SortEnd }
func (p Partial) String() string {
	return fmt.Sprintf("Partial(%s,%s,%v)", constraintsString(p.Constraints), p.Ctx.String(), p.Reason)
}

// Failure is an End term for a frame that halted with an EvmError.
type Failure struct {
	Constraints []Constraint
	Ctx         TraceContext
	Err         EvmErr
}

func (Failure) isEnd()    {}
func (Failure) Sort() Sort { return SortEnd }
func (f Failure) String() string {
	return fmt.Sprintf("Failure(%s,%s,%v)", constraintsString(f.Constraints), f.Ctx.String(), f.Err)
}

// Success is an End term for a frame that completed, returning a buffer and
// the (possibly-updated) reduced view of every contract touched.
type Success struct {
	Constraints []Constraint
	Ctx         TraceContext
	ReturnBuf   BufTerm
	Contracts   map[string]C // keyed by the AddrTerm's String() form
}

func (Success) isEnd()    {}
func (Success) Sort() Sort { return SortEnd }
func (s Success) String() string {
	keys := make([]string, 0, len(s.Contracts))
	for k := range s.Contracts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cs := "{"
	for i, k := range keys {
		if i > 0 {
			cs += ","
		}
		cs += k + ":" + s.Contracts[k].String()
	}
	return fmt.Sprintf("Success(%s,%s,%s,%s})",
		constraintsString(s.Constraints), s.Ctx.String(), s.ReturnBuf.String(), cs)
}

// ITE is a deferred if-then-else over two End terms, used when a path has
// not yet been resolved to a single branch.
type ITE struct {
	Cond       Word
	Then, Else EndTerm
}

func (ITE) isEnd()    {}
func (ITE) Sort() Sort { return SortEnd }
func (i ITE) String() string {
	return fmt.Sprintf("ITE(%s,%s,%s)", i.Cond.String(), i.Then.String(), i.Else.String())
}
