// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import "github.com/luxfi/symevm/core/expr"

// Zipper is a cursor into a trace tree. Unlike a classic functional zipper
// (a focus plus a stack of "crumbs" reconstructing the path back to root),
// Go nodes carry a Parent pointer directly, so ascend is a field read rather
// than a crumb pop; this is the idiomatic Go substitution for the same O(1)
// navigation the rose-tree design calls for.
type Zipper struct {
	Root  *Node
	Focus *Node
}

// NewZipper starts a trace rooted at a single node with no data yet, opIx 0.
func NewZipper(contract expr.AddrTerm) *Zipper {
	root := &Node{OpIx: 0, Contract: contract}
	return &Zipper{Root: root, Focus: root}
}

// PushChild appends a new child under Focus carrying data, and descends into
// it.
func (z *Zipper) PushChild(opIx int, contract expr.AddrTerm, data TraceData) *Node {
	child := &Node{OpIx: opIx, Contract: contract, Data: data, Parent: z.Focus}
	z.Focus.Children = append(z.Focus.Children, child)
	z.Focus = child
	return child
}

// AppendSibling appends a new node as the next sibling of Focus (a child of
// Focus's parent), without moving Focus.
func (z *Zipper) AppendSibling(opIx int, contract expr.AddrTerm, data TraceData) *Node {
	parent := z.Focus.Parent
	if parent == nil {
		// No parent to append a sibling under; treat Focus itself as the
		// implicit parent instead of panicking on a root-level call.
		parent = z.Focus
	}
	sib := &Node{OpIx: opIx, Contract: contract, Data: data, Parent: parent}
	parent.Children = append(parent.Children, sib)
	return sib
}

// GoUp ascends Focus to its parent, returning false if already at the root.
func (z *Zipper) GoUp() bool {
	if z.Focus.Parent == nil {
		return false
	}
	z.Focus = z.Focus.Parent
	return true
}

// EnterFrame is the frame-push protocol: append an Entry child under Focus
// and descend into it.
func (z *Zipper) EnterFrame(opIx int, contract expr.AddrTerm, msg string) *Node {
	return z.PushChild(opIx, contract, EntryMsg{Msg: msg})
}

// ExitFrame is the frame-pop protocol: append a Return sibling of Focus and
// ascend to the parent.
func (z *Zipper) ExitFrame(opIx int, buf expr.BufTerm) *Node {
	ctx := FrameCtx{Addr: z.Focus.Contract}
	ret := z.AppendSibling(opIx, z.Focus.Contract, ReturnData{Buf: buf, Ctx: ctx})
	z.GoUp()
	return ret
}
