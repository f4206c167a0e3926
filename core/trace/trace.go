// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package trace models an execution trace as a rose tree: each node records
// an op index, the contract address executing at that point, and one piece
// of TraceData. Frame entry appends an Entry child and descends; frame exit
// appends a Return sibling and ascends.
package trace

import (
	"fmt"

	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
)

// TraceData is the payload a trace node carries.
type TraceData interface {
	isTraceData()
	String() string
}

// Event records a LOG emission.
type Event struct {
	Addr   expr.AddrTerm
	Data   expr.BufTerm
	Topics []expr.Word
}

func (Event) isTraceData() {}
func (e Event) String() string {
	return fmt.Sprintf("Event(%s,%s,%d topics)", e.Addr.String(), e.Data.String(), len(e.Topics))
}

// FrameCtx identifies the contract a frame belongs to; it is deliberately
// smaller than expr.TraceContext (which also carries an op index) since a
// Frame trace node already carries its own OpIx.
type FrameCtx struct{ Addr expr.AddrTerm }

// Frame records a nested call/create frame boundary.
type Frame struct{ Ctx FrameCtx }

func (Frame) isTraceData() {}
func (f Frame) String() string { return fmt.Sprintf("Frame(%s)", f.Ctx.Addr.String()) }

// ErrorData records a frame-ending EvmError.
type ErrorData struct{ Err evmerrors.EvmError }

func (ErrorData) isTraceData() {}
func (e ErrorData) String() string { return fmt.Sprintf("Error(%v)", e.Err) }

// EntryMsg records a free-form diagnostic message.
type EntryMsg struct{ Msg string }

func (EntryMsg) isTraceData() {}
func (e EntryMsg) String() string { return fmt.Sprintf("Entry(%q)", e.Msg) }

// ReturnData records a frame returning a buffer.
type ReturnData struct {
	Buf expr.BufTerm
	Ctx FrameCtx
}

func (ReturnData) isTraceData() {}
func (r ReturnData) String() string {
	return fmt.Sprintf("Return(%s,%s)", r.Buf.String(), r.Ctx.Addr.String())
}

// Node is one point in the trace tree.
type Node struct {
	OpIx     int
	Contract expr.AddrTerm
	Data     TraceData
	Parent   *Node
	Children []*Node
}
