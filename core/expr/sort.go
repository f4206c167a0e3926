// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package expr implements the engine's sort-tagged expression algebra: terms
// over words, bytes, buffers, storage, logs, addresses, contracts, and end
// states. Every constructor fixes its sort at construction time; the
// package does not attempt to encode a GADT structurally the way a
// dependently-typed language would. Instead each sort family is its own Go
// interface, and a single discriminated wrapper (SomeExpr) gives the
// heterogeneous equality/ordering needed when terms of different sorts must
// be compared or ordered together.
package expr

// Sort is the fixed discriminant used for heterogeneous ordering:
// Buf=1, Storage=2, Log=3, EWord=4, Byte=5, other=6.
type Sort int

const (
	SortBuf Sort = iota + 1
	SortStorage
	SortLog
	SortEWord
	SortByte
	SortOther
	SortEAddr
	SortEContract
	SortEnd
)

// sortCode implements the fixed ordering code: the five named sorts keep
// their assigned numbers, and the remaining sorts (EAddr, EContract, End)
// all fall back to the "other" bucket for cross-sort comparison purposes.
func sortCode(s Sort) int {
	switch s {
	case SortBuf:
		return 1
	case SortStorage:
		return 2
	case SortLog:
		return 3
	case SortEWord:
		return 4
	case SortByte:
		return 5
	default:
		return 6
	}
}

// Node is implemented by every expression constructor. Sort identifies which
// family the node belongs to; it never changes after construction.
type Node interface {
	Sort() Sort
	// String renders a deterministic, sort-respecting textual form used for
	// total ordering of heterogeneous expressions (see SomeExpr) and as a
	// stable common-subexpression key. It is a debug/key form, not a pretty
	// printer; pretty-printing is left to an external collaborator.
	String() string
}

// Word is any Node of sort EWord.
type Word interface {
	Node
	isWord()
}

// BufTerm is any Node of sort Buf.
type BufTerm interface {
	Node
	isBuf()
}

// StorageTerm is any Node of sort Storage.
type StorageTerm interface {
	Node
	isStorage()
}

// ByteTerm is any Node of sort Byte.
type ByteTerm interface {
	Node
	isByte()
}

// AddrTerm is any Node of sort EAddr.
type AddrTerm interface {
	Node
	isAddr()
}

// ContractTerm is any Node of sort EContract.
type ContractTerm interface {
	Node
	isContract()
}

// LogTerm is any Node of sort Log.
type LogTerm interface {
	Node
	isLog()
}

// EndTerm is any Node of sort End.
type EndTerm interface {
	Node
	isEnd()
}
