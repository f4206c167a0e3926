// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "fmt"

// nullary0 is the shape shared by every zero-argument context variable
// (Origin, Coinbase, Timestamp, ...): a fixed tag and nothing else.
type nullary0 struct{ tag string }

func (nullary0) isWord()          {}
func (nullary0) Sort() Sort       { return SortEWord }
func (n nullary0) String() string { return n.tag + "()" }

var (
	// Origin is the transaction origin address, wrapped as an EWord.
	Origin = nullary0{"Origin"}
	// Coinbase is the current block's fee recipient.
	Coinbase = nullary0{"Coinbase"}
	// Timestamp is the current block's timestamp.
	Timestamp = nullary0{"Timestamp"}
	// BlockNumber is the current block's number.
	BlockNumber = nullary0{"BlockNumber"}
	// PrevRandao is the previous block's RANDAO output (post-Merge DIFFICULTY).
	PrevRandao = nullary0{"PrevRandao"}
	// GasLimit is the current block's gas limit.
	GasLimit = nullary0{"GasLimit"}
	// ChainId is the chain identifier (EIP-155).
	ChainId = nullary0{"ChainId"}
	// BaseFee is the current block's EIP-1559 base fee.
	BaseFee = nullary0{"BaseFee"}
	// TxValue is the current transaction's value field.
	TxValue = nullary0{"TxValue"}
)

// BlockHash looks up the hash of the block at the given number.
type BlockHash struct{ Number Word }

func (BlockHash) isWord()          {}
func (BlockHash) Sort() Sort       { return SortEWord }
func (b BlockHash) String() string { return unary("BlockHash", b.Number) }

// Balance is the balance of the given address, at frame-entry snapshot time.
type Balance struct{ Addr AddrTerm }

func (Balance) isWord()    {}
func (Balance) Sort() Sort { return SortEWord }
func (b Balance) String() string { return fmt.Sprintf("Balance(%s)", b.Addr.String()) }

// Gas is the remaining gas of the frame at the given call-stack depth.
type Gas struct{ FrameIdx int }

func (Gas) isWord()          {}
func (Gas) Sort() Sort       { return SortEWord }
func (g Gas) String() string { return fmt.Sprintf("Gas(%d)", g.FrameIdx) }

// CodeSize is the size in bytes of the code at the given address.
type CodeSize struct{ Addr AddrTerm }

func (CodeSize) isWord()    {}
func (CodeSize) Sort() Sort { return SortEWord }
func (c CodeSize) String() string { return fmt.Sprintf("CodeSize(%s)", c.Addr.String()) }

// CodeHash is the keccak256 of the code at the given address.
type CodeHash struct{ Addr AddrTerm }

func (CodeHash) isWord()    {}
func (CodeHash) Sort() Sort { return SortEWord }
func (c CodeHash) String() string { return fmt.Sprintf("CodeHash(%s)", c.Addr.String()) }
