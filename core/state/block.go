// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/gas"
)

// Block is the per-block context a frame consults for COINBASE, TIMESTAMP,
// NUMBER, PREVRANDAO, GASLIMIT, and BASEFEE; shaped after the BlockContext
// the interpreter threads through every call, trimmed to the fields the
// opcodes above read plus the fee schedule and code-size limits the gas
// contract and CREATE/CREATE2 need.
type Block struct {
	Coinbase     common.Addr
	Timestamp    common.W256
	Number       common.W256
	PrevRandao   common.W256
	GasLimit     uint64
	BaseFee      common.W256
	MaxCodeSize  int
	Schedule     gas.Schedule
}

// DefaultBlock returns a Block with the default gas schedule and zeroed
// numeric fields, for tests and REPL-style one-off execution.
func DefaultBlock() Block {
	return Block{
		MaxCodeSize: 24576,
		Schedule:    gas.DefaultSchedule,
	}
}
