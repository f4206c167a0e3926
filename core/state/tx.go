// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "github.com/luxfi/symevm/common"

// TxReversion snapshots everything a transaction must roll back to if it
// reverts in its entirety: the substate bookkeeping plus the per-contract
// state the transaction had touched before it started.
type TxReversion struct {
	Substate  *Substate
	Contracts map[common.Addr]Contract
}

// Tx is the per-transaction context: origin, destination, value, gas
// pricing, whether this is a contract-creation transaction, the running
// substate, and the reversion point to restore to on total tx failure.
// Shaped after the TxContext the interpreter threads through a call, widened
// with the fields a full transaction (rather than a single message call)
// needs to track.
type Tx struct {
	Origin      common.Addr
	ToAddr      *common.Addr // nil for contract creation
	Value       common.W256
	GasPrice    common.W256
	GasLimit    uint64
	PriorityFee common.W256
	IsCreate    bool

	Substate    *Substate
	TxReversion TxReversion
}

// NewTx builds a Tx with a fresh substate and a reversion point snapshotting
// it, ready for execution to begin.
func NewTx(origin common.Addr, to *common.Addr, value common.W256, gasPrice common.W256, gasLimit uint64) *Tx {
	sub := NewSubstate()
	return &Tx{
		Origin:      origin,
		ToAddr:      to,
		Value:       value,
		GasPrice:    gasPrice,
		GasLimit:    gasLimit,
		IsCreate:    to == nil,
		Substate:    sub,
		TxReversion: TxReversion{Substate: sub.Snapshot(), Contracts: map[common.Addr]Contract{}},
	}
}

// Revert restores the transaction's substate to its pre-execution
// reversion point, discarding everything accumulated during a failed run.
func (tx *Tx) Revert() {
	tx.Substate.Restore(tx.TxReversion.Substate)
}
