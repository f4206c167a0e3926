// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "github.com/luxfi/symevm/common"

// Env is the world state a VM run executes against: the live contract set
// plus the chain identifier and the fresh-name counters symbolic execution
// uses to mint distinct addresses and gas values for contracts created
// during a run whose address/gas cannot yet be pinned down concretely.
type Env struct {
	Contracts map[common.Addr]*Contract
	ChainID   common.W256

	freshAddresses int
	freshGasVals   int
}

// NewEnv returns an Env with no contracts, ready to be populated by fetches.
func NewEnv(chainID common.W256) *Env {
	return &Env{
		Contracts: make(map[common.Addr]*Contract),
		ChainID:   chainID,
	}
}

// FreshAddress mints a new distinct symbolic-address index; two calls never
// return the same value within one Env's lifetime.
func (e *Env) FreshAddress() int {
	e.freshAddresses++
	return e.freshAddresses
}

// FreshGasVal mints a new distinct symbolic-gas-value index.
func (e *Env) FreshGasVal() int {
	e.freshGasVals++
	return e.freshGasVals
}
