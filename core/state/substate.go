// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/luxfi/symevm/common"
)

// StorageKey is an (address, slot) pair, the unit the accessed-storage-keys
// set (EIP-2929) tracks.
type StorageKey struct {
	Addr common.Addr
	Slot common.W256
}

// Substate accumulates the bookkeeping a transaction must restore on
// revert: which accounts were touched, which addresses/storage keys were
// accessed (for EIP-2929 warm/cold gas pricing), which contracts
// self-destructed, and the running refund counter.
type Substate struct {
	TouchedAccounts  mapset.Set[common.Addr]
	AccessedAddrs    mapset.Set[common.Addr]
	AccessedStorage  mapset.Set[StorageKey]
	SelfDestructs    mapset.Set[common.Addr]
	Refund           uint64
}

// NewSubstate returns an empty substate.
func NewSubstate() *Substate {
	return &Substate{
		TouchedAccounts: mapset.NewSet[common.Addr](),
		AccessedAddrs:   mapset.NewSet[common.Addr](),
		AccessedStorage: mapset.NewSet[StorageKey](),
		SelfDestructs:   mapset.NewSet[common.Addr](),
	}
}

// Snapshot returns a deep copy for restoring on frame revert.
func (s *Substate) Snapshot() *Substate {
	return &Substate{
		TouchedAccounts: s.TouchedAccounts.Clone(),
		AccessedAddrs:   s.AccessedAddrs.Clone(),
		AccessedStorage: s.AccessedStorage.Clone(),
		SelfDestructs:   s.SelfDestructs.Clone(),
		Refund:          s.Refund,
	}
}

// Restore replaces s's contents with snap's, used when a frame reverts and
// must discard whatever bookkeeping it accumulated.
func (s *Substate) Restore(snap *Substate) {
	s.TouchedAccounts = snap.TouchedAccounts
	s.AccessedAddrs = snap.AccessedAddrs
	s.AccessedStorage = snap.AccessedStorage
	s.SelfDestructs = snap.SelfDestructs
	s.Refund = snap.Refund
}

// TouchAddress marks addr as accessed, warming it for EIP-2929 pricing, and
// reports whether it was already warm.
func (s *Substate) TouchAddress(addr common.Addr) (alreadyWarm bool) {
	alreadyWarm = s.AccessedAddrs.Contains(addr)
	s.AccessedAddrs.Add(addr)
	s.TouchedAccounts.Add(addr)
	return alreadyWarm
}

// TouchStorageKey marks (addr,slot) as accessed and reports whether it was
// already warm.
func (s *Substate) TouchStorageKey(addr common.Addr, slot common.W256) (alreadyWarm bool) {
	key := StorageKey{Addr: addr, Slot: slot}
	alreadyWarm = s.AccessedStorage.Contains(key)
	s.AccessedStorage.Add(key)
	return alreadyWarm
}
