// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import (
	"fmt"
	"sort"

	"github.com/luxfi/symevm/common"
)

// ConcreteStore is a fully concrete storage map, the canonical constructor
// for concrete storage results.
type ConcreteStore struct{ Slots map[common.W256]common.W256 }

func (ConcreteStore) isStorage() {}
func (ConcreteStore) Sort() Sort { return SortStorage }
func (s ConcreteStore) String() string {
	keys := make([]common.W256, 0, len(s.Slots))
	for k := range s.Slots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Cmp(keys[j]) < 0 })
	out := "ConcreteStore("
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%s:%s", k.Hex(), s.Slots[k].Hex())
	}
	return out + ")"
}

// AbstractStore is a fully or partially symbolic storage map for the given
// address. LogicalID distinguishes independently-abstract stores for the
// same address across snapshots (e.g. pre/post a nested revert); zero means
// "the" store for Addr.
type AbstractStore struct {
	Addr      AddrTerm
	LogicalID int
	HasID     bool
}

func (AbstractStore) isStorage() {}
func (AbstractStore) Sort() Sort { return SortStorage }
func (s AbstractStore) String() string {
	if s.HasID {
		return fmt.Sprintf("AbstractStore(%s,%d)", s.Addr.String(), s.LogicalID)
	}
	return fmt.Sprintf("AbstractStore(%s)", s.Addr.String())
}

// GVarStorage is a Storage-sorted global variable introduced by
// common-subexpression elimination: a fresh placeholder standing in for a
// shared Storage subterm.
type GVarStorage struct{ Key int }

func (GVarStorage) isStorage() {}
func (GVarStorage) Sort() Sort { return SortStorage }
func (g GVarStorage) String() string { return fmt.Sprintf("GVarStorage(%d)", g.Key) }

// SLoad reads the value at key from store.
type SLoad struct {
	Key   Word
	Store StorageTerm
}

func (SLoad) isWord()    {}
func (SLoad) Sort() Sort { return SortEWord }
func (l SLoad) String() string {
	return fmt.Sprintf("SLoad(%s,%s)", l.Key.String(), l.Store.String())
}

// SStore writes val at key into prev, carrying its predecessor store.
type SStore struct {
	Key, Val Word
	Prev     StorageTerm
}

func (SStore) isStorage() {}
func (SStore) Sort() Sort { return SortStorage }
func (s SStore) String() string {
	return fmt.Sprintf("SStore(%s,%s,%s)", s.Key.String(), s.Val.String(), s.Prev.String())
}
