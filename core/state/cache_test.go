// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/expr"
)

func TestCacheFetchedRoundTrip(t *testing.T) {
	require := require.New(t)
	c := NewCache(8, 1024)

	addr := common.AddrFromBytes([]byte{1})
	_, ok := c.GetFetched(addr)
	require.False(ok)

	contract := expr.C{
		Code:     expr.ConcreteBuf{Bytes: []byte{0x60, 0x00}},
		Storage:  expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		TStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:  expr.Lit{Val: common.NewW256(0)},
		Nonce:    expr.Lit{Val: common.NewW256(0)},
	}
	c.PutFetched(addr, contract)
	got, ok := c.GetFetched(addr)
	require.True(ok)
	require.Equal(contract.String(), got.String())
}

func TestCachePathRoundTrip(t *testing.T) {
	require := require.New(t)
	c := NewCache(8, 1024)
	loc := CodeLocation{Addr: common.AddrFromBytes([]byte{2}), PC: 10}

	_, ok := c.GetPath(loc)
	require.False(ok)

	c.PutPath(loc, true)
	taken, ok := c.GetPath(loc)
	require.True(ok)
	require.True(taken)

	c.PutPath(loc, false)
	taken, ok = c.GetPath(loc)
	require.True(ok)
	require.False(taken)
}

func TestIdentityIsTwoSidedMergeIdentity(t *testing.T) {
	require := require.New(t)
	c := NewCache(8, 1024)
	addr := common.AddrFromBytes([]byte{3})
	loc := CodeLocation{Addr: addr, PC: 1}
	contract := expr.C{
		Code:     expr.ConcreteBuf{Bytes: []byte{1}},
		Storage:  expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		TStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:  expr.Lit{Val: common.NewW256(1)},
		Nonce:    expr.Lit{Val: common.NewW256(0)},
	}
	c.PutFetched(addr, contract)
	c.PutPath(loc, true)

	left := c.Merge(Identity())
	right := Identity().Merge(c)

	for _, merged := range []*Cache{left, right} {
		got, ok := merged.GetFetched(addr)
		require.True(ok)
		require.Equal(contract.String(), got.String())
		taken, ok := merged.GetPath(loc)
		require.True(ok)
		require.True(taken)
	}
}

func TestMergeUnifiesConcreteStores(t *testing.T) {
	require := require.New(t)
	addr := common.AddrFromBytes([]byte{4})

	a := NewCache(8, 1024)
	a.PutFetched(addr, expr.C{
		Code:     expr.ConcreteBuf{},
		Storage:  expr.ConcreteStore{Slots: map[common.W256]common.W256{common.NewW256(1): common.NewW256(100)}},
		TStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:  expr.Lit{Val: common.NewW256(0)},
		Nonce:    expr.Lit{Val: common.NewW256(0)},
	})

	b := NewCache(8, 1024)
	b.PutFetched(addr, expr.C{
		Code:     expr.ConcreteBuf{},
		Storage:  expr.ConcreteStore{Slots: map[common.W256]common.W256{common.NewW256(2): common.NewW256(200)}},
		TStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:  expr.Lit{Val: common.NewW256(0)},
		Nonce:    expr.Lit{Val: common.NewW256(0)},
	})

	merged := a.Merge(b)
	got, ok := merged.GetFetched(addr)
	require.True(ok)
	slots, ok := expr.MaybeConcreteStore(got.Storage)
	require.True(ok)
	require.Equal(common.NewW256(100), slots[common.NewW256(1)])
	require.Equal(common.NewW256(200), slots[common.NewW256(2)])
}

func TestMergeKeepsSymbolicStoreOnConflict(t *testing.T) {
	require := require.New(t)
	addr := common.AddrFromBytes([]byte{5})

	a := NewCache(8, 1024)
	symbolic := expr.C{
		Code:     expr.ConcreteBuf{},
		Storage:  expr.AbstractStore{Addr: expr.LitAddr{Addr: addr}},
		TStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:  expr.Lit{Val: common.NewW256(0)},
		Nonce:    expr.Lit{Val: common.NewW256(0)},
	}
	a.PutFetched(addr, symbolic)

	b := NewCache(8, 1024)
	b.PutFetched(addr, expr.C{
		Code:     expr.ConcreteBuf{},
		Storage:  expr.ConcreteStore{Slots: map[common.W256]common.W256{common.NewW256(1): common.NewW256(1)}},
		TStorage: expr.ConcreteStore{Slots: map[common.W256]common.W256{}},
		Balance:  expr.Lit{Val: common.NewW256(0)},
		Nonce:    expr.Lit{Val: common.NewW256(0)},
	})

	merged := a.Merge(b)
	got, ok := merged.GetFetched(addr)
	require.True(ok)
	require.Equal(symbolic.String(), got.String())
}

func TestCodeLocationKeyDeterministic(t *testing.T) {
	require := require.New(t)
	l1 := CodeLocation{Addr: common.AddrFromBytes([]byte{9}), PC: 42}
	l2 := CodeLocation{Addr: common.AddrFromBytes([]byte{9}), PC: 42}
	require.Equal(l1.key(), l2.key())

	keys := sortedKeys(map[string]bool{"b": true, "a": false, "c": true})
	require.Equal([]string{"a", "b", "c"}, keys)
}
