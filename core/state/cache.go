// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"
	"sort"

	"github.com/VictoriaMetrics/fastcache"
	lru "github.com/hashicorp/golang-lru"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/expr"
	"github.com/luxfi/symevm/metrics"
)

// CodeLocation identifies a branch point within a contract's code: the
// contract address and the program counter of the branching instruction.
type CodeLocation struct {
	Addr common.Addr
	PC   uint32
}

func (c CodeLocation) key() string { return fmt.Sprintf("%s:%d", c.Addr.JSONHex(), c.PC) }

// Cache is the commutative monoid described for fetched contracts and
// taken-path decisions. The canonical maps are the source of truth and are
// what Merge operates over; fetchedLRU and pathFast are bounded mirrors
// consulted first for a hit, giving an LRU/fastcache eviction policy over an
// otherwise-unbounded logical cache without changing correctness (a miss in
// the bounded mirror always falls back to the canonical map).
type Cache struct {
	fetched    map[string]expr.C
	fetchedLRU *lru.Cache

	path     map[string]bool
	pathFast *fastcache.Cache
}

// NewCache builds an empty Cache with the given bounded-mirror capacities.
func NewCache(lruSize int, pathFastBytes int) *Cache {
	l, err := lru.New(lruSize)
	if err != nil {
		// Only returns an error for size <= 0; a fixed positive constant
		// never triggers it, so this is an internal-error condition.
		panic(fmt.Sprintf("state: invalid LRU size %d: %v", lruSize, err))
	}
	return &Cache{
		fetched:    make(map[string]expr.C),
		fetchedLRU: l,
		path:       make(map[string]bool),
		pathFast:   fastcache.New(pathFastBytes),
	}
}

// Identity returns the two-sided identity element for Merge: an empty Cache.
func Identity() *Cache {
	return NewCache(1024, 4*1024*1024)
}

// GetFetched looks up a's contract, consulting the bounded mirror first.
func (c *Cache) GetFetched(a common.Addr) (expr.C, bool) {
	key := a.JSONHex()
	if v, ok := c.fetchedLRU.Get(key); ok {
		metrics.RecordCacheLookup(metrics.ViewFetched, true)
		return v.(expr.C), true
	}
	v, ok := c.fetched[key]
	metrics.RecordCacheLookup(metrics.ViewFetched, ok)
	return v, ok
}

// PutFetched records a's contract.
func (c *Cache) PutFetched(a common.Addr, contract expr.C) {
	key := a.JSONHex()
	c.fetched[key] = contract
	c.fetchedLRU.Add(key, contract)
}

// GetPath looks up whether loc's branch has previously resolved to taken.
func (c *Cache) GetPath(loc CodeLocation) (bool, bool) {
	key := loc.key()
	if v := c.pathFast.Get(nil, []byte(key)); v != nil {
		metrics.RecordCacheLookup(metrics.ViewPath, true)
		return v[0] != 0, true
	}
	v, ok := c.path[key]
	metrics.RecordCacheLookup(metrics.ViewPath, ok)
	return v, ok
}

// PutPath records that loc's branch resolved to taken.
func (c *Cache) PutPath(loc CodeLocation, taken bool) {
	key := loc.key()
	c.path[key] = taken
	var b byte
	if taken {
		b = 1
	}
	c.pathFast.Set([]byte(key), []byte{b})
}

// Merge combines c and other into a new Cache: path maps union (later wins
// on collision, which in a well-formed trace means agreement), and fetched
// contracts union via unifyCachedContract.
func (c *Cache) Merge(other *Cache) *Cache {
	out := NewCache(max(1, c.fetchedLRU.Len()+other.fetchedLRU.Len()), 4*1024*1024)

	for k, v := range c.fetched {
		out.fetched[k] = v
		out.fetchedLRU.Add(k, v)
	}
	for k, v := range other.fetched {
		if existing, ok := out.fetched[k]; ok {
			merged := unifyCachedContract(existing, v)
			out.fetched[k] = merged
			out.fetchedLRU.Add(k, merged)
			continue
		}
		out.fetched[k] = v
		out.fetchedLRU.Add(k, v)
	}

	for k, v := range c.path {
		out.path[k] = v
		out.pathFast.Set([]byte(k), boolByte(v))
	}
	for k, v := range other.path {
		out.path[k] = v
		out.pathFast.Set([]byte(k), boolByte(v))
	}

	return out
}

func boolByte(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// unifyCachedContract keeps a's shape but replaces its storage with the
// union of a's and b's concrete slots when both are concrete; otherwise a's
// storage is kept unchanged, since a symbolic store cannot be merged with
// another without losing information.
func unifyCachedContract(a, b expr.C) expr.C {
	as, aok := expr.MaybeConcreteStore(a.Storage)
	bs, bok := expr.MaybeConcreteStore(b.Storage)
	if !aok || !bok {
		return a
	}
	merged := make(map[common.W256]common.W256, len(as)+len(bs))
	for k, v := range as {
		merged[k] = v
	}
	for k, v := range bs {
		merged[k] = v
	}
	a.Storage = expr.ConcreteStore{Slots: merged}
	return a
}

// sortedKeys is a small helper used by tests to assert deterministic
// iteration order over the canonical maps.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
