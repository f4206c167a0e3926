// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "github.com/luxfi/symevm/common"

// MaybeLitWord extracts a concrete value from w if it is a Lit, or a WAddr
// wrapping a LitAddr, and reports whether the extraction succeeded.
func MaybeLitWord(w Word) (common.W256, bool) {
	switch v := w.(type) {
	case Lit:
		return v.Val, true
	case WAddr:
		if la, ok := v.Addr.(LitAddr); ok {
			return common.AddrToW256(la.Addr), true
		}
	}
	return common.W256{}, false
}

// MaybeLitByte extracts the concrete value from b if it is a LitByte.
func MaybeLitByte(b ByteTerm) (byte, bool) {
	if v, ok := b.(LitByte); ok {
		return v.Val, true
	}
	return 0, false
}

// MaybeLitAddr extracts the concrete address from a if it is a LitAddr.
func MaybeLitAddr(a AddrTerm) (common.Addr, bool) {
	if v, ok := a.(LitAddr); ok {
		return v.Addr, true
	}
	return common.Addr{}, false
}

// MaybeConcreteBuf extracts the byte slice from b if it is a ConcreteBuf.
func MaybeConcreteBuf(b BufTerm) ([]byte, bool) {
	if v, ok := b.(ConcreteBuf); ok {
		return v.Bytes, true
	}
	return nil, false
}

// MaybeConcreteStore extracts the slot map from s if it is a ConcreteStore.
func MaybeConcreteStore(s StorageTerm) (map[common.W256]common.W256, bool) {
	if v, ok := s.(ConcreteStore); ok {
		return v.Slots, true
	}
	return nil, false
}
