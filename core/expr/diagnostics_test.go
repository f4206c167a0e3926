// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
)

var exprSpew = spew.ConfigState{DisablePointerAddresses: true, DisableCapacities: true}

// TestSmartConstructorsFoldToExpectedLit compares a smart constructor's
// folded output over concrete operands against the Lit it should equal,
// printing both trees via spew on mismatch for a readable diff.
func TestSmartConstructorsFoldToExpectedLit(t *testing.T) {
	require := require.New(t)

	buf := ConcreteBuf{Bytes: []byte("hello")}
	got := NewKeccak(buf)
	want := Lit{Val: common.Keccak256Word([]byte("hello"))}
	require.Truef(Equal(got, want), "Keccak folding mismatch:\ngot:  %s\nwant: %s",
		exprSpew.Sdump(got), exprSpew.Sdump(want))

	addr := common.AddrFromBytes([]byte{1, 2, 3})
	gotAddr := NewWAddr(LitAddr{Addr: addr})
	wantAddr := Lit{Val: common.AddrToW256(addr)}
	require.Truef(Equal(gotAddr, wantAddr), "WAddr folding mismatch:\ngot:  %s\nwant: %s",
		exprSpew.Sdump(gotAddr), exprSpew.Sdump(wantAddr))
}
