// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/expr"
)

func TestPushPopRestoresSubstateAndContracts(t *testing.T) {
	require := require.New(t)
	sub := NewSubstate()
	addrA := common.AddrFromBytes([]byte{1})
	contracts := map[common.Addr]*Contract{
		addrA: {Balance: expr.Lit{Val: common.NewW256(100)}},
	}

	f := Push(nil, FrameState{Contract: addrA}, sub, map[common.Addr]Contract{addrA: *contracts[addrA]})

	sub.TouchAddress(addrA)
	contracts[addrA].Balance = expr.Lit{Val: common.NewW256(0)}

	f.Pop(sub, contracts)
	require.False(sub.AccessedAddrs.Contains(addrA))
	require.Equal(expr.Lit{Val: common.NewW256(100)}, contracts[addrA].Balance)
}
