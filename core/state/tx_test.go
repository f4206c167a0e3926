// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
)

func TestNewTxIsCreateWhenToIsNil(t *testing.T) {
	require := require.New(t)
	origin := common.AddrFromBytes([]byte{1})
	tx := NewTx(origin, nil, common.NewW256(0), common.NewW256(1), 21000)
	require.True(tx.IsCreate)
	require.Nil(tx.ToAddr)
}

func TestNewTxIsNotCreateWithTo(t *testing.T) {
	require := require.New(t)
	origin := common.AddrFromBytes([]byte{1})
	to := common.AddrFromBytes([]byte{2})
	tx := NewTx(origin, &to, common.NewW256(0), common.NewW256(1), 21000)
	require.False(tx.IsCreate)
	require.Equal(to, *tx.ToAddr)
}

func TestTxRevertRestoresSubstate(t *testing.T) {
	require := require.New(t)
	origin := common.AddrFromBytes([]byte{1})
	tx := NewTx(origin, nil, common.NewW256(0), common.NewW256(1), 21000)

	other := common.AddrFromBytes([]byte{9})
	tx.Substate.TouchAddress(other)
	require.True(tx.Substate.AccessedAddrs.Contains(other))

	tx.Revert()
	require.False(tx.Substate.AccessedAddrs.Contains(other))
}
