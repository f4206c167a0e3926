// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package effect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/evmerrors"
	"github.com/luxfi/symevm/core/expr"
	"github.com/luxfi/symevm/core/prop"
)

func TestEffectVariantsSatisfyInterface(t *testing.T) {
	require := require.New(t)
	var effects = []Effect{
		PleaseFetchContract{Addr: expr.LitAddr{Addr: common.ZeroAddr}, BaseState: "latest"},
		PleaseFetchSlot{Addr: expr.LitAddr{Addr: common.ZeroAddr}, Slot: expr.Lit{Val: common.NewW256(0)}},
		PleaseAskSMT{
			Cond:        expr.Lit{Val: common.OneW256},
			Constraints: []prop.Prop{prop.PBool{Val: true}},
		},
		PleaseDoFFI{Argv: []string{"echo", "hi"}},
		PleaseChoosePath{Cond: expr.Lit{Val: common.OneW256}},
	}
	require.Len(effects, 5)
}

func TestVMResultVariantsSatisfyInterface(t *testing.T) {
	require := require.New(t)
	var results = []VMResult{
		Unfinished{Reason: evmerrors.MaxIterationsReached{PC: 1, Addr: "0x0"}},
		VMFailure{Err: evmerrors.StackUnderrun{}},
		VMSuccess{ReturnBuf: expr.ConcreteBuf{Bytes: []byte{1}}},
		HandleEffect{Eff: PleaseDoFFI{Argv: []string{"ls"}}},
	}
	require.Len(results, 4)
}

func TestAskSMTAnswerValues(t *testing.T) {
	require := require.New(t)
	require.Equal(SMTAnswer(0), SMTUnknown)
	require.NotEqual(SMTCaseTrue, SMTCaseFalse)
}
