// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symevm/core/expr"
)

func TestContractCodeVariants(t *testing.T) {
	require := require.New(t)

	var codes = []ContractCode{
		Unknown{Addr: expr.SymAddr{Name: "target"}},
		Init{Bytes: []byte{0x60, 0x00}, DataSection: expr.AbstractBuf{Name: "ctorArgs"}},
		Runtime{Code: ConcreteRuntime{Bytes: []byte{0x00}}},
		Runtime{Code: SymbolicRuntime{Bytes: []expr.ByteTerm{expr.LitByte{Val: 0x60}}}},
	}
	for _, c := range codes {
		require.NotEmpty(c.String())
	}
}

func TestGenericOpVariants(t *testing.T) {
	require := require.New(t)

	var ops = []GenericOp[int]{
		OpPlain[int]{},
		OpPush[int]{Arg: 42},
		OpDup[int]{N: 3},
		OpSwap[int]{N: 5},
		OpLog[int]{N: 2},
		OpUnknown[int]{Byte: 0xfe},
	}
	for _, op := range ops {
		require.NotEmpty(op.String())
	}
}
