// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestW64HexUnpadded(t *testing.T) {
	require := require.New(t)
	require.Equal("0x0", NewW64(0).Hex())
	require.Equal("0xa", NewW64(0xa).Hex())
	require.Equal("0x100", NewW64(0x100).Hex())
}

func TestW64JSONRoundTrip(t *testing.T) {
	require := require.New(t)
	in := NewW64(0xdeadbeef)
	bs, err := json.Marshal(in)
	require.NoError(err)

	var out W64
	require.NoError(json.Unmarshal(bs, &out))
	require.Equal(in, out)
}
