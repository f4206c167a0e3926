// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256EmptyInput(t *testing.T) {
	require := require.New(t)
	got := Keccak256(nil)
	require.Equal("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(got[:]))
}

func TestKeccak256WordMatchesDigest(t *testing.T) {
	require := require.New(t)
	digest := Keccak256([]byte("hello"))
	require.True(Keccak256Word([]byte("hello")).Eq(Word256(digest[:])))
}
