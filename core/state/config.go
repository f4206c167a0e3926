// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "github.com/luxfi/symevm/common"

// RuntimeConfig holds the knobs a driver sets before starting a run:
// whether FFI cheat codes may execute, an optional forced caller override
// for every CALL, whether that override resets between top-level calls, the
// base state a fetch falls back to when a contract has never been seen
// (e.g. "empty" vs "latest-fork RPC snapshot" in a live harness), and the
// loop-iteration bound past which execution reports MaxIterationsReached
// instead of looping forever. Populated by cmd/symevm/config from flags/env.
type RuntimeConfig struct {
	AllowFFI       bool
	OverrideCaller *common.Addr
	ResetCaller    bool
	BaseState      string
	MaxIterations  int
}

// DefaultRuntimeConfig returns the conservative default: no FFI, no caller
// override, an empty base state, and a generous but finite iteration bound.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		AllowFFI:      false,
		BaseState:     "empty",
		MaxIterations: 100_000,
	}
}
