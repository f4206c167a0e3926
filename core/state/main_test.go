// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain uses goleak to verify tests in this package do not leak goroutines;
// nothing in this package's VM/Frame/Cache value types spawns one, so no
// options are needed.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
