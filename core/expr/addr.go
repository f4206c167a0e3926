// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import (
	"fmt"

	"github.com/luxfi/symevm/common"
)

// LitAddr is a concrete 160-bit address.
type LitAddr struct{ Addr common.Addr }

func (LitAddr) isAddr()    {}
func (LitAddr) Sort() Sort { return SortEAddr }
func (a LitAddr) String() string {
	return fmt.Sprintf("LitAddr(%s)", a.Addr.JSONHex())
}

// SymAddr is a symbolic address distinguished only by name. SymAddr values
// must be provably distinct from every LitAddr in the same context; that
// constraint is generated by the constraint encoder, not enforced
// structurally here.
type SymAddr struct{ Name string }

func (SymAddr) isAddr()          {}
func (SymAddr) Sort() Sort       { return SortEAddr }
func (a SymAddr) String() string { return fmt.Sprintf("SymAddr(%q)", a.Name) }
