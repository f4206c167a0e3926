// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "fmt"

// C is the reduced contract view embedded in End-state terms: just enough
// of a contract's shape to describe a terminal Success payload. This is
// distinct from the full runtime Contract record (core/state.Contract),
// which additionally carries the op-index map and decoded op stream used by
// the interpreter; that extra machinery has no business living in an
// immutable, structurally-shared expression term.
type C struct {
	Code         BufTerm
	Storage      StorageTerm
	TStorage     StorageTerm
	Balance      Word
	Nonce        Word
}

func (C) isContract() {}
func (C) Sort() Sort  { return SortEContract }
func (c C) String() string {
	return fmt.Sprintf("C(code=%s,storage=%s,tstorage=%s,balance=%s,nonce=%s)",
		c.Code.String(), c.Storage.String(), c.TStorage.String(), c.Balance.String(), c.Nonce.String())
}
