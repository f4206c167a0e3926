// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import "math/big"

// Word512 is an unsigned 512-bit integer, used only for the full-width
// intermediates ADDMOD/MULMOD would need if not delegated to uint256's own
// 512-bit-safe AddMod/MulMod (see the AddMod/MulMod functions). It is kept as a
// standalone type in the numeric family so callers outside the W256
// convenience path (e.g. a future bignum-checking simplifier) can work with
// the intermediate directly.
//
// Representation: two 256-bit halves, hi:lo, hi being the more significant.
type Word512 struct {
	Hi, Lo W256
}

// To512 zero-extends a W256 into the low half of a Word512.
func To512(w W256) Word512 {
	return Word512{Hi: ZeroW256, Lo: w}
}

// From512 truncates a Word512 to its low 256 bits.
func From512(w Word512) W256 {
	return w.Lo
}

// Add512 adds two Word512 values with 512-bit wrapping, schoolbook over the
// two 256-bit halves.
func Add512(a, b Word512) Word512 {
	lo := Add(a.Lo, b.Lo)
	carry := ZeroW256
	if lo.Lt(a.Lo) {
		carry = OneW256
	}
	hi := Add(Add(a.Hi, b.Hi), carry)
	return Word512{Hi: hi, Lo: lo}
}

// Mul512 multiplies two 256-bit values into a full 512-bit product with a
// single big.Int multiplication, split into hi:lo at bit 256, since uint256
// has no native widening multiply.
func Mul512(a, b W256) Word512 {
	prod := new(big.Int).Mul(a.Big(), b.Big())
	hi := new(big.Int).Rsh(prod, 256)
	lo := new(big.Int).And(prod, maxW256Mask())
	return Word512{Hi: W256FromBig(hi), Lo: W256FromBig(lo)}
}

// Mod512 reduces a 512-bit value modulo a 256-bit divisor. Division by zero
// yields zero, matching EVM ADDMOD/MULMOD's defined-as-zero convention.
func Mod512(w Word512, m W256) W256 {
	if m.IsZero() {
		return ZeroW256
	}
	full := new(big.Int).Lsh(w.Hi.Big(), 256)
	full.Or(full, w.Lo.Big())
	full.Mod(full, m.Big())
	return W256FromBig(full)
}

func maxW256Mask() *big.Int {
	one := big.NewInt(1)
	mask := new(big.Int).Lsh(one, 256)
	return mask.Sub(mask, one)
}
