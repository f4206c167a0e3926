// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package common implements the engine's fixed-width numeric types, byte-order
// conversions, and Keccak-256/SHA-256 hashing. These are the leaves of the
// expression IR: every Expr literal embeds one of the types defined here.
package common

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// W256 is an unsigned 256-bit integer with wrapping arithmetic, matching EVM
// word semantics. The zero value is 0.
type W256 struct {
	v uint256.Int
}

// ZeroW256 is the additive identity.
var ZeroW256 = W256{}

// OneW256 is the multiplicative identity.
var OneW256 = NewW256(1)

// NewW256 constructs a W256 from a uint64.
func NewW256(x uint64) W256 {
	var w W256
	w.v.SetUint64(x)
	return w
}

// W256FromBig truncates a big.Int to 256 bits, wrapping like EVM arithmetic.
func W256FromBig(x *big.Int) W256 {
	var w W256
	w.v.SetFromBig(x)
	return w
}

// Word256 parses up to 32 bytes big-endian, left-padding with zeros.
// Single-byte input is a fast path.
func Word256(bs []byte) W256 {
	if len(bs) == 1 {
		return NewW256(uint64(bs[0]))
	}
	var w W256
	w.v.SetBytes(bs)
	return w
}

// Word256Bytes renders w as a 32-byte big-endian array.
func Word256Bytes(w W256) [32]byte {
	return w.v.Bytes32()
}

// Big returns w as a *big.Int.
func (w W256) Big() *big.Int { return w.v.ToBig() }

// Uint64 truncates w to its low 64 bits.
func (w W256) Uint64() uint64 { return w.v.Uint64() }

// IsUint64 reports whether w fits in 64 bits without truncation.
func (w W256) IsUint64() bool { return w.v.IsUint64() }

// IsZero reports whether w == 0.
func (w W256) IsZero() bool { return w.v.IsZero() }

// Sign returns -1 if negative (never, for an unsigned type), 0 if zero, 1 otherwise.
func (w W256) Sign() int {
	if w.IsZero() {
		return 0
	}
	return 1
}

// Cmp performs unsigned comparison, returning -1, 0, or 1.
func (w W256) Cmp(o W256) int { return w.v.Cmp(&o.v) }

// Eq reports unsigned equality.
func (w W256) Eq(o W256) bool { return w.v.Eq(&o.v) }

// Lt reports unsigned less-than.
func (w W256) Lt(o W256) bool { return w.v.Lt(&o.v) }

// Gt reports unsigned greater-than.
func (w W256) Gt(o W256) bool { return w.v.Gt(&o.v) }

// Slt reports signed (two's complement) less-than.
func (w W256) Slt(o W256) bool { return w.v.Slt(&o.v) }

// Sgt reports signed (two's complement) greater-than.
func (w W256) Sgt(o W256) bool { return w.v.Sgt(&o.v) }

func binOp(f func(z, x, y *uint256.Int) *uint256.Int) func(W256, W256) W256 {
	return func(a, b W256) W256 {
		var z W256
		f(&z.v, &a.v, &b.v)
		return z
	}
}

// Add wraps on overflow, matching EVM ADD.
var Add = binOp((*uint256.Int).Add)

// Sub wraps on underflow, matching EVM SUB.
var Sub = binOp((*uint256.Int).Sub)

// Mul wraps on overflow, matching EVM MUL.
var Mul = binOp((*uint256.Int).Mul)

// Div is unsigned division; division by zero yields 0 (EVM DIV semantics).
var Div = binOp((*uint256.Int).Div)

// SDiv is signed division; division by zero yields 0 (EVM SDIV semantics).
var SDiv = binOp((*uint256.Int).SDiv)

// Mod is unsigned modulo; modulo by zero yields 0 (EVM MOD semantics).
var Mod = binOp((*uint256.Int).Mod)

// SMod is signed modulo; modulo by zero yields 0 (EVM SMOD semantics).
var SMod = binOp((*uint256.Int).SMod)

// And is bitwise AND.
var And = binOp((*uint256.Int).And)

// Or is bitwise OR.
var Or = binOp((*uint256.Int).Or)

// Xor is bitwise XOR.
var Xor = binOp((*uint256.Int).Xor)

// Not is bitwise NOT.
func Not(w W256) W256 {
	var z W256
	z.v.Not(&w.v)
	return z
}

// Shl shifts w left by the low 64 bits of shift (EVM SHL: shift counts >= 256 yield 0).
func Shl(shift, w W256) W256 {
	var z W256
	if !shift.v.IsUint64() || shift.v.Uint64() >= 256 {
		return z
	}
	z.v.Lsh(&w.v, uint(shift.v.Uint64()))
	return z
}

// Shr shifts w right (logical) by the low 64 bits of shift.
func Shr(shift, w W256) W256 {
	var z W256
	if !shift.v.IsUint64() || shift.v.Uint64() >= 256 {
		return z
	}
	z.v.Rsh(&w.v, uint(shift.v.Uint64()))
	return z
}

// Sar shifts w right (arithmetic, sign-extending) by the low 64 bits of shift.
func Sar(shift, w W256) W256 {
	var z W256
	n := uint(256)
	if shift.v.IsUint64() && shift.v.Uint64() < 256 {
		n = uint(shift.v.Uint64())
	}
	z.v.SRsh(&w.v, n)
	return z
}

// Exp computes base**exp with wrapping 256-bit arithmetic.
func Exp(base, exp W256) W256 {
	var z W256
	z.v.Exp(&base.v, &exp.v)
	return z
}

// SignExtend implements EVM SIGNEXTEND(byteNum, w): sign-extends w from the
// (byteNum+1)-th least-significant byte. byteNum >= 31 is the identity.
func SignExtend(byteNum, w W256) W256 {
	var z W256
	if !byteNum.v.IsUint64() || byteNum.v.Uint64() > 31 {
		z.v.Set(&w.v)
		return z
	}
	z.v.ExtendSign(&w.v, &byteNum.v)
	return z
}

// boolToW256 returns 1 for true and 0 for false (EVM comparison result convention).
func boolToW256(b bool) W256 {
	if b {
		return OneW256
	}
	return ZeroW256
}

// LT256 yields 1/0 for unsigned less-than.
func LT256(a, b W256) W256 { return boolToW256(a.Lt(b)) }

// GT256 yields 1/0 for unsigned greater-than.
func GT256(a, b W256) W256 { return boolToW256(a.Gt(b)) }

// LEq256 yields 1/0 for unsigned less-than-or-equal.
func LEq256(a, b W256) W256 { return boolToW256(!a.Gt(b)) }

// GEq256 yields 1/0 for unsigned greater-than-or-equal.
func GEq256(a, b W256) W256 { return boolToW256(!a.Lt(b)) }

// SLT256 yields 1/0 for signed less-than.
func SLT256(a, b W256) W256 { return boolToW256(a.Slt(b)) }

// SGT256 yields 1/0 for signed greater-than.
func SGT256(a, b W256) W256 { return boolToW256(a.Sgt(b)) }

// Eq256 yields 1/0 for equality.
func Eq256(a, b W256) W256 { return boolToW256(a.Eq(b)) }

// IsZero256 yields 1/0 for a == 0.
func IsZero256(a W256) W256 { return boolToW256(a.IsZero()) }

// MinW256 returns the unsigned minimum of a and b.
func MinW256(a, b W256) W256 {
	if a.Lt(b) {
		return a
	}
	return b
}

// MaxW256 returns the unsigned maximum of a and b.
func MaxW256(a, b W256) W256 {
	if a.Gt(b) {
		return a
	}
	return b
}

// AddMod computes (a+b) mod m using a 512-bit intermediate (EVM ADDMOD).
func AddMod(a, b, m W256) W256 {
	var z W256
	z.v.AddMod(&a.v, &b.v, &m.v)
	return z
}

// MulMod computes (a*b) mod m using a 512-bit intermediate (EVM MULMOD).
func MulMod(a, b, m W256) W256 {
	var z W256
	z.v.MulMod(&a.v, &b.v, &m.v)
	return z
}

// ByteAt returns the i-th byte of w, big-endian indexed from the most
// significant byte (EVM BYTE opcode addressed via IndexWord in the IR), or 0
// if i >= 32.
func ByteAt(i int, w W256) byte {
	if i < 0 || i > 31 {
		return 0
	}
	buf := w.v.Bytes32()
	return buf[i]
}

// JoinBytes composes 32 bytes big-endian into a W256 (EVM JoinBytes IR node).
func JoinBytes(bs [32]byte) W256 {
	var z W256
	z.v.SetBytes(bs[:])
	return z
}

// Hex renders w as "0x"-prefixed lowercase hex with no left-padding beyond a
// single zero digit, the engine's human-readable Show form.
func (w W256) Hex() string {
	if w.IsZero() {
		return "0x0"
	}
	return trimHex(w.v.Bytes())
}

func trimHex(bs []byte) string {
	// Strip a leading zero byte/nibble introduced only by the big-endian
	// encoding itself; Bytes() already omits leading zero bytes.
	s := fmt.Sprintf("%x", bs)
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return "0x" + s
}

// JSONHex renders w zero-padded to 64 nibbles, the engine's wire/JSON form.
func (w W256) JSONHex() string {
	return "0x" + PaddedHex(64, w.v.Bytes())
}

// String implements fmt.Stringer using the human-readable Show form.
func (w W256) String() string { return w.Hex() }

// MarshalJSON renders w as its "0x"-prefixed, zero-padded JSON form.
func (w W256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.JSONHex() + `"`), nil
}

// UnmarshalJSON parses a "0x"-prefixed hex JSON string into w.
func (w *W256) UnmarshalJSON(data []byte) error {
	s, err := unquoteHex(data)
	if err != nil {
		return err
	}
	bs, err := ParseHex(s)
	if err != nil {
		return err
	}
	*w = Word256(bs)
	return nil
}
