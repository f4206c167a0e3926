// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import "strings"

// AddrLength is the byte width of an Ethereum address (160 bits).
const AddrLength = 20

// Addr is a 160-bit Ethereum address, the engine's Word160.
type Addr [AddrLength]byte

// ZeroAddr is the all-zero address.
var ZeroAddr Addr

// AddrFromBytes left-pads or truncates bs to AddrLength bytes, big-endian.
func AddrFromBytes(bs []byte) Addr {
	var a Addr
	if len(bs) >= AddrLength {
		copy(a[:], bs[len(bs)-AddrLength:])
		return a
	}
	copy(a[AddrLength-len(bs):], bs)
	return a
}

// AddrFromW256 narrows a 256-bit word to its low 160 bits, the representation
// EVM uses for addresses pushed onto the stack.
func AddrFromW256(w W256) Addr {
	b32 := Word256Bytes(w)
	return AddrFromBytes(b32[12:])
}

// AddrToW256 widens a to a 256-bit word with the address in its low 160 bits,
// the inverse of AddrFromW256.
func AddrToW256(a Addr) W256 {
	var b32 [32]byte
	copy(b32[12:], a[:])
	return JoinBytes(b32)
}

// Word160Bytes returns a's 20-byte big-endian encoding.
func Word160Bytes(a Addr) []byte {
	out := make([]byte, AddrLength)
	copy(out, a[:])
	return out
}

// JSONHex renders a as "0x"-prefixed lowercase hex, zero-padded to 40 nibbles.
// The JSON form never carries EIP-55 casing.
func (a Addr) JSONHex() string {
	return "0x" + PaddedHex(40, a[:])
}

// String implements the human-readable Show form: EIP-55 checksum casing.
func (a Addr) String() string {
	return ToChecksumAddress(PaddedHex(40, a[:]))
}

// MarshalJSON renders a as its "0x"-prefixed, zero-padded JSON form.
func (a Addr) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.JSONHex() + `"`), nil
}

// UnmarshalJSON parses a "0x"-prefixed hex JSON string into a.
func (a *Addr) UnmarshalJSON(data []byte) error {
	s, err := unquoteHex(data)
	if err != nil {
		return err
	}
	bs, err := ParseHex(s)
	if err != nil {
		return err
	}
	*a = AddrFromBytes(bs)
	return nil
}

// ToChecksumAddress implements EIP-55: compute keccak256 of the lowercase hex
// ASCII digits, then upper-case each hex digit of the address whose
// corresponding keccak nibble is >= 8.
func ToChecksumAddress(hexAddr string) string {
	lower := strings.TrimPrefix(strings.ToLower(hexAddr), "0x")
	hash := Keccak256([]byte(lower))

	out := make([]byte, len(lower))
	for i, c := range []byte(lower) {
		if c >= '0' && c <= '9' {
			out[i] = c
			continue
		}
		// hash nibble i: even i -> high nibble of hash[i/2], odd -> low nibble.
		var nibble byte
		hb := hash[i/2]
		if i%2 == 0 {
			nibble = hb >> 4
		} else {
			nibble = hb & 0x0F
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		} else {
			out[i] = c
		}
	}
	return "0x" + string(out)
}
