// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes bs with Keccak-256 (the pre-standardization variant the
// EVM uses, as distinct from NIST SHA3-256), returning a 32-byte digest.
func Keccak256(bs []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(bs)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Keccak256Word hashes bs and interprets the digest big-endian as a W256,
// the engine's primary hash-to-word primitive.
func Keccak256Word(bs []byte) W256 {
	digest := Keccak256(bs)
	return Word256(digest[:])
}

// SHA256Word hashes bs with standard SHA-256 and interprets the digest
// big-endian as a W256 (the EVM SHA256 precompile's primitive).
func SHA256Word(bs []byte) W256 {
	digest := sha256.Sum256(bs)
	return Word256(digest[:])
}
