// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "fmt"

// LitByte is a concrete byte literal, the canonical constructor for
// concrete byte results.
type LitByte struct{ Val byte }

func (LitByte) isByte()          {}
func (LitByte) Sort() Sort       { return SortByte }
func (b LitByte) String() string { return fmt.Sprintf("LitByte(0x%02x)", b.Val) }

// IndexWord extracts the byte at index i (big-endian, 0 = most significant)
// of word w.
type IndexWord struct {
	I int
	W Word
}

func (IndexWord) isByte()    {}
func (IndexWord) Sort() Sort { return SortByte }
func (x IndexWord) String() string {
	return fmt.Sprintf("IndexWord(%d,%s)", x.I, x.W.String())
}

// EqByte compares two bytes, yielding an EWord 0/1.
type EqByte struct{ A, B ByteTerm }

func (EqByte) isWord()    {}
func (EqByte) Sort() Sort { return SortEWord }
func (e EqByte) String() string {
	return fmt.Sprintf("EqByte(%s,%s)", e.A.String(), e.B.String())
}

// JoinBytes composes 32 bytes, most significant first, into a single EWord.
type JoinBytes struct{ Bytes [32]ByteTerm }

func (JoinBytes) isWord()    {}
func (JoinBytes) Sort() Sort { return SortEWord }
func (j JoinBytes) String() string {
	s := "JoinBytes("
	for i, b := range j.Bytes {
		if i > 0 {
			s += ","
		}
		s += b.String()
	}
	return s + ")"
}
