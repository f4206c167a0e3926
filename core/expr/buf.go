// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "fmt"

// ConcreteBuf is a fully concrete byte buffer. Reads at indices >= len(Bytes)
// are zero. This is the canonical constructor for concrete buffer results.
type ConcreteBuf struct{ Bytes []byte }

func (ConcreteBuf) isBuf()    {}
func (ConcreteBuf) Sort() Sort { return SortBuf }
func (b ConcreteBuf) String() string {
	return fmt.Sprintf("ConcreteBuf(%x)", b.Bytes)
}

// AbstractBuf is a fully symbolic buffer: every index reads a fresh
// symbolic byte.
type AbstractBuf struct{ Name string }

func (AbstractBuf) isBuf()    {}
func (AbstractBuf) Sort() Sort { return SortBuf }
func (b AbstractBuf) String() string { return fmt.Sprintf("AbstractBuf(%q)", b.Name) }

// GVarBuf is a Buf-sorted global variable introduced by common-subexpression
// elimination: a fresh placeholder standing in for a shared Buf subterm.
type GVarBuf struct{ Key int }

func (GVarBuf) isBuf()    {}
func (GVarBuf) Sort() Sort { return SortBuf }
func (g GVarBuf) String() string { return fmt.Sprintf("GVarBuf(%d)", g.Key) }

// ReadWord reads a 32-byte word from buf at the given offset.
type ReadWord struct {
	Offset Word
	Buf    BufTerm
}

func (ReadWord) isWord()    {}
func (ReadWord) Sort() Sort { return SortEWord }
func (r ReadWord) String() string {
	return fmt.Sprintf("ReadWord(%s,%s)", r.Offset.String(), r.Buf.String())
}

// ReadByte reads a single byte from buf at the given index.
type ReadByte struct {
	Index Word
	Buf   BufTerm
}

func (ReadByte) isByte()    {}
func (ReadByte) Sort() Sort { return SortByte }
func (r ReadByte) String() string {
	return fmt.Sprintf("ReadByte(%s,%s)", r.Index.String(), r.Buf.String())
}

// WriteWord writes val at offset into prev. Every write-form carries its
// predecessor buffer explicitly, so a chain of writes can always be walked
// back to its originating concrete or abstract buffer.
type WriteWord struct {
	Offset Word
	Val    Word
	Prev   BufTerm
}

func (WriteWord) isBuf()    {}
func (WriteWord) Sort() Sort { return SortBuf }
func (w WriteWord) String() string {
	return fmt.Sprintf("WriteWord(%s,%s,%s)", w.Offset.String(), w.Val.String(), w.Prev.String())
}

// WriteByte writes val at index into prev.
type WriteByte struct {
	Index Word
	Val   ByteTerm
	Prev  BufTerm
}

func (WriteByte) isBuf()    {}
func (WriteByte) Sort() Sort { return SortBuf }
func (w WriteByte) String() string {
	return fmt.Sprintf("WriteByte(%s,%s,%s)", w.Index.String(), w.Val.String(), w.Prev.String())
}

// CopySlice copies size bytes from src (starting at srcOffset) into dst
// (starting at dstOffset), carrying dst as the write-form's predecessor.
type CopySlice struct {
	SrcOffset, DstOffset, Size Word
	Src, Dst                   BufTerm
}

func (CopySlice) isBuf()    {}
func (CopySlice) Sort() Sort { return SortBuf }
func (c CopySlice) String() string {
	return fmt.Sprintf("CopySlice(%s,%s,%s,%s,%s)",
		c.SrcOffset.String(), c.DstOffset.String(), c.Size.String(), c.Src.String(), c.Dst.String())
}

// BufLength is the logical length of a buffer. A simplifier is expected to
// maintain BufLength(WriteByte(i,v,b)) = max(BufLength(b), i+1).
type BufLength struct{ Buf BufTerm }

func (BufLength) isWord()    {}
func (BufLength) Sort() Sort { return SortEWord }
func (b BufLength) String() string { return fmt.Sprintf("BufLength(%s)", b.Buf.String()) }

// Keccak hashes a Buf with Keccak-256, yielding an EWord. The raw
// constructor is always available; NewKeccak below reduces a Keccak over a
// ConcreteBuf straight to its Lit digest.
type Keccak struct{ Buf BufTerm }

func (Keccak) isWord()    {}
func (Keccak) Sort() Sort { return SortEWord }
func (k Keccak) String() string { return fmt.Sprintf("Keccak(%s)", k.Buf.String()) }

// SHA256 hashes a Buf with SHA-256, yielding an EWord.
type SHA256 struct{ Buf BufTerm }

func (SHA256) isWord()    {}
func (SHA256) Sort() Sort { return SortEWord }
func (s SHA256) String() string { return fmt.Sprintf("SHA256(%s)", s.Buf.String()) }
