// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bytecode

import "fmt"

// GenericOp is a decoded opcode's parameter shape, parametric in the type of
// a PUSH immediate. Decoding raw bytes into a sequence of GenericOp values,
// and interpreting them, are both left to an external disassembler/
// interpreter; this type only fixes what shape each opcode's operand takes.
type GenericOp[A any] interface {
	isGenericOp()
	String() string
}

// OpPlain is any opcode with no operand (ADD, MSTORE, CALL, ...). The actual
// opcode byte is carried by the caller; this package only distinguishes
// operand shape.
type OpPlain[A any] struct{}

func (OpPlain[A]) isGenericOp()      {}
func (OpPlain[A]) String() string { return "OpPlain" }

// OpPush carries a PUSH instruction's immediate value.
type OpPush[A any] struct{ Arg A }

func (OpPush[A]) isGenericOp() {}
func (p OpPush[A]) String() string { return fmt.Sprintf("OpPush(%v)", p.Arg) }

// OpDup carries a DUP instruction's stack-depth argument, 1-16.
type OpDup[A any] struct{ N int }

func (OpDup[A]) isGenericOp() {}
func (d OpDup[A]) String() string { return fmt.Sprintf("OpDup(%d)", d.N) }

// OpSwap carries a SWAP instruction's stack-depth argument, 1-16.
type OpSwap[A any] struct{ N int }

func (OpSwap[A]) isGenericOp() {}
func (s OpSwap[A]) String() string { return fmt.Sprintf("OpSwap(%d)", s.N) }

// OpLog carries a LOG instruction's topic count, 0-4.
type OpLog[A any] struct{ N int }

func (OpLog[A]) isGenericOp() {}
func (l OpLog[A]) String() string { return fmt.Sprintf("OpLog(%d)", l.N) }

// OpUnknown captures an invalid opcode byte.
type OpUnknown[A any] struct{ Byte byte }

func (OpUnknown[A]) isGenericOp() {}
func (u OpUnknown[A]) String() string { return fmt.Sprintf("OpUnknown(0x%02x)", u.Byte) }
