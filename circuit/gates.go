//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Primitive implements the universal two-input gate from which all
// other gates are composed.
type Primitive func(a, b Bit) Bit

// NandTable implements the NAND truth table. It is the only function
// that inspects bit values; everything else is composed from it.
func NandTable(a, b Bit) Bit {
	if a == HIGH && b == HIGH {
		return LOW
	}
	return HIGH
}

// Std is the gate set derived from NandTable.
var Std = NewGates(NandTable)

// Gates implements a gate set derived from a primitive.
type Gates struct {
	nand Primitive
}

// NewGates creates a gate set from the primitive nand.
func NewGates(nand Primitive) *Gates {
	if nand == nil {
		nand = NandTable
	}
	return &Gates{
		nand: nand,
	}
}

// Nand computes NAND(a, b).
func (g *Gates) Nand(a, b Bit) Bit {
	return g.nand(a, b)
}

// Not computes NOT(a) = NAND(a, a).
func (g *Gates) Not(a Bit) Bit {
	return g.nand(a, a)
}

// And computes AND(a, b) = NOT(NAND(a, b)).
func (g *Gates) And(a, b Bit) Bit {
	return g.Not(g.nand(a, b))
}

// Or computes OR(a, b) = NAND(NOT(a), NOT(b)).
func (g *Gates) Or(a, b Bit) Bit {
	return g.nand(g.Not(a), g.Not(b))
}

// Nor computes NOR(a, b) = NOT(OR(a, b)).
func (g *Gates) Nor(a, b Bit) Bit {
	return g.Not(g.Or(a, b))
}

// Xor computes XOR(a, b) from four NAND gates.
func (g *Gates) Xor(a, b Bit) Bit {
	ab := g.nand(a, b)
	return g.nand(g.nand(ab, a), g.nand(ab, b))
}

// Mux selects a if s is LOW and b if s is HIGH:
//
//	OR(AND(a, NOT(s)), AND(b, s))
func (g *Gates) Mux(a, b, s Bit) Bit {
	return g.Or(g.And(a, g.Not(s)), g.And(b, s))
}

// HalfAdder adds two bits.
func (g *Gates) HalfAdder(a, b Bit) Sum {
	return Sum{
		Sum:   g.Xor(a, b),
		Carry: g.And(a, b),
	}
}

// FullAdder adds bits a and b with the carry-in c. It is composed
// from two cascaded half adders.
func (g *Gates) FullAdder(a, b, c Bit) Sum {
	h1 := g.HalfAdder(a, b)
	h2 := g.HalfAdder(h1.Sum, c)

	return Sum{
		Sum:   h2.Sum,
		Carry: g.Or(h1.Carry, h2.Carry),
	}
}

// Func returns the gate function for the operation.
func (g *Gates) Func(op Operation) (Gate, error) {
	switch op {
	case NAND:
		return g.Nand, nil
	case NOT:
		return func(a, _ Bit) Bit {
			return g.Not(a)
		}, nil
	case AND:
		return g.And, nil
	case OR:
		return g.Or, nil
	case NOR:
		return g.Nor, nil
	case XOR:
		return g.Xor, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrOperation, op)
	}
}

// Nand computes NAND(a, b) with the standard gate set.
func Nand(a, b Bit) Bit {
	return Std.Nand(a, b)
}

// Not computes NOT(a) with the standard gate set.
func Not(a Bit) Bit {
	return Std.Not(a)
}

// And computes AND(a, b) with the standard gate set.
func And(a, b Bit) Bit {
	return Std.And(a, b)
}

// Or computes OR(a, b) with the standard gate set.
func Or(a, b Bit) Bit {
	return Std.Or(a, b)
}

// Nor computes NOR(a, b) with the standard gate set.
func Nor(a, b Bit) Bit {
	return Std.Nor(a, b)
}

// Xor computes XOR(a, b) with the standard gate set.
func Xor(a, b Bit) Bit {
	return Std.Xor(a, b)
}

// Mux computes the bit multiplexer with the standard gate set.
func Mux(a, b, s Bit) Bit {
	return Std.Mux(a, b, s)
}

// HalfAdder computes the half adder with the standard gate set.
func HalfAdder(a, b Bit) Sum {
	return Std.HalfAdder(a, b)
}

// FullAdder computes the full adder with the standard gate set.
func FullAdder(a, b, c Bit) Sum {
	return Std.FullAdder(a, b, c)
}
