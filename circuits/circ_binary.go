//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"github.com/markkurossi/logic/circuit"
)

// Exp lifts a gate function to operate elementwise on two words.
type Exp struct {
	Op    circuit.Operation
	Width int
	gate  circuit.Gate
}

// Exp defines a width bits wide lifter for the gate function op.
func (b *Builder) Exp(op circuit.Operation, width int) (*Exp, error) {
	if err := checkWidth(op.String(), width); err != nil {
		return nil, err
	}
	gate, err := b.Gates.Func(op)
	if err != nil {
		return nil, err
	}
	return &Exp{
		Op:    op,
		Width: width,
		gate:  gate,
	}, nil
}

// Eval computes r[i]=op(x[i], y[i]). If y is omitted, it defaults to
// x. Unary gates ignore y.
func (e *Exp) Eval(x circuit.Word, y ...circuit.Word) (circuit.Word, error) {
	args := append([]circuit.Word{x}, y...)
	if len(args) > 2 {
		return circuit.Word{}, errArity(e.Op, len(args))
	}
	if err := checkArgs(e.Op.String(), e.Width, args...); err != nil {
		return circuit.Word{}, err
	}
	o := args[len(args)-1]

	return circuit.MakeWord(e.Width, func(i int) circuit.Bit {
		return e.gate(x.At(i), o.At(i))
	})
}

// Bitwise applies the gate function op elementwise to the words x and
// y. If y is omitted, it defaults to x.
func Bitwise(op circuit.Operation, x circuit.Word, y ...circuit.Word) (
	circuit.Word, error) {

	exp, err := std.Exp(op, x.Width())
	if err != nil {
		return circuit.Word{}, err
	}
	return exp.Eval(x, y...)
}
