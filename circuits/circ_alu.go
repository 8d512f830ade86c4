//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/logic/circuit"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Function specifies an ALU function.
type Function byte

// ALU functions.
const (
	FnOR Function = iota
	FnAND
	FnADD
	FnSUB
)

// Functions lists all ALU functions.
var Functions = []Function{FnOR, FnAND, FnADD, FnSUB}

// SelectWidth defines the width of the function select word.
const SelectWidth = 3

// Function select bits (f0, f1, f2).
var selects = map[Function][SelectWidth]circuit.Bit{
	FnOR:  {circuit.LOW, circuit.LOW, circuit.LOW},
	FnAND: {circuit.LOW, circuit.HIGH, circuit.LOW},
	FnADD: {circuit.LOW, circuit.LOW, circuit.HIGH},
	FnSUB: {circuit.HIGH, circuit.LOW, circuit.HIGH},
}

func (f Function) String() string {
	switch f {
	case FnOR:
		return "OR"
	case FnAND:
		return "AND"
	case FnADD:
		return "ADD"
	case FnSUB:
		return "SUB"
	default:
		return fmt.Sprintf("{Function %d}", f)
	}
}

// Select returns the function select word of the function.
func (f Function) Select() circuit.Word {
	bits, ok := selects[f]
	if !ok {
		panic(fmt.Sprintf("unsupported function %s", f))
	}
	return circuit.MustWord(bits[:]...)
}

// ParseFunction parses the ALU function name.
func ParseFunction(name string) (Function, error) {
	for _, f := range Functions {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrFunction, name)
}

// Decode decodes the function select word.
func Decode(sel circuit.Word) (Function, error) {
	if sel.Width() != SelectWidth {
		return 0, fmt.Errorf("%w: width=%d", ErrFunction, sel.Width())
	}
	for _, f := range Functions {
		bits := selects[f]
		if sel.Equal(circuit.MustWord(bits[:]...)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrFunction, sel.Binary())
}

// ALU implements an arithmetic-logic unit computing OR, AND, ADD, and
// SUB.
type ALU struct {
	Width int
	not   *Exp
	and   *Exp
	or    *Exp
	add   *Adder
	mux   *MUX
}

// ALU defines a width bits wide ALU.
func (b *Builder) ALU(width int) (*ALU, error) {
	if err := checkWidth("alu", width); err != nil {
		return nil, err
	}
	alu := &ALU{
		Width: width,
	}
	var err error

	alu.not, err = b.Exp(circuit.NOT, width)
	if err != nil {
		return nil, err
	}
	alu.and, err = b.Exp(circuit.AND, width)
	if err != nil {
		return nil, err
	}
	alu.or, err = b.Exp(circuit.OR, width)
	if err != nil {
		return nil, err
	}
	alu.add, err = b.Adder(width)
	if err != nil {
		return nil, err
	}
	alu.mux, err = b.MUX(width)
	if err != nil {
		return nil, err
	}
	return alu, nil
}

// Trace holds the intermediate values of an ALU evaluation.
type Trace struct {
	Function Function
	Op1      circuit.Word
	Op2      circuit.Word
	Operand  circuit.Word
	Logic    circuit.Word
	Sum      circuit.Word
	Carry    circuit.Bit
	Result   circuit.Word
}

// Eval computes the function sel with the operands x and y.
func (alu *ALU) Eval(sel, x, y circuit.Word) (circuit.Word, error) {
	t, err := alu.Trace(sel, x, y)
	if err != nil {
		return circuit.Word{}, err
	}
	return t.Result, nil
}

// Trace computes the function sel with the operands x and y and
// returns all intermediate values.
func (alu *ALU) Trace(sel, x, y circuit.Word) (*Trace, error) {
	fn, err := Decode(sel)
	if err != nil {
		return nil, err
	}
	if err := checkArgs("alu", alu.Width, x, y); err != nil {
		return nil, err
	}
	f0 := sel.At(0)
	f1 := sel.At(1)
	f2 := sel.At(2)

	// f0 complements y and supplies the carry-in.
	notY, err := alu.not.Eval(y)
	if err != nil {
		return nil, err
	}
	operand, err := alu.mux.Eval(y, notY, f0)
	if err != nil {
		return nil, err
	}

	// Logic path: f1 selects AND over OR.
	and, err := alu.and.Eval(x, operand)
	if err != nil {
		return nil, err
	}
	or, err := alu.or.Eval(x, operand)
	if err != nil {
		return nil, err
	}
	logic, err := alu.mux.Eval(or, and, f1)
	if err != nil {
		return nil, err
	}

	// Arithmetic path. Both mux inputs are the sum so f1 has no
	// effect here.
	sum, carry, err := alu.add.Eval(x, operand, f0)
	if err != nil {
		return nil, err
	}
	arith, err := alu.mux.Eval(sum, sum, f1)
	if err != nil {
		return nil, err
	}

	result, err := alu.mux.Eval(logic, arith, f2)
	if err != nil {
		return nil, err
	}

	return &Trace{
		Function: fn,
		Op1:      x,
		Op2:      y,
		Operand:  operand,
		Logic:    logic,
		Sum:      sum,
		Carry:    carry,
		Result:   result,
	}, nil
}

// Print prints the trace to out.
func (t *Trace) Print(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header(t.Function.String()).SetAlign(tabulate.ML)
	tab.Header(fmt.Sprintf("w%s", superscript.Itoa(t.Result.Width()))).
		SetAlign(tabulate.MR)
	tab.Header("Value").SetAlign(tabulate.MR)

	rows := []struct {
		label string
		word  circuit.Word
	}{
		{"op1", t.Op1},
		{"op2", t.Op2},
		{"op2'", t.Operand},
		{"logic", t.Logic},
		{"sum", t.Sum},
	}
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.label)
		row.Column(r.word.Binary())
		row.Column(fmt.Sprintf("%d", r.word.Uint64()))
	}
	row := tab.Row()
	row.Column("carry")
	row.Column(string(t.Carry.Digit()))
	row.Column("")

	row = tab.Row()
	row.Column("result").SetFormat(tabulate.FmtBold)
	row.Column(t.Result.Binary()).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", t.Result.Uint64())).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

// Eval computes the ALU function fn with an ALU of the width of x.
func Eval(fn Function, x, y circuit.Word) (circuit.Word, error) {
	alu, err := std.ALU(x.Width())
	if err != nil {
		return circuit.Word{}, err
	}
	return alu.Eval(fn.Select(), x, y)
}
