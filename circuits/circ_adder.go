//
// circ_adder.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"fmt"

	"github.com/markkurossi/logic/circuit"
)

// Adder implements a ripple-carry adder.
type Adder struct {
	Width int
	gates *circuit.Gates
}

// Adder defines a width bits wide adder.
func (b *Builder) Adder(width int) (*Adder, error) {
	if err := checkWidth("adder", width); err != nil {
		return nil, err
	}
	return &Adder{
		Width: width,
		gates: b.Gates,
	}, nil
}

// Eval computes z=x+y+cin and returns the sum and the carry-out of
// the most significant bit.
func (a *Adder) Eval(x, y circuit.Word, cin circuit.Bit) (
	circuit.Word, circuit.Bit, error) {

	if err := checkArgs("adder", a.Width, x, y); err != nil {
		return circuit.Word{}, circuit.LOW, err
	}
	z := make([]circuit.Bit, a.Width)
	cout := a.ripple(x, y, cin, 0, z)

	sum, err := circuit.NewWord(z...)
	if err != nil {
		return circuit.Word{}, circuit.LOW, err
	}
	return sum, cout, nil
}

// ripple computes the sum bits z[i:] and returns the carry out of the
// bit i. The carry into bit i is the carry out of the bit i+1; the
// least significant bit uses cin.
func (a *Adder) ripple(x, y circuit.Word, cin circuit.Bit, i int,
	z []circuit.Bit) circuit.Bit {

	c := cin
	if i+1 < a.Width {
		c = a.ripple(x, y, cin, i+1, z)
	}
	s := a.gates.FullAdder(x.At(i), y.At(i), c)
	z[i] = s.Sum

	return s.Carry
}

// Add computes x+y+cin with an adder of the width of x. The carry-in
// defaults to LOW.
func Add(x, y circuit.Word, cin ...circuit.Bit) (
	circuit.Word, circuit.Bit, error) {

	var c circuit.Bit
	switch len(cin) {
	case 0:
	case 1:
		c = cin[0]
	default:
		return circuit.Word{}, circuit.LOW,
			fmt.Errorf("invalid adder arguments: %d carry bits", len(cin))
	}
	adder, err := std.Adder(x.Width())
	if err != nil {
		return circuit.Word{}, circuit.LOW, err
	}
	return adder.Eval(x, y, c)
}
