//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"github.com/markkurossi/logic/circuit"
)

// MUX implements a word multiplexer.
type MUX struct {
	Width int
	gates *circuit.Gates
}

// MUX defines a width bits wide multiplexer.
func (b *Builder) MUX(width int) (*MUX, error) {
	if err := checkWidth("mux", width); err != nil {
		return nil, err
	}
	return &MUX{
		Width: width,
		gates: b.Gates,
	}, nil
}

// Eval selects the input x if the condition s is LOW and y if s is
// HIGH. All bits share the condition.
func (m *MUX) Eval(x, y circuit.Word, s circuit.Bit) (circuit.Word, error) {
	if err := checkArgs("mux", m.Width, x, y); err != nil {
		return circuit.Word{}, err
	}
	return circuit.MakeWord(m.Width, func(i int) circuit.Bit {
		return m.gates.Mux(x.At(i), y.At(i), s)
	})
}

// Mux selects x or y with a multiplexer of the width of x.
func Mux(x, y circuit.Word, s circuit.Bit) (circuit.Word, error) {
	mux, err := std.MUX(x.Width())
	if err != nil {
		return circuit.Word{}, err
	}
	return mux.Eval(x, y, s)
}
