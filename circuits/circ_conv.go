//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"fmt"

	"github.com/markkurossi/logic/circuit"
)

// Converter widens words by zero-extension.
type Converter struct {
	From int
	To   int
}

// Converter defines a converter from words of width from to words of
// width to. Narrowing conversions are not defined.
func (b *Builder) Converter(from, to int) (*Converter, error) {
	if err := checkWidth("conv", from); err != nil {
		return nil, err
	}
	if to < from {
		return nil, fmt.Errorf("%w: conv: from=%d, to=%d",
			ErrNarrowing, from, to)
	}
	return &Converter{
		From: from,
		To:   to,
	}, nil
}

// Eval copies x into the low-order bits of the result and sets the
// high-order bits to LOW.
func (c *Converter) Eval(x circuit.Word) (circuit.Word, error) {
	if err := checkArgs("conv", c.From, x); err != nil {
		return circuit.Word{}, err
	}
	pad := c.To - c.From

	return circuit.MakeWord(c.To, func(i int) circuit.Bit {
		if i < pad {
			return circuit.LOW
		}
		return x.At(i - pad)
	})
}

// Convert zero-extends x to width bits.
func Convert(x circuit.Word, width int) (circuit.Word, error) {
	conv, err := std.Converter(x.Width(), width)
	if err != nil {
		return circuit.Word{}, err
	}
	return conv.Eval(x)
}
