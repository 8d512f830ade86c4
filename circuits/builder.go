//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package circuits implements word-level logic blocks composed from
// the gates of the circuit package. Blocks are defined for a fixed
// width and reject operands of any other width.
package circuits

import (
	"errors"
	"fmt"

	"github.com/markkurossi/logic/circuit"
	"github.com/markkurossi/logic/env"
)

// Errors.
var (
	ErrWidth     = errors.New("invalid width")
	ErrNarrowing = errors.New("narrowing conversion")
	ErrFunction  = errors.New("invalid function select")
)

// Builder defines word-level blocks over a gate set.
type Builder struct {
	Config *env.Config
	Gates  *circuit.Gates
}

// NewBuilder creates a new builder for the configuration. A nil
// config selects the default configuration.
func NewBuilder(config *env.Config) *Builder {
	if config == nil {
		config = new(env.Config)
	}
	return &Builder{
		Config: config,
		Gates:  circuit.NewGates(config.GetPrimitive()),
	}
}

var std = NewBuilder(nil)

func checkWidth(block string, width int) error {
	if width < 1 {
		return fmt.Errorf("%w: %s: width=%d", ErrWidth, block, width)
	}
	return nil
}

func errArity(block fmt.Stringer, n int) error {
	return fmt.Errorf("invalid %s arguments: got %d operands, expected 1 or 2",
		block, n)
}

func checkArgs(block string, width int, args ...circuit.Word) error {
	for _, arg := range args {
		if arg.Width() != width {
			var widths string
			for idx, a := range args {
				if idx > 0 {
					widths += ", "
				}
				widths += fmt.Sprintf("%d", a.Width())
			}
			return fmt.Errorf("%w: invalid %s arguments: width=%d, args=%s",
				ErrWidth, block, width, widths)
		}
	}
	return nil
}
