//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"io"

	"github.com/markkurossi/logic/env"
)

// Params specify tool parameters.
type Params struct {
	Verbose bool
	Color   bool
	Memoize bool

	// Width specifies the operand width in bits. Narrower operands
	// are zero-extended to it.
	Width int

	// Format specifies the result format.
	Format string

	// Out receives the results. If unset, results are printed to
	// standard output.
	Out io.WriteCloser
}

// NewParams returns new params object, initialized with the default
// values.
func NewParams() *Params {
	return &Params{
		Width:  8,
		Format: "tokens",
	}
}

// Config returns the engine configuration for the params.
func (p *Params) Config() *env.Config {
	return &env.Config{
		Memoize: p.Memoize,
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.Out != nil {
		p.Out.Close()
		p.Out = nil
	}
}
