//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the logic engine.
package env

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/logic/circuit"
)

// Config defines the global configuration for the logic engine. It
// configures all circuit builders created from it. Config must not be
// modified after being passed to any builder. It is safe for
// concurrent use as builders do not modify it.
type Config struct {
	// Primitive specifies the universal gate. If unset, the NAND
	// truth table is used.
	Primitive circuit.Primitive

	// Rand specifies the source of entropy for random words.
	Rand io.Reader

	// Memoize enables result caching for ALUs.
	Memoize bool
}

// GetPrimitive returns the universal gate for deriving gate sets.
func (config *Config) GetPrimitive() circuit.Primitive {
	if config != nil && config.Primitive != nil {
		return config.Primitive
	}
	return circuit.NandTable
}

// GetRandom returns the source of entropy for random words.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}
