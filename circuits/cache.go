//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"sync"
	"sync/atomic"

	"github.com/markkurossi/logic/circuit"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies an operation and its operands.
type Fingerprint [blake2b.Size256]byte

// NewFingerprint computes the fingerprint of the block name and its
// operand words.
func NewFingerprint(block string, words ...circuit.Word) Fingerprint {
	data := []byte(block)
	for _, w := range words {
		data = append(data, '/')
		data = append(data, w.Binary()...)
	}
	return blake2b.Sum256(data)
}

// Cache memoizes ALU results by the fingerprint of the function select
// and operands. It is safe for concurrent use.
type Cache struct {
	alu     *ALU
	m       sync.Mutex
	results map[Fingerprint]circuit.Word
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache creates a result cache for the ALU.
func NewCache(alu *ALU) *Cache {
	return &Cache{
		alu:     alu,
		results: make(map[Fingerprint]circuit.Word),
	}
}

// Eval computes the function sel with the operands x and y, returning
// a cached result if one exists.
func (c *Cache) Eval(sel, x, y circuit.Word) (circuit.Word, error) {
	fp := NewFingerprint("alu", sel, x, y)

	c.m.Lock()
	result, ok := c.results[fp]
	c.m.Unlock()
	if ok {
		c.hits.Add(1)
		return result, nil
	}
	c.misses.Add(1)

	result, err := c.alu.Eval(sel, x, y)
	if err != nil {
		return circuit.Word{}, err
	}

	c.m.Lock()
	c.results[fp] = result
	c.m.Unlock()

	return result, nil
}

// Hits returns the number of cache hits.
func (c *Cache) Hits() uint64 {
	return c.hits.Load()
}

// Misses returns the number of cache misses.
func (c *Cache) Misses() uint64 {
	return c.misses.Load()
}

// Evaluator evaluates ALU functions.
type Evaluator interface {
	Eval(sel, x, y circuit.Word) (circuit.Word, error)
}

// Evaluator returns a width bits wide ALU evaluator. If the builder
// configuration enables memoization, the ALU is wrapped in a Cache.
func (b *Builder) Evaluator(width int) (Evaluator, error) {
	alu, err := b.ALU(width)
	if err != nil {
		return nil, err
	}
	if b.Config.Memoize {
		return NewCache(alu), nil
	}
	return alu, nil
}
