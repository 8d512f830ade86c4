//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"sync/atomic"
)

// Counter counts primitive evaluations. It is safe for concurrent
// use.
type Counter struct {
	primitive Primitive
	count     atomic.Uint64
}

// NewCounter creates a counter for the primitive p. If p is nil, the
// counter uses NandTable.
func NewCounter(p Primitive) *Counter {
	if p == nil {
		p = NandTable
	}
	return &Counter{
		primitive: p,
	}
}

// Nand evaluates the primitive and increments the counter. The
// method value c.Nand is a Primitive.
func (c *Counter) Nand(a, b Bit) Bit {
	c.count.Add(1)
	return c.primitive(a, b)
}

// Count returns the number of primitive evaluations.
func (c *Counter) Count() uint64 {
	return c.count.Load()
}

// Reset clears the counter.
func (c *Counter) Reset() {
	c.count.Store(0)
}

// OperationStats computes the number of primitive evaluations each
// gate function takes.
func OperationStats(p Primitive) Stats {
	var stats Stats

	for _, op := range Operations {
		counter := NewCounter(p)
		gate, err := NewGates(counter.Nand).Func(op)
		if err != nil {
			panic(err)
		}
		gate(HIGH, LOW)
		stats[op] = int(counter.Count())
	}
	return stats
}
