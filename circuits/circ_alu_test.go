//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/markkurossi/logic/circuit"
	"github.com/markkurossi/logic/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	O = circuit.LOW
	I = circuit.HIGH

	op1 = circuit.MustWord(O, O, I, O, I, I, O, I)
	op2 = circuit.MustWord(O, I, O, I, O, O, I, I)
)

func TestALUTable(t *testing.T) {
	alu, err := std.ALU(circuit.ByteWidth)
	require.NoError(t, err)

	table := []struct {
		fn     Function
		result string
	}{
		{FnOR, "01111111"},
		{FnAND, "00000001"},
		{FnADD, "10000000"},
		{FnSUB, "11011010"},
	}
	for _, entry := range table {
		r, err := alu.Eval(entry.fn.Select(), op1, op2)
		require.NoError(t, err, entry.fn.String())
		assert.Equal(t, entry.result, r.Binary(), entry.fn.String())
	}
}

func TestALUSelectEncoding(t *testing.T) {
	assert.Equal(t, "000", FnOR.Select().Binary())
	assert.Equal(t, "010", FnAND.Select().Binary())
	assert.Equal(t, "001", FnADD.Select().Binary())
	assert.Equal(t, "101", FnSUB.Select().Binary())

	for _, fn := range Functions {
		decoded, err := Decode(fn.Select())
		require.NoError(t, err)
		assert.Equal(t, fn, decoded)

		parsed, err := ParseFunction(fn.String())
		require.NoError(t, err)
		assert.Equal(t, fn, parsed)
	}
	_, err := ParseFunction("mul")
	assert.ErrorIs(t, err, ErrFunction)
}

func TestALUProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))

	for _, width := range widths {
		alu, err := std.ALU(width)
		require.NoError(t, err)
		mask := uint64(1)<<width - 1

		for i := 0; i < iterations; i++ {
			x := randomWord(t, rnd, width)
			y := randomWord(t, rnd, width)
			a := x.Uint64()
			b := y.Uint64()

			expected := map[Function]uint64{
				FnOR:  a | b,
				FnAND: a & b,
				FnADD: (a + b) & mask,
				FnSUB: (a - b) & mask,
			}
			for fn, v := range expected {
				r, err := alu.Eval(fn.Select(), x, y)
				require.NoError(t, err)
				assert.Equal(t, v, r.Uint64(), "%s %s %s",
					fn, x.Binary(), y.Binary())
			}
		}
	}
}

func TestALUErrors(t *testing.T) {
	alu, err := std.ALU(circuit.ByteWidth)
	require.NoError(t, err)

	// Undefined function selects.
	for _, sel := range []string{"100", "011", "110", "111", "00", "0001"} {
		_, err := alu.Eval(word(t, sel), op1, op2)
		assert.ErrorIs(t, err, ErrFunction, sel)
	}

	_, err = alu.Eval(FnADD.Select(), op1, word(t, "0101"))
	assert.ErrorIs(t, err, ErrWidth)

	_, err = std.ALU(0)
	assert.ErrorIs(t, err, ErrWidth)

	_, err = Eval(FnOR, word(t, "01"), word(t, "011"))
	assert.ErrorIs(t, err, ErrWidth)
}

func TestALUTrace(t *testing.T) {
	alu, err := std.ALU(circuit.ByteWidth)
	require.NoError(t, err)

	trace, err := alu.Trace(FnSUB.Select(), op1, op2)
	require.NoError(t, err)
	assert.Equal(t, FnSUB, trace.Function)
	assert.Equal(t, "10101100", trace.Operand.Binary())
	assert.Equal(t, "11011010", trace.Sum.Binary())
	assert.Equal(t, circuit.LOW, trace.Carry)
	assert.Equal(t, "11011010", trace.Result.Binary())

	// Arithmetic result does not depend on f1.
	trace, err = alu.Trace(FnADD.Select(), op1, op2)
	require.NoError(t, err)
	assert.Equal(t, trace.Sum.Binary(), trace.Result.Binary())

	var buf bytes.Buffer
	trace.Print(&buf)
	assert.Contains(t, buf.String(), "10000000")
	assert.Contains(t, buf.String(), "result")
}

func TestCache(t *testing.T) {
	b := NewBuilder(&env.Config{
		Memoize: true,
	})
	eval, err := b.Evaluator(circuit.ByteWidth)
	require.NoError(t, err)

	cache, ok := eval.(*Cache)
	require.True(t, ok)

	r, err := cache.Eval(FnADD.Select(), op1, op2)
	require.NoError(t, err)
	assert.Equal(t, "10000000", r.Binary())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := cache.Eval(FnADD.Select(), op1, op2)
			assert.NoError(t, err)
			assert.Equal(t, "10000000", r.Binary())
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8), cache.Hits())
	assert.Equal(t, uint64(1), cache.Misses())

	r, err = cache.Eval(FnSUB.Select(), op1, op2)
	require.NoError(t, err)
	assert.Equal(t, "11011010", r.Binary())

	_, err = cache.Eval(word(t, "111"), op1, op2)
	assert.ErrorIs(t, err, ErrFunction)

	eval, err = std.Evaluator(circuit.ByteWidth)
	require.NoError(t, err)
	_, ok = eval.(*ALU)
	assert.True(t, ok)
}

func TestFingerprint(t *testing.T) {
	a := NewFingerprint("alu", FnADD.Select(), op1, op2)
	b := NewFingerprint("alu", FnADD.Select(), op2, op1)
	c := NewFingerprint("alu", FnADD.Select(), op1, op2)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}
