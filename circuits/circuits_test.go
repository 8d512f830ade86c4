//
// circuits_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuits

import (
	"math/rand"
	"testing"

	"github.com/markkurossi/logic/circuit"
	"github.com/markkurossi/logic/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	iterations = 200
)

var widths = []int{1, 4, 8, 16}

func randomWord(t *testing.T, rnd *rand.Rand, width int) circuit.Word {
	w, err := circuit.FromUint64(rnd.Uint64(), width)
	require.NoError(t, err)
	return w
}

func word(t *testing.T, val string) circuit.Word {
	w, err := circuit.ParseWord(val)
	require.NoError(t, err)
	return w
}

func TestExp(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, op := range circuit.Operations {
		gate, err := circuit.Std.Func(op)
		require.NoError(t, err)

		for _, width := range widths {
			exp, err := std.Exp(op, width)
			require.NoError(t, err)

			for i := 0; i < iterations; i++ {
				x := randomWord(t, rnd, width)
				y := randomWord(t, rnd, width)

				r, err := exp.Eval(x, y)
				require.NoError(t, err)
				require.Equal(t, width, r.Width())

				for bit := 0; bit < width; bit++ {
					assert.Equal(t, gate(x.At(bit), y.At(bit)), r.At(bit),
						"%s(%s, %s) bit %d", op, x.Binary(), y.Binary(), bit)
				}
			}
		}
	}
}

func TestExpDefaultOperand(t *testing.T) {
	x := word(t, "1100")

	r, err := Bitwise(circuit.NOT, x)
	require.NoError(t, err)
	assert.Equal(t, "0011", r.Binary())

	r, err = Bitwise(circuit.AND, x)
	require.NoError(t, err)
	assert.Equal(t, "1100", r.Binary())

	r, err = Bitwise(circuit.NAND, x, word(t, "1010"))
	require.NoError(t, err)
	assert.Equal(t, "0111", r.Binary())
}

func TestExpErrors(t *testing.T) {
	_, err := std.Exp(circuit.AND, 0)
	assert.ErrorIs(t, err, ErrWidth)

	_, err = std.Exp(circuit.Operation(99), 4)
	assert.ErrorIs(t, err, circuit.ErrOperation)

	exp, err := std.Exp(circuit.AND, 4)
	require.NoError(t, err)

	_, err = exp.Eval(word(t, "1100"), word(t, "101"))
	assert.ErrorIs(t, err, ErrWidth)

	_, err = exp.Eval(word(t, "110"))
	assert.ErrorIs(t, err, ErrWidth)

	_, err = exp.Eval(word(t, "1100"), word(t, "1010"), word(t, "1111"))
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	for _, width := range widths {
		adder, err := std.Adder(width)
		require.NoError(t, err)

		modulo := uint64(1) << width
		for i := 0; i < iterations; i++ {
			x := randomWord(t, rnd, width)
			y := randomWord(t, rnd, width)
			cin := circuit.Bit(rnd.Intn(2))

			sum, carry, err := adder.Eval(x, y, cin)
			require.NoError(t, err)

			total := x.Uint64() + y.Uint64() + uint64(cin)
			assert.Equal(t, total%modulo, sum.Uint64(),
				"%s+%s+%s", x.Binary(), y.Binary(), cin)

			expected := circuit.LOW
			if total >= modulo {
				expected = circuit.HIGH
			}
			assert.Equal(t, expected, carry,
				"carry %s+%s+%s", x.Binary(), y.Binary(), cin)
		}
	}
}

func TestAddExhaustive4(t *testing.T) {
	adder, err := std.Adder(4)
	require.NoError(t, err)

	for a := uint64(0); a < 16; a++ {
		for b := uint64(0); b < 16; b++ {
			x, _ := circuit.FromUint64(a, 4)
			y, _ := circuit.FromUint64(b, 4)

			sum, carry, err := adder.Eval(x, y, circuit.LOW)
			require.NoError(t, err)
			assert.Equal(t, (a+b)&0xf, sum.Uint64())
			assert.Equal(t, circuit.Bit((a+b)>>4), carry)
		}
	}
}

func TestAddHelper(t *testing.T) {
	sum, carry, err := Add(word(t, "00101101"), word(t, "01010011"))
	require.NoError(t, err)
	assert.Equal(t, "10000000", sum.Binary())
	assert.Equal(t, circuit.LOW, carry)

	sum, carry, err = Add(word(t, "1111"), word(t, "0000"), circuit.HIGH)
	require.NoError(t, err)
	assert.Equal(t, "0000", sum.Binary())
	assert.Equal(t, circuit.HIGH, carry)

	_, _, err = Add(word(t, "1111"), word(t, "00000"))
	assert.ErrorIs(t, err, ErrWidth)

	_, _, err = Add(word(t, "1"), word(t, "0"), circuit.LOW, circuit.HIGH)
	assert.Error(t, err)

	_, err = std.Adder(0)
	assert.ErrorIs(t, err, ErrWidth)
}

func TestMux(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for _, width := range widths {
		mux, err := std.MUX(width)
		require.NoError(t, err)

		for i := 0; i < iterations; i++ {
			x := randomWord(t, rnd, width)
			y := randomWord(t, rnd, width)

			r, err := mux.Eval(x, y, circuit.LOW)
			require.NoError(t, err)
			assert.True(t, r.Equal(x))

			r, err = mux.Eval(x, y, circuit.HIGH)
			require.NoError(t, err)
			assert.True(t, r.Equal(y))
		}
	}

	_, err := Mux(word(t, "11"), word(t, "1"), circuit.LOW)
	assert.ErrorIs(t, err, ErrWidth)
}

func TestConvert(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))

	for _, from := range widths {
		for _, to := range []int{from, from + 1, 16, 32} {
			if to < from {
				continue
			}
			conv, err := std.Converter(from, to)
			require.NoError(t, err)

			for i := 0; i < iterations; i++ {
				x := randomWord(t, rnd, from)

				r, err := conv.Eval(x)
				require.NoError(t, err)
				require.Equal(t, to, r.Width())

				low, err := r.Slice(to-from, to)
				require.NoError(t, err)
				assert.True(t, low.Equal(x), "low bits of %s", r.Binary())

				for bit := 0; bit < to-from; bit++ {
					assert.Equal(t, circuit.LOW, r.At(bit))
				}
				assert.Equal(t, x.Uint64(), r.Uint64())
			}
		}
	}
}

func TestConvertIdentity(t *testing.T) {
	x := word(t, "10110")
	r, err := Convert(x, x.Width())
	require.NoError(t, err)
	assert.True(t, r.Equal(x))

	r, err = Convert(word(t, "IOI"), 8)
	require.NoError(t, err)
	assert.Equal(t, "00000101", r.Binary())
}

func TestConvertErrors(t *testing.T) {
	_, err := std.Converter(8, 4)
	assert.ErrorIs(t, err, ErrNarrowing)

	_, err = Convert(word(t, "1010"), 2)
	assert.ErrorIs(t, err, ErrNarrowing)

	_, err = std.Converter(0, 4)
	assert.ErrorIs(t, err, ErrWidth)

	conv, err := std.Converter(4, 8)
	require.NoError(t, err)
	_, err = conv.Eval(word(t, "101"))
	assert.ErrorIs(t, err, ErrWidth)
}

func TestCustomPrimitive(t *testing.T) {
	// Primitive computing AND: every derived gate changes with it.
	and := func(a, b circuit.Bit) circuit.Bit {
		if a == circuit.HIGH && b == circuit.HIGH {
			return circuit.HIGH
		}
		return circuit.LOW
	}
	b := NewBuilder(&env.Config{
		Primitive: and,
	})
	exp, err := b.Exp(circuit.NAND, 4)
	require.NoError(t, err)

	r, err := exp.Eval(word(t, "1100"), word(t, "1010"))
	require.NoError(t, err)
	assert.Equal(t, "1000", r.Binary())

	// NOT(a)=AND(a, a)=a
	exp, err = b.Exp(circuit.NOT, 4)
	require.NoError(t, err)

	r, err = exp.Eval(word(t, "1100"))
	require.NoError(t, err)
	assert.Equal(t, "1100", r.Binary())
}
