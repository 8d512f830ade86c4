//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Common word widths in bits.
const (
	BitWidth   = 1
	ByteWidth  = 8
	WordWidth  = 16
	DWordWidth = 32
	QWordWidth = 64
)

// Word is an immutable fixed-width sequence of bits. Index 0 holds
// the most significant bit and index Width()-1 the least significant
// bit.
type Word struct {
	bits []Bit
}

// NewWord creates a word from the bits, listed MSB first.
func NewWord(bits ...Bit) (Word, error) {
	if len(bits) == 0 {
		return Word{}, fmt.Errorf("%w: empty word", ErrWidth)
	}
	for idx, b := range bits {
		if b != LOW && b != HIGH {
			return Word{}, fmt.Errorf("%w: invalid bit %d at %d",
				ErrSyntax, b, idx)
		}
	}
	return Word{
		bits: append([]Bit(nil), bits...),
	}, nil
}

// MustWord is like NewWord but panics if the bits do not form a valid
// word. It is intended for word literals.
func MustWord(bits ...Bit) Word {
	w, err := NewWord(bits...)
	if err != nil {
		panic(err)
	}
	return w
}

// MakeWord creates a width bits wide word where bit i is fn(i).
func MakeWord(width int, fn func(i int) Bit) (Word, error) {
	if width < 1 {
		return Word{}, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	bits := make([]Bit, width)
	for i := range bits {
		bits[i] = fn(i)
	}
	return Word{
		bits: bits,
	}, nil
}

// Zero creates an all-LOW word.
func Zero(width int) (Word, error) {
	return MakeWord(width, func(i int) Bit {
		return LOW
	})
}

// FromUint64 creates a word holding the low width bits of v.
func FromUint64(v uint64, width int) (Word, error) {
	if width > QWordWidth {
		return Word{}, fmt.Errorf("%w: %d > %d", ErrWidth, width, QWordWidth)
	}
	return MakeWord(width, func(i int) Bit {
		return Bit((v >> (width - i - 1)) & 1)
	})
}

// RandomWord creates a random word reading entropy from rand.
func RandomWord(rand io.Reader, width int) (Word, error) {
	if width < 1 {
		return Word{}, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	buf := make([]byte, (width+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return Word{}, err
	}
	return MakeWord(width, func(i int) Bit {
		return Bit((buf[i/8] >> (i % 8)) & 1)
	})
}

// ParseWord parses a word from its textual representation. The input
// is either a sequence of binary digits or I/O tags, or a whitespace
// separated list of bit values accepted by ParseBit. Bits are listed
// MSB first. Underscores and the 0b prefix are ignored in
// the compact form.
func ParseWord(val string) (Word, error) {
	val = strings.TrimSpace(val)

	var bits []Bit
	if strings.IndexFunc(val, unicode.IsSpace) >= 0 {
		for _, field := range strings.Fields(val) {
			b, err := ParseBit(field)
			if err != nil {
				return Word{}, err
			}
			bits = append(bits, b)
		}
	} else if b, err := ParseBit(val); err == nil {
		bits = append(bits, b)
	} else {
		val = strings.TrimPrefix(val, "0b")
		for _, r := range val {
			if r == '_' {
				continue
			}
			b, err := ParseBit(string(r))
			if err != nil {
				return Word{}, err
			}
			bits = append(bits, b)
		}
	}
	if len(bits) == 0 {
		return Word{}, fmt.Errorf("%w: empty word", ErrSyntax)
	}
	return Word{
		bits: bits,
	}, nil
}

// Width returns the word width in bits.
func (w Word) Width() int {
	return len(w.bits)
}

// At returns the bit at the index i. It panics if i is out of range.
func (w Word) At(i int) Bit {
	if i < 0 || i >= len(w.bits) {
		panic(fmt.Sprintf("bit index %d out of range [0:%d]", i, len(w.bits)))
	}
	return w.bits[i]
}

// MSB returns the most significant bit.
func (w Word) MSB() Bit {
	return w.At(0)
}

// LSB returns the least significant bit.
func (w Word) LSB() Bit {
	return w.At(len(w.bits) - 1)
}

// Bits returns a copy of the word bits, MSB first.
func (w Word) Bits() []Bit {
	return append([]Bit(nil), w.bits...)
}

// Slice returns the bits [from:to] as a new word.
func (w Word) Slice(from, to int) (Word, error) {
	if from < 0 || to > len(w.bits) || from >= to {
		return Word{}, fmt.Errorf("%w: slice [%d:%d] of %d bits",
			ErrWidth, from, to, len(w.bits))
	}
	return NewWord(w.bits[from:to]...)
}

// Uint64 returns the unsigned value of the low 64 bits of the word.
func (w Word) Uint64() uint64 {
	var result uint64
	for _, b := range w.bits {
		result = result<<1 | uint64(b)
	}
	return result
}

// Equal tests if the words have the same width and bits.
func (w Word) Equal(o Word) bool {
	if len(w.bits) != len(o.bits) {
		return false
	}
	for i, b := range w.bits {
		if o.bits[i] != b {
			return false
		}
	}
	return true
}

// String renders the word as space separated HIGH/LOW tokens, MSB
// first.
func (w Word) String() string {
	var sb strings.Builder
	for i, b := range w.bits {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Tags renders the word as space separated I/O tags, MSB first.
func (w Word) Tags() string {
	var sb strings.Builder
	for i, b := range w.bits {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(b.Rune())
	}
	return sb.String()
}

// Binary renders the word as binary digits, MSB first.
func (w Word) Binary() string {
	buf := make([]byte, len(w.bits))
	for i, b := range w.bits {
		buf[i] = b.Digit()
	}
	return string(buf)
}
