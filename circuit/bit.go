//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"strings"
)

// Bit specifies a logic value.
type Bit byte

// Logic values.
const (
	LOW Bit = iota
	HIGH
)

func (b Bit) String() string {
	switch b {
	case LOW:
		return "LOW"
	case HIGH:
		return "HIGH"
	default:
		return fmt.Sprintf("{Bit %d}", b)
	}
}

// Rune returns the short tag of the bit: 'I' for HIGH and 'O' for
// LOW.
func (b Bit) Rune() rune {
	if b == HIGH {
		return 'I'
	}
	return 'O'
}

// Digit returns the binary digit of the bit.
func (b Bit) Digit() byte {
	if b == HIGH {
		return '1'
	}
	return '0'
}

// ParseBit parses the bit from its textual representation.
func ParseBit(val string) (Bit, error) {
	switch strings.ToUpper(val) {
	case "1", "I", "H", "HIGH":
		return HIGH, nil
	case "0", "O", "L", "LOW":
		return LOW, nil
	default:
		return LOW, fmt.Errorf("%w: invalid bit '%s'", ErrSyntax, val)
	}
}
