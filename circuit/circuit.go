//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"errors"
	"fmt"
	"strings"
)

// Errors.
var (
	ErrOperation = errors.New("invalid operation")
	ErrWidth     = errors.New("invalid width")
	ErrSyntax    = errors.New("syntax error")
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	NAND Operation = iota
	NOT
	AND
	OR
	NOR
	XOR
)

// Operations lists all gate functions.
var Operations = []Operation{NAND, NOT, AND, OR, NOR, XOR}

// Stats holds statistics about circuit operations.
type Stats [XOR + 1]int

func (op Operation) String() string {
	switch op {
	case NAND:
		return "NAND"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOR:
		return "NOR"
	case XOR:
		return "XOR"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Arity returns the number of gate inputs.
func (op Operation) Arity() int {
	if op == NOT {
		return 1
	}
	return 2
}

// ParseOperation parses the gate function name.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations {
		if strings.EqualFold(op.String(), name) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrOperation, name)
}

func (s Stats) String() string {
	var result string

	for k := NAND; k <= XOR; k++ {
		if len(result) > 0 {
			result += " "
		}
		result += fmt.Sprintf("%s=%d", k, s[k])
	}
	return result
}

// Cost computes the total number of primitive evaluations.
func (s Stats) Cost() int {
	var sum int
	for _, v := range s {
		sum += v
	}
	return sum
}

// Gate implements a gate function. Unary gates ignore their second
// input.
type Gate func(a, b Bit) Bit

// Sum holds the outputs of an adder block.
type Sum struct {
	Sum   Bit
	Carry Bit
}

func (s Sum) String() string {
	return fmt.Sprintf("sum=%s carry=%s", s.Sum, s.Carry)
}
