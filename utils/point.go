//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"fmt"
)

// Point specifies a position in an input vector file or in the
// command line arguments.
type Point struct {
	Source string
	Line   int // 1-based, 0 if undefined
	Col    int // 1-based, 0 if unknown
}

// Arg returns the position of the 0-based command line argument idx.
func Arg(source string, idx int) Point {
	return Point{
		Source: source,
		Line:   idx + 1,
	}
}

func (p Point) String() string {
	if p.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// Undefined tests if the input position is undefined.
func (p Point) Undefined() bool {
	return p.Line == 0
}
