//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package logic implements a bit-level logic engine: a NAND
// primitive, gates derived from it, and word-level blocks up to a
// small ALU.
package logic

import (
	"fmt"
	"io"
	"math/big"

	"github.com/markkurossi/logic/circuit"
)

// Result formats.
const (
	FmtTokens = "tokens"
	FmtTags   = "tags"
	FmtBin    = "bin"
	FmtHex    = "hex"
	FmtDec    = "dec"
)

// Formats lists all result formats.
var Formats = []string{FmtTokens, FmtTags, FmtBin, FmtHex, FmtDec}

// Int returns the unsigned value of the word.
func Int(w circuit.Word) *big.Int {
	result := new(big.Int)
	for i := 0; i < w.Width(); i++ {
		result.Lsh(result, 1)
		if w.At(i) == circuit.HIGH {
			result.SetBit(result, 0, 1)
		}
	}
	return result
}

// Format formats the word in the result format.
func Format(w circuit.Word, format string) (string, error) {
	switch format {
	case FmtTokens, "":
		return w.String(), nil
	case FmtTags:
		return w.Tags(), nil
	case FmtBin:
		return w.Binary(), nil
	case FmtHex:
		return fmt.Sprintf("%0*x", (w.Width()+3)/4, Int(w)), nil
	case FmtDec:
		return Int(w).String(), nil
	default:
		return "", fmt.Errorf("invalid result format: %s", format)
	}
}

// PrintResult prints the result word in the result format.
func PrintResult(out io.Writer, w circuit.Word, format string) error {
	str, err := Format(w, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, str)
	return err
}
