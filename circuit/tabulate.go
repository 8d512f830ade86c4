//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Inputs lists the bit combinations of n inputs in ascending binary
// order, the first input being the most significant.
func Inputs(n int) [][]Bit {
	var result [][]Bit

	for i := 0; i < 1<<n; i++ {
		row := make([]Bit, n)
		for bit := 0; bit < n; bit++ {
			row[n-bit-1] = Bit((i >> bit) & 1)
		}
		result = append(result, row)
	}
	return result
}

// TruthTable creates the truth table of the gate functions ops. If ops
// is empty, the table lists all gate functions. The last row holds
// the primitive cost of each function.
func TruthTable(gates *Gates, ops ...Operation) (*tabulate.Tabulate, error) {
	if len(ops) == 0 {
		ops = Operations
	}
	var funcs []Gate
	for _, op := range ops {
		gate, err := gates.Func(op)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, gate)
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("a").SetAlign(tabulate.ML)
	tab.Header("b").SetAlign(tabulate.ML)
	for _, op := range ops {
		tab.Header(op.String()).SetAlign(tabulate.ML)
	}

	for _, in := range Inputs(2) {
		row := tab.Row()
		row.Column(in[0].String())
		row.Column(in[1].String())
		for idx, gate := range funcs {
			if ops[idx].Arity() == 1 {
				row.Column(gate(in[0], in[0]).String())
			} else {
				row.Column(gate(in[0], in[1]).String())
			}
		}
	}

	stats := OperationStats(gates.nand)
	row := tab.Row()
	row.Column("NAND").SetFormat(tabulate.FmtItalic)
	row.Column("")
	for _, op := range ops {
		row.Column(fmt.Sprintf("%d", stats[op])).SetFormat(tabulate.FmtItalic)
	}

	return tab, nil
}

// AdderTable creates the truth table of the half and full adders.
func AdderTable(gates *Gates) *tabulate.Tabulate {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("a").SetAlign(tabulate.ML)
	tab.Header("b").SetAlign(tabulate.ML)
	tab.Header("c").SetAlign(tabulate.ML)
	tab.Header("Sum").SetAlign(tabulate.ML)
	tab.Header("Carry").SetAlign(tabulate.ML)

	for _, in := range Inputs(3) {
		s := gates.FullAdder(in[0], in[1], in[2])

		row := tab.Row()
		for _, b := range in {
			row.Column(b.String())
		}
		row.Column(s.Sum.String()).SetFormat(tabulate.FmtBold)
		row.Column(s.Carry.String()).SetFormat(tabulate.FmtBold)
	}
	return tab
}

// PrintTruthTable prints the truth tables of the gate functions ops
// and the adder blocks to out.
func PrintTruthTable(out io.Writer, gates *Gates, ops ...Operation) error {
	tab, err := TruthTable(gates, ops...)
	if err != nil {
		return err
	}
	tab.Print(out)
	fmt.Fprintln(out)
	AdderTable(gates).Print(out)
	return nil
}
