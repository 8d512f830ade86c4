//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/markkurossi/logic"
	"github.com/markkurossi/logic/circuit"
	"github.com/markkurossi/logic/circuits"
	"github.com/markkurossi/logic/utils"
	"github.com/markkurossi/text/superscript"
)

var (
	high = color.New(color.FgGreen, color.Bold).SprintFunc()
	low  = color.New(color.Faint).SprintFunc()
)

func main() {
	params := utils.NewParams()

	op := flag.String("op", "add",
		"operation: or, and, add, sub (ALU), nand, not, nor, xor (gates), addc (adder)")
	cin := flag.String("cin", "0", "adder carry-in for addc")
	truth := flag.Bool("truth", false, "print gate truth tables")
	random := flag.Int("random", 0, "evaluate with `n` random operand sets")
	out := flag.String("o", "", "output file")
	flag.IntVar(&params.Width, "w", params.Width, "operand width in bits")
	flag.StringVar(&params.Format, "f", params.Format,
		"result format: "+strings.Join(logic.Formats, ", "))
	flag.BoolVar(&params.Verbose, "v", false, "verbose output")
	flag.BoolVar(&params.Color, "color", false, "colorize HIGH and LOW bits")
	flag.BoolVar(&params.Memoize, "memo", false, "memoize ALU results")
	flag.Parse()

	log.SetFlags(0)
	color.NoColor = !params.Color

	logger := utils.NewLogger(os.Stderr)
	logger.Verbose = params.Verbose

	if len(*out) > 0 {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		params.Out = f
	}
	defer params.Close()

	var w io.Writer = os.Stdout
	if params.Out != nil {
		w = params.Out
	}

	config := params.Config()
	counter := circuit.NewCounter(config.GetPrimitive())
	config.Primitive = counter.Nand
	builder := circuits.NewBuilder(config)

	if *truth {
		if err := circuit.PrintTruthTable(w, builder.Gates); err != nil {
			log.Fatal(err)
		}
		return
	}

	operands, err := readOperands(logger, builder, params.Width, *random)
	if err != nil {
		log.Fatal(err)
	}

	cmd := &command{
		params:  params,
		logger:  logger,
		builder: builder,
		out:     w,
	}
	if err := cmd.run(*op, *cin, operands); err != nil {
		log.Fatal(err)
	}
	logger.Debugf(utils.Point{Source: "alu"}, "%d NAND evaluations",
		counter.Count())
}

func readOperands(logger *utils.Logger, builder *circuits.Builder,
	width, random int) ([]circuit.Word, error) {

	var result []circuit.Word

	for i := 0; i < random*2; i++ {
		w, err := circuit.RandomWord(builder.Config.GetRandom(), width)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}

	for idx, arg := range flag.Args() {
		loc := utils.Arg("args", idx)

		w, err := circuit.ParseWord(arg)
		if err != nil {
			return nil, logger.Errorf(loc, "%s", err)
		}
		if w.Width() > width {
			return nil, logger.Errorf(loc, "operand %s wider than %d bits",
				arg, width)
		}
		if w.Width() < width {
			logger.Debugf(loc, "zero-extending %s to w%s",
				w.Binary(), superscript.Itoa(width))
		}
		conv, err := builder.Converter(w.Width(), width)
		if err != nil {
			return nil, logger.Errorf(loc, "%s", err)
		}
		w, err = conv.Eval(w)
		if err != nil {
			return nil, logger.Errorf(loc, "%s", err)
		}
		result = append(result, w)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no operands")
	}
	return result, nil
}

type command struct {
	params  *utils.Params
	logger  *utils.Logger
	builder *circuits.Builder
	out     io.Writer
}

func (cmd *command) run(op, cin string, operands []circuit.Word) error {
	if fn, err := circuits.ParseFunction(op); err == nil {
		return cmd.alu(fn, operands)
	}
	if cmd.params.Memoize {
		cmd.logger.Warningf(utils.Point{Source: "alu"},
			"-memo has no effect on %s", op)
	}
	if op == "addc" {
		return cmd.add(cin, operands)
	}
	gate, err := circuit.ParseOperation(op)
	if err != nil {
		return err
	}
	return cmd.exp(gate, operands)
}

func (cmd *command) pairs(name string, operands []circuit.Word) error {
	if len(operands)%2 != 0 {
		return fmt.Errorf("%s: odd number of operands: %d", name, len(operands))
	}
	return nil
}

func (cmd *command) alu(fn circuits.Function, operands []circuit.Word) error {
	if err := cmd.pairs(fn.String(), operands); err != nil {
		return err
	}
	eval, err := cmd.builder.Evaluator(cmd.params.Width)
	if err != nil {
		return err
	}
	for i := 0; i < len(operands); i += 2 {
		if cmd.params.Verbose {
			alu, err := cmd.builder.ALU(cmd.params.Width)
			if err != nil {
				return err
			}
			trace, err := alu.Trace(fn.Select(), operands[i], operands[i+1])
			if err != nil {
				return err
			}
			trace.Print(os.Stderr)
		}
		r, err := eval.Eval(fn.Select(), operands[i], operands[i+1])
		if err != nil {
			return err
		}
		if err := cmd.print(r); err != nil {
			return err
		}
	}
	if cache, ok := eval.(*circuits.Cache); ok {
		cmd.logger.Debugf(utils.Point{Source: "alu"},
			"cache: %d hits, %d misses", cache.Hits(), cache.Misses())
	}
	return nil
}

func (cmd *command) exp(op circuit.Operation, operands []circuit.Word) error {
	exp, err := cmd.builder.Exp(op, cmd.params.Width)
	if err != nil {
		return err
	}
	step := op.Arity()
	if step == 2 {
		if err := cmd.pairs(op.String(), operands); err != nil {
			return err
		}
	}
	for i := 0; i < len(operands); i += step {
		r, err := exp.Eval(operands[i], operands[i:i+step][1:]...)
		if err != nil {
			return err
		}
		if err := cmd.print(r); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *command) add(cin string, operands []circuit.Word) error {
	if err := cmd.pairs("addc", operands); err != nil {
		return err
	}
	c, err := circuit.ParseBit(cin)
	if err != nil {
		return err
	}
	adder, err := cmd.builder.Adder(cmd.params.Width)
	if err != nil {
		return err
	}
	for i := 0; i < len(operands); i += 2 {
		sum, carry, err := adder.Eval(operands[i], operands[i+1], c)
		if err != nil {
			return err
		}
		if err := cmd.print(sum); err != nil {
			return err
		}
		fmt.Fprintf(cmd.out, "carry: %s\n", cmd.colorize(carry.String()))
	}
	return nil
}

func (cmd *command) print(w circuit.Word) error {
	str, err := logic.Format(w, cmd.params.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.out, cmd.colorize(str))
	return err
}

func (cmd *command) colorize(str string) string {
	if color.NoColor {
		return str
	}
	fields := strings.Fields(str)
	for idx, field := range fields {
		b, err := circuit.ParseBit(field)
		if err != nil {
			return str
		}
		if b == circuit.HIGH {
			fields[idx] = high(field)
		} else {
			fields[idx] = low(field)
		}
	}
	return strings.Join(fields, " ")
}
