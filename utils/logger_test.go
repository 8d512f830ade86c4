//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"bytes"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf)

	err := log.Errorf(Arg("args", 1), "invalid bit '%s'\ndetails", "x")
	if err == nil || err.Error() != "invalid bit 'x'" {
		t.Errorf("Errorf: unexpected error %v", err)
	}
	if buf.String() != "args:2: invalid bit 'x'\ndetails\n" {
		t.Errorf("Errorf: output %q", buf.String())
	}

	buf.Reset()
	log.Warningf(Point{Source: "alu"}, "operand zero-extended")
	if buf.String() != "alu: warning: operand zero-extended\n" {
		t.Errorf("Warningf: output %q", buf.String())
	}

	buf.Reset()
	log.Debugf(Point{Source: "alu"}, "hidden")
	if buf.Len() != 0 {
		t.Errorf("Debugf: output %q", buf.String())
	}
	log.Verbose = true
	log.Debugf(Point{Source: "alu"}, "shown")
	if buf.String() != "alu: shown\n" {
		t.Errorf("Debugf: output %q", buf.String())
	}
}

func TestParams(t *testing.T) {
	params := NewParams()
	if params.Width != 8 || params.Format != "tokens" {
		t.Errorf("NewParams: %+v", params)
	}
	params.Memoize = true
	if !params.Config().Memoize {
		t.Errorf("Config does not carry Memoize")
	}
	params.Close()
}
