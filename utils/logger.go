//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements logging facility for the logic tools.
type Logger struct {
	out     io.Writer
	Verbose bool
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer) *Logger {
	return &Logger{
		out: out,
	}
}

func (l *Logger) printf(loc Point, kind, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: %s%s", loc.Source, kind, msg)
	} else {
		fmt.Fprintf(l.out, "%s: %s%s", loc, kind, msg)
	}
	return msg
}

// Errorf logs an error message and returns it as an error. The
// returned error holds the first line of the message.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := l.printf(loc, "", format, a...)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	l.printf(loc, "warning: ", format, a...)
}

// Debugf logs a debug message if the logger is verbose.
func (l *Logger) Debugf(loc Point, format string, a ...interface{}) {
	if l.Verbose {
		l.printf(loc, "", format, a...)
	}
}
