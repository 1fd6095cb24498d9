// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"io"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// Outf outputs to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Outf("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// Printer is [Outf] bound to an arbitrary writer. Colour tags are stripped
// when colours are disabled.
type Printer struct {
	w io.Writer
	f formatter.Formatter
}

func NewPrinter(w io.Writer, colors bool) *Printer {
	mode := formatter.ColorModeNone
	if colors {
		mode = formatter.ColorModeTerminal
	}
	return &Printer{w: w, f: formatter.New(mode)}
}

func (p *Printer) Outf(format string, args ...interface{}) {
	fmt.Fprint(p.w, p.f.F(format, args...))
}
