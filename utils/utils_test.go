// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinterStripsColors(t *testing.T) {
	require := require.New(t)
	var b bytes.Buffer
	p := NewPrinter(&b, false)

	p.Outf("{{yellow}}head:{{/}} %d\n", 150)
	require.Equal("head: 150\n", b.String())
}

func TestPrinterColors(t *testing.T) {
	require := require.New(t)
	var b bytes.Buffer
	p := NewPrinter(&b, true)

	p.Outf("{{red}}%s{{/}}", "paradox")
	require.Contains(b.String(), "paradox")
	require.Contains(b.String(), "\x1b[")
}
