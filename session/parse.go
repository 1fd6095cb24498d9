// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

// ParseLine splits a shell-like line such as
//
//	tree insert 1969 "Moon Landing"
//
// into a [Command]. The target and operation are case-insensitive.
func ParseLine(line string) (Command, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return Command{}, err
	}
	return ParseWords(words)
}

func ParseWords(words []string) (Command, error) {
	if len(words) == 0 {
		return Command{}, ErrEmptyCommand
	}
	cmd := Command{Target: Target(strings.ToLower(words[0]))}
	if len(words) > 1 {
		cmd.Op = strings.ToLower(words[1])
	}
	if len(words) > 2 {
		cmd.Args = words[2:]
	}
	return cmd, nil
}
