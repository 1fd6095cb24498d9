// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ava-labs/hyperds/session"
)

// lineReader returns the next line typed by the user. [errDone] ends the
// session.
type lineReader func() (string, error)

var errDone = errors.New("done")

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell over a queue and a time-stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printer.Outf("{{green}}type {{bold}}help{{/}}{{green}} for commands, {{bold}}exit{{/}}{{green}} to leave{{/}}\n")
			return a.repl(cmd.Context(), promptReader())
		},
	}
}

func promptReader() lineReader {
	return func() (string, error) {
		p := promptui.Prompt{
			Label: "hyperds",
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return nil
				}
				_, err := session.ParseLine(input)
				return err
			},
		}
		line, err := p.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errDone
		}
		return line, err
	}
}

func (a *app) repl(ctx context.Context, next lineReader) error {
	for {
		line, err := next()
		if errors.Is(err, errDone) {
			return a.printMetrics()
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return a.printMetrics()
		case "help":
			a.printHelp()
			continue
		}

		cmd, err := session.ParseLine(line)
		if err != nil {
			a.printError(err)
			continue
		}
		res, err := a.session.Exec(ctx, cmd)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.printError(err)
			continue
		}
		if err := a.printResult(res); err != nil {
			return err
		}
	}
}

func (a *app) printHelp() {
	for _, t := range []session.Target{session.Queue, session.Tree} {
		a.printer.Outf("{{cyan}}%s{{/}} %s\n", t, strings.Join(session.Ops(t), " | "))
	}
}
