// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/hyperds/session"
)

func newERQueueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "er-queue",
		Short: "Run the ER patient queue walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd, "ER patient queue", session.ERQueueDemo())
		},
	}
}

func newTimeStreamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "time-stream",
		Short: "Run the time-stream event store walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd, "time-stream core", session.TimeStreamDemo())
		},
	}
}

func (a *app) runDemo(cmd *cobra.Command, title string, cmds []session.Command) error {
	if !a.config.JSONOutput() {
		a.printer.Outf("{{green}}{{bold}}%s{{/}}\n", title)
	}
	for _, c := range cmds {
		res, err := a.session.Exec(cmd.Context(), c)
		if err != nil {
			return err
		}
		if err := a.printResult(res); err != nil {
			return err
		}
	}
	return a.printMetrics()
}
