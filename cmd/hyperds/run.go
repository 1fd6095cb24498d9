// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/hyperds/script"
	"github.com/ava-labs/hyperds/session"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a YAML or JSON operation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			if s.Name != "" && !a.config.JSONOutput() {
				a.printer.Outf("{{green}}{{bold}}%s{{/}}\n", s.Name)
			}

			var printErr error
			err = s.Run(cmd.Context(), a.session, func(_ int, res *session.Result) {
				if printErr == nil {
					printErr = a.printResult(res)
				}
			})
			if err != nil {
				return err
			}
			if printErr != nil {
				return printErr
			}
			return a.printMetrics()
		},
	}
}
