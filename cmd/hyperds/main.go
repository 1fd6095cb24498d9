// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperds",
		Short: "Ordered queue and time-stream playground",
		Long: `Drives an ER patient queue (a doubly linked list) and a time-stream of
historical events (an unbalanced binary search tree) through narrated demos,
operation scripts or an interactive shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}
	a.bindFlags(rootCmd)
	rootCmd.AddCommand(
		newERQueueCmd(a),
		newTimeStreamCmd(a),
		newRunCmd(a),
		newReplCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}
