// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cesarep/goframe/fem"
	"github.com/cesarep/goframe/inp"
	"github.com/cesarep/goframe/out"
	"github.com/spf13/cobra"
)

var (
	runStations int
	runVerbose  bool
)

var runCmd = &cobra.Command{
	Use:   "run <model.json>",
	Short: "Run the analysis of a model file and print the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := inp.ReadModel(args[0])
		if err != nil {
			return err
		}
		dom, err := fem.NewDomain(m, runVerbose)
		if err != nil {
			return err
		}
		sol, err := dom.Solve()
		if err != nil {
			return err
		}
		return out.Report(os.Stdout, dom, sol, runStations)
	},
}

func init() {
	runCmd.Flags().IntVar(&runStations, "stations", 11, "number of stations per member in the internal-force tables (0 disables them)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print assembly and solver messages")
	rootCmd.AddCommand(runCmd)
}
