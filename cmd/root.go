// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the goframe command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "Static analysis of 2D frame structures",
	Long: `goframe - finite element analysis of planar frames

Computes nodal displacements, support reactions and internal force
diagrams (N, V, M) of beam-column structures using the direct stiffness
method with cubic Hermite bending interpolation.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
