// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cesarep/goframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the goframe version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goframe %s (%s)\n", version.Version, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
