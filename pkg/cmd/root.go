// Copyright 2026 The chull Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the chull command-line tool of SPEC_FULL.md sec.
// 4.16: cobra subcommands around pkg/hull and the pkg/source/sexp notation,
// laid out the way the teacher's pkg/cmd/root.go lays out go-corset's CLI.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chull",
	Short: "Compute the convex hull of a union of rational polyhedra.",
	Long:  "A command-line front-end for the chull convex hull core, reading and writing its s-expression notation.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("chull ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()

			return
		}

		fmt.Println(cmd.UsageString())
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Raise logging verbosity to debug level")
}
