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
package cmd

import (
	"fmt"
	"os"

	"github.com/go-polyhedra/chull/pkg/hull"
	"github.com/spf13/cobra"
)

// simpleHullCmd implements SPEC_FULL.md sec. 4.16's "chull simple-hull
// <file>".
var simpleHullCmd = &cobra.Command{
	Use:   "simple-hull file",
	Short: "Compute a cheap over-approximation of the convex hull.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		u := readUnionFile(args[0])

		result, err := hull.SimpleHull(u)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(simpleHullCmd)
}
