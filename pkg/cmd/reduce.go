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

// reduceCmd implements SPEC_FULL.md sec. 4.16's "chull reduce <file>": reads
// a single polyhedron and prints its redundancy-eliminated form.
var reduceCmd = &cobra.Command{
	Use:   "reduce file",
	Short: "Eliminate redundant inequalities and implicit equalities from a single polyhedron.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		p := readPolyhedronFile(args[0])

		result, err := hull.ReduceSingle(p)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(reduceCmd)
}
