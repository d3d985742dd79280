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
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/source/sexp"
	"github.com/spf13/cobra"
)

// hullCmd implements SPEC_FULL.md sec. 4.16's "chull hull <file>".
var hullCmd = &cobra.Command{
	Use:   "hull file",
	Short: "Compute the exact convex hull of a union of polyhedra.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		u := readUnionFile(args[0])

		result, err := hull.ConvexHull(u)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		printResult(result)
	},
}

// printResult prints p in pkg/source/sexp's notation, or the literal EMPTY
// for the empty polyhedron (whose equality/inequality sequences are stale
// per polytope.Polyhedron.Equalities' doc comment, so FormatPolyhedron must
// not be asked to render one). Output wider than the attached terminal is
// wrapped onto a continuation line, per pkg/util/termio's own
// terminal-width awareness in the teacher.
func printResult(p polytope.Polyhedron) {
	if p.IsEmpty() {
		fmt.Println("EMPTY")

		return
	}

	printWrapped(sexp.FormatPolyhedron(p))
}

func init() {
	rootCmd.AddCommand(hullCmd)
}
