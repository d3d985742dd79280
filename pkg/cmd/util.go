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
	"strings"

	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/source/sexp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// getFlag reads an expected boolean flag, or exits the process if it is
// missing (a programming error, since every flag read here is also
// registered in an init()), per the teacher's pkg/cmd/util.go.getFlag.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readUnionFile reads and parses filename as the (set (dim D) ...) notation
// of pkg/source/sexp, exiting with a highlighted syntax error on failure
// (the teacher's pkg/cmd/util.go.readSchemaFile / printSyntaxError pattern).
func readUnionFile(filename string) polytope.Union {
	text, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	u, err := sexp.ParseUnion(string(text))
	if err != nil {
		reportParseError(filename, string(text), err)
	}

	return u
}

// readPolyhedronFile reads filename as a single-member union, for the
// "reduce" command.
func readPolyhedronFile(filename string) polytope.Polyhedron {
	text, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	p, err := sexp.ParsePolyhedron(string(text))
	if err != nil {
		reportParseError(filename, string(text), err)
	}

	return p
}

func reportParseError(filename, text string, err error) {
	if se, ok := err.(*sexp.SyntaxError); ok {
		printSyntaxError(filename, se.Msg, se.Start, se.End, text)
	} else {
		fmt.Println(err)
	}

	os.Exit(2)
}

// printSyntaxError prints a syntax error with a caret under the offending
// span, mirroring the teacher's pkg/cmd/util.go.printSyntaxError.
func printSyntaxError(filename, msg string, start, end int, text string) {
	line, offset, num := findEnclosingLine(start, text)

	fmt.Printf("%s:%d: %s\n", filename, num, msg)
	fmt.Println(line)
	fmt.Print(strings.Repeat(" ", start-offset))
	fmt.Println(strings.Repeat("^", max(end-start, 1)))
}

// findEnclosingLine finds the line (and its 1-indexed line number and
// starting rune offset) in text that contains the rune at index.
func findEnclosingLine(index int, text string) (line string, start int, num int) {
	runes := []rune(text)

	if index >= len(runes) {
		index = len(runes) - 1
	}

	num = 1
	start = 0

	for i := 0; i < len(runes); i++ {
		if i == index {
			end := findEndOfLine(index, runes)

			return string(runes[start:end]), start, num
		} else if runes[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return string(runes[start:]), start, num
}

func findEndOfLine(index int, runes []rune) int {
	for i := index; i < len(runes); i++ {
		if runes[i] == '\n' {
			return i
		}
	}

	return len(runes)
}

// printWrapped prints s as-is when stdout is not an interactive terminal
// (piped into a file or another program, where wrapping would corrupt the
// notation), and otherwise folds any line wider than the terminal onto a
// continuation line, following the teacher's pkg/util/termio reliance on
// golang.org/x/term for size detection.
func printWrapped(s string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Println(s)

		return
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		fmt.Println(s)

		return
	}

	for _, line := range strings.Split(s, "\n") {
		for len(line) > width {
			fmt.Println(line[:width])
			line = "  " + line[width:]
		}

		fmt.Println(line)
	}
}
