// Copyright Consensys Software Inc.
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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-bitfi/pkg/layout"
	"github.com/consensys/go-bitfi/pkg/util/source"
	"github.com/consensys/go-bitfi/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errSyntax signals that one or more syntax errors were reported.
var errSyntax = errors.New("syntax errors found")

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the records from one or more layout files, choosing the front end based
// on the extension of each file.  Syntax errors are printed as they are found,
// and lint warnings are logged.
func readLayoutFiles(out io.Writer, filenames []string) ([]*layout.Record, error) {
	var (
		records []*layout.Record
		failed  bool
	)
	//
	if len(filenames) == 0 {
		return nil, errors.New("no layout files given")
	}
	//
	for _, filename := range filenames {
		log.Debugf("reading %s", filename)
		//
		bytes, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		//
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			rs, err := layout.ParseYAML(filename, bytes)
			if err != nil {
				return nil, err
			}
			//
			records = append(records, rs...)
		default:
			rs, errs := layout.Parse(source.NewSourceFile(filename, bytes))
			colour := colourizer(out)
			//
			for _, err := range errs {
				printSyntaxError(out, colour, &err)
			}
			//
			failed = failed || len(errs) > 0
			records = append(records, rs...)
		}
	}
	//
	if failed {
		return nil, errSyntax
	}
	// Records from separate files end up in the same package.
	if issues := layout.Validate(records); len(issues) > 0 {
		errs := make([]error, len(issues))
		for i, issue := range issues {
			errs[i] = issue
		}
		//
		return nil, errors.Join(errs...)
	}
	//
	for _, w := range layout.Lint(records) {
		log.Warn(w.String())
	}
	//
	return records, nil
}

// Colour output only when it goes straight to a terminal.
func colourizer(out io.Writer) termio.Colourizer {
	if file, ok := out.(*os.File); ok {
		return termio.NewColourizer(file)
	}
	//
	return termio.Colourizer{}
}

func printSyntaxError(out io.Writer, colour termio.Colourizer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Errors at the end of a line still get highlighted
	length = max(length, 1)
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent, keeping tabs so the highlight lines up
	fmt.Fprint(out, indent(line.String(), lineOffset))
	// Print highlight
	highlight := termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	fmt.Fprintln(out, colour.Apply(highlight, strings.Repeat("^", length)))
}

// Construct whitespace matching the first n characters of a line.
func indent(line string, n int) string {
	var builder strings.Builder
	//
	for i, r := range []rune(line) {
		if i >= n {
			break
		} else if r == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	return builder.String()
}
