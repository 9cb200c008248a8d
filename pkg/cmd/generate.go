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
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-bitfi/pkg/generate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] layout_file(s)",
	Short: "generate Go source for one or more layout files.",
	Long: `Generate a single Go source file implementing the records declared in the
given layout files.  This is typically run via a "go:generate" directive, in which
case the package defaults to that of the file containing the directive.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := generateOptions{
			output: GetString(cmd, "output"),
			pkg:    GetString(cmd, "package"),
			format: !GetFlag(cmd, "no-format"),
		}
		//
		if err := runGenerate(args, opts); err != nil {
			if !errors.Is(err, errSyntax) {
				fmt.Println(err.Error())
			}
			//
			os.Exit(1)
		}
	},
}

type generateOptions struct {
	output string
	pkg    string
	format bool
}

func runGenerate(filenames []string, opts generateOptions) error {
	records, err := readLayoutFiles(os.Stdout, filenames)
	if err != nil {
		return err
	}
	//
	if opts.output == "" {
		opts.output = defaultOutput(filenames[0])
	}
	//
	if opts.pkg == "" {
		// Set by "go generate"
		opts.pkg = os.Getenv("GOPACKAGE")
	}
	//
	if opts.pkg == "" {
		return errors.New("no package given (use --package)")
	}
	//
	log.Debugf("generating package %s into %s", opts.pkg, opts.output)
	//
	return generate.Generate(opts.output, records, generate.Config{Package: opts.pkg, Format: opts.format})
}

// Determine the output file for a given layout file, e.g. "records.bf" gives
// "records_gen.go" in the same directory.
func defaultOutput(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + "_gen.go"
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "specify output file (default <first file>_gen.go).")
	generateCmd.Flags().StringP("package", "p", "", "specify Go package (default $GOPACKAGE).")
	generateCmd.Flags().Bool("no-format", false, "do not gofmt the generated file.")
}
