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

	"github.com/consensys/go-bitfi/pkg/layout"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] layout_file(s)",
	Short: "check one or more layout files.",
	Long: `Check that one or more layout files are well-formed, reporting any errors along
with warnings for overlapping fields or bits beyond the width of a record.
Optionally, the records can be printed in canonical form or as YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := checkOptions{
			print: GetFlag(cmd, "print"),
			yaml:  GetFlag(cmd, "yaml"),
		}
		//
		if err := runCheck(os.Stdout, args, opts); err != nil {
			if !errors.Is(err, errSyntax) {
				fmt.Println(err.Error())
			}
			//
			os.Exit(1)
		}
	},
}

type checkOptions struct {
	print bool
	yaml  bool
}

func runCheck(out io.Writer, filenames []string, opts checkOptions) error {
	records, err := readLayoutFiles(out, filenames)
	if err != nil {
		return err
	}
	//
	log.Debugf("checked %d records", len(records))
	//
	switch {
	case opts.print && opts.yaml:
		return errors.New("cannot use --print and --yaml together")
	case opts.print:
		_, err = io.WriteString(out, layout.Format(records))
	case opts.yaml:
		var bytes []byte
		//
		if bytes, err = layout.MarshalYAML(records); err == nil {
			_, err = out.Write(bytes)
		}
	}
	//
	return err
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("print", false, "print records in canonical form.")
	checkCmd.Flags().Bool("yaml", false, "print records as YAML.")
}
