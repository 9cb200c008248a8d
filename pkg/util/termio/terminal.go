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
package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether a given file (e.g. os.Stdout) is attached to a
// terminal, and hence whether escapes should be written to it.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Colourizer applies escapes to text only when enabled, so that output
// redirected to a file or pipe stays plain.
type Colourizer struct {
	enabled bool
}

// NewColourizer constructs a colourizer which applies escapes only if the
// given file is a terminal.
func NewColourizer(file *os.File) Colourizer {
	return Colourizer{IsTerminal(file)}
}

// Apply the given escape to some text, if enabled.
func (p Colourizer) Apply(escape AnsiEscape, text string) string {
	if p.enabled {
		return escape.Wrap(text)
	}
	//
	return text
}
