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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[31m", NewAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[1;33m", BoldAnsiEscape().FgColour(TERM_YELLOW).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
}

func Test_Escape_02(t *testing.T) {
	escape := NewAnsiEscape().FgColour(TERM_GREEN)
	//
	assert.Equal(t, "\033[32mok\033[0m", escape.Wrap("ok"))
	assert.Equal(t, "\033[32mok\033[0m", Colourizer{true}.Apply(escape, "ok"))
	assert.Equal(t, "ok", Colourizer{false}.Apply(escape, "ok"))
}

func Test_Colourizer_01(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	// A regular file is never a terminal
	assert.False(t, IsTerminal(file))
	assert.Equal(t, "plain", NewColourizer(file).Apply(BoldAnsiEscape(), "plain"))
	assert.NoError(t, file.Close())
}
