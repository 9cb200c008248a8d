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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lines_01(t *testing.T) {
	file := NewSourceFile("test.bf", []byte("A = u8 {\n  on: 0;\n}"))
	lines := file.Lines()
	//
	require.Len(t, lines, 3)
	assert.Equal(t, "A = u8 {", lines[0].String())
	assert.Equal(t, "  on: 0;", lines[1].String())
	assert.Equal(t, 2, lines[1].Number())
	assert.Equal(t, 9, lines[1].Start())
	assert.Equal(t, "}", lines[2].String())
}

func Test_EnclosingLine_01(t *testing.T) {
	file := NewSourceFile("test.bf", []byte("ab\ncd\nef"))
	// Span starting on "d"
	line := file.FindFirstEnclosingLine(NewSpan(4, 5))
	assert.Equal(t, "cd", line.String())
	assert.Equal(t, 2, line.Number())
	// Span beyond end of file
	line = file.FindFirstEnclosingLine(NewSpan(8, 8))
	assert.Equal(t, "ef", line.String())
	assert.Equal(t, 3, line.Number())
}

func Test_SyntaxError_01(t *testing.T) {
	file := NewSourceFile("test.bf", []byte("A = u8 {\n  on = 0;\n}"))
	err := file.SyntaxError(NewSpan(14, 15), "expected \":\", found \"=\"")
	//
	assert.Equal(t, "=", file.Text(err.Span()))
	assert.Equal(t, "test.bf:2:6: expected \":\", found \"=\"", err.Error())
}

func Test_Span_01(t *testing.T) {
	a, b := NewSpan(2, 4), NewSpan(6, 9)
	joined := a.Join(b)
	//
	assert.Equal(t, NewSpan(2, 9), joined)
	assert.Equal(t, 7, joined.Length())
	assert.Panics(t, func() { NewSpan(3, 2) })
}
