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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-bitfi/pkg/util/source"
	"github.com/consensys/go-bitfi/pkg/util/termio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const records = `// Example records
TestBf = u16 {
    on: 2;
    love: 0-1;
}
`

func Test_Generate_01(t *testing.T) {
	var (
		dir   = t.TempDir()
		input = writeFile(t, dir, "records.bf", records)
	)
	//
	require.NoError(t, runGenerate([]string{input}, generateOptions{pkg: "example", format: true}))
	//
	contents, err := os.ReadFile(filepath.Join(dir, "records_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "package example")
	assert.Contains(t, string(contents), "func NewTestBf(raw uint16) TestBf")
}

func Test_Generate_02(t *testing.T) {
	var (
		dir    = t.TempDir()
		input  = writeFile(t, dir, "records.bf", records)
		output = filepath.Join(dir, "out", "bits.go")
	)
	//
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0755))
	t.Setenv("GOPACKAGE", "fromenv")
	require.NoError(t, runGenerate([]string{input}, generateOptions{output: output}))
	//
	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "package fromenv")
}

func Test_Generate_03(t *testing.T) {
	input := writeFile(t, t.TempDir(), "records.bf", records)
	//
	t.Setenv("GOPACKAGE", "")
	assert.ErrorContains(t, runGenerate([]string{input}, generateOptions{}), "no package")
	assert.ErrorContains(t, runGenerate(nil, generateOptions{pkg: "x"}), "no layout files")
}

func Test_DefaultOutput(t *testing.T) {
	assert.Equal(t, "records_gen.go", defaultOutput("records.bf"))
	assert.Equal(t, filepath.Join("a", "b_gen.go"), defaultOutput(filepath.Join("a", "b.yaml")))
}

func Test_Check_01(t *testing.T) {
	var (
		out   bytes.Buffer
		input = writeFile(t, t.TempDir(), "records.bf", records)
	)
	//
	require.NoError(t, runCheck(&out, []string{input}, checkOptions{print: true}))
	assert.Equal(t, "TestBf = uint16 {\n\ton: 2;\n\tlove: 0-1;\n}\n", out.String())
}

func Test_Check_02(t *testing.T) {
	var (
		out bytes.Buffer
		dir = t.TempDir()
		bf  = writeFile(t, dir, "a.bf", records)
		yml = writeFile(t, dir, "b.yml", "records:\n  - {name: Other, type: u8, fields: [{name: x, bit: 1}]}\n")
	)
	// Both front ends together
	require.NoError(t, runCheck(&out, []string{bf, yml}, checkOptions{yaml: true}))
	assert.Contains(t, out.String(), "name: TestBf")
	assert.Contains(t, out.String(), "name: Other")
}

func Test_Generate_04(t *testing.T) {
	var (
		dir   = t.TempDir()
		a     = writeFile(t, dir, "a.bf", "Foo = u8 {\n\ta: 0;\n}\n")
		b     = writeFile(t, dir, "b.bf", "foo = u8 {\n\tb: 1;\n}\n")
		opts  = generateOptions{pkg: "example", format: true}
		input = writeFile(t, dir, "import.bf", "bitfield = u8 {\n\ta: 0;\n}\n")
	)
	// Both records would declare NewFoo
	err := runGenerate([]string{a, b}, opts)
	assert.ErrorContains(t, err, `function NewFoo clashes with record "Foo"`)
	assert.NoFileExists(t, filepath.Join(dir, "a_gen.go"))
	// The generated file imports bitfield
	err = runGenerate([]string{input}, opts)
	assert.ErrorIs(t, err, errSyntax)
	assert.NoFileExists(t, filepath.Join(dir, "import_gen.go"))
}

func Test_Check_03(t *testing.T) {
	var (
		out bytes.Buffer
		dir = t.TempDir()
		a   = writeFile(t, dir, "a.bf", records)
		b   = writeFile(t, dir, "b.bf", records)
	)
	// Records from separate files still cannot share a name
	err := runCheck(&out, []string{a, b}, checkOptions{})
	assert.ErrorContains(t, err, `duplicate record "TestBf"`)
}

func Test_Check_04(t *testing.T) {
	var (
		out   bytes.Buffer
		input = writeFile(t, t.TempDir(), "bad.bf", "R = u8 {\n\tx = 1;\n}\n")
	)
	//
	err := runCheck(&out, []string{input}, checkOptions{})
	//
	assert.ErrorIs(t, err, errSyntax)
	assert.Equal(t, input+":2:4-5 expected \":\", found \"=\"\n\n\tx = 1;\n\t  ^\n", out.String())
}

func Test_Check_05(t *testing.T) {
	input := writeFile(t, t.TempDir(), "records.bf", records)
	//
	err := runCheck(&bytes.Buffer{}, []string{input}, checkOptions{print: true, yaml: true})
	assert.Error(t, err)
}

func Test_PrintSyntaxError_01(t *testing.T) {
	var (
		out     bytes.Buffer
		srcfile = source.NewSourceFile("eof.bf", []byte("R = u8 {"))
		err     = srcfile.SyntaxError(source.NewSpan(8, 8), `unexpected end of file, expected "}"`)
	)
	// The end of the file is highlighted by a single caret
	printSyntaxError(&out, termio.Colourizer{}, err)
	assert.Equal(t, "eof.bf:1:9-10 unexpected end of file, expected \"}\"\n\nR = u8 {\n        ^\n", out.String())
}

func writeFile(t *testing.T, dir, name, contents string) string {
	filename := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0644))
	//
	return filename
}
