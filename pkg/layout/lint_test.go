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
package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lint_01(t *testing.T) {
	records := parseString(t, `
		TestB2 = u32 {
			love: 0-1;
			love2: 2-4;
			war: 5-8 [mut = false];
		}`)
	//
	assert.Empty(t, Lint(records))
}

func Test_Lint_02(t *testing.T) {
	records := parseString(t, "R = u8 { a: 0-3; b: 2-5; c: 3; d: 7; }")
	warnings := Lint(records)
	//
	require.Len(t, warnings, 3)
	assert.Equal(t, "R.b: overlaps a at bits 2-3", warnings[0].String())
	assert.Equal(t, "R.c: overlaps a at bit 3", warnings[1].String())
	assert.Equal(t, "R.c: overlaps b at bit 3", warnings[2].String())
}

func Test_Lint_03(t *testing.T) {
	records := parseString(t, "R = u16 { a: 14-17; b: 16; c: 15; }")
	warnings := Lint(records)
	// Bits beyond the width are not counted as overlapping
	require.Len(t, warnings, 3)
	assert.Equal(t, "R.a: bit 17 is beyond the width of uint16", warnings[0].String())
	assert.Equal(t, "R.b: bit 16 is beyond the width of uint16", warnings[1].String())
	assert.Equal(t, "R.c: overlaps a at bit 15", warnings[2].String())
	assert.Same(t, records[0].Fields[2], warnings[2].Field)
}

func Test_Lint_04(t *testing.T) {
	records := parseString(t, "W = u128 { lo: 0-63; mid: 60..70; hi: 64-127; }")
	warnings := Lint(records)
	//
	require.Len(t, warnings, 2)
	assert.Equal(t, "W.mid: overlaps lo at bits 60-63", warnings[0].String())
	assert.Equal(t, "W.hi: overlaps mid at bits 64-69", warnings[1].String())
}
