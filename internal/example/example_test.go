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
package example

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/consensys/go-bitfi/pkg/bitfield"
	"github.com/consensys/go-bitfi/pkg/generate"
	"github.com/consensys/go-bitfi/pkg/layout"
	"github.com/consensys/go-bitfi/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Generated records are themselves bit fields.
var (
	_ bitfield.BitField[uint16]           = &TestBf{}
	_ bitfield.BitField[uint32]           = &TestB2{}
	_ bitfield.BitField[bitfield.Uint128] = &Wide{}
	_ bitfield.BitField[int8]             = &Nibbles{}
	_ bitfield.BitField[bitfield.Int128]  = &Signed{}
	_ bitfield.BitField[uint]             = &Word{}
)

func Test_TestBf_01(t *testing.T) {
	var bf TestBf
	//
	bf.SetOn()
	assert.Equal(t, uint16(0b100), bf.GetInner())
	bf.SetLove(0b11)
	assert.Equal(t, uint16(0b111), bf.GetInner())
	assert.True(t, bf.GetOn())
	assert.Equal(t, uint16(0b11), bf.GetLove())
}

func Test_TestBf_02(t *testing.T) {
	bf := NewTestBf(0b111)
	//
	bf.ClearOn()
	assert.False(t, bf.GetOn())
	assert.Equal(t, uint16(0b11), bf.GetLove())
	// Excess bits are discarded
	bf.SetLove(0b1110)
	assert.Equal(t, uint16(0b10), bf.GetLove())
	assert.False(t, bf.GetOn())
	// Raw access
	bf.SetInner(0xffff)
	assert.True(t, bf.GetOn())
	assert.Equal(t, uint16(0b11), bf.GetLove())
}

func Test_TestB2_01(t *testing.T) {
	b2 := NewTestB2(0)
	//
	b2.SetLove(0b11)
	b2.SetLove2(0b101)
	//
	assert.Equal(t, uint32(0b10111), b2.GetInner())
	assert.Equal(t, uint32(0b11), b2.GetLove())
	assert.Equal(t, uint32(0b101), b2.GetLove2())
	assert.Equal(t, uint32(0), b2.GetWar())
}

func Test_TestB2_02(t *testing.T) {
	// An immutable field can only be read
	b2 := NewTestB2(0b1_0110_0000)
	assert.Equal(t, uint32(0b1011), b2.GetWar())
	//
	typ := reflect.TypeOf(&b2)
	//
	for _, name := range []string{"SetWar", "ClearWar"} {
		_, ok := typ.MethodByName(name)
		assert.False(t, ok, name)
	}
	//
	_, ok := typ.MethodByName("SetLove2")
	assert.True(t, ok)
	// But the bits can still be written via the engine
	b2.SetBitRange(bitfield.Inclusive[uint32](5, 8), 0)
	assert.Equal(t, uint32(0), b2.GetWar())
}

func Test_TestB2_03(t *testing.T) {
	var b2 TestB2
	// Disjoint fields are independent
	b2.SetLove2(0b111)
	b2.SetLove(0b01)
	b2.SetLove2(0b010)
	//
	assert.Equal(t, uint32(0b01), b2.GetLove())
	assert.Equal(t, uint32(0b010), b2.GetLove2())
	// Engine operations act on the record itself
	b2.ToggleBit(0)
	assert.False(t, b2.GetBit(0))
	assert.Equal(t, uint32(0b01000), b2.GetBitRange(bitfield.Inclusive[uint32](0, 4)))
}

func Test_Wide_01(t *testing.T) {
	var w Wide
	//
	w.SetLow(bitfield.U128(0xdead_beef))
	w.SetMarker()
	w.SetHigh(bitfield.Uint128{Hi: 0, Lo: 0b101})
	//
	assert.Equal(t, bitfield.U128(0xdead_beef), w.GetLow())
	assert.True(t, w.GetMarker())
	assert.Equal(t, bitfield.U128(0b101), w.GetHigh())
	assert.Equal(t, bitfield.Uint128{Hi: 0b1011, Lo: 0xdead_beef}, w.GetInner())
	//
	w.ClearMarker()
	assert.Equal(t, bitfield.Uint128{Hi: 0b1010, Lo: 0xdead_beef}, w.GetInner())
	// The high field covers the top 63 bits
	w.SetHigh(bitfield.Uint128{Hi: 0, Lo: 1<<64 - 1})
	assert.Equal(t, bitfield.Uint128{Hi: 1<<64 - 2, Lo: 0xdead_beef}, w.GetInner())
	assert.Equal(t, bitfield.U128(1<<63-1), w.GetHigh())
}

func Test_Nibbles_01(t *testing.T) {
	n := NewNibbles(-1)
	// The high nibble holds the sign bit, so reads back sign extended
	assert.Equal(t, int8(-1), n.GetHi())
	assert.Equal(t, int8(0b1111), n.GetLo())
	//
	n.SetHi(-3)
	n.SetLo(5)
	assert.Equal(t, int8(-3), n.GetHi())
	assert.Equal(t, int8(5), n.GetLo())
	assert.Equal(t, int8(-0x2b), n.GetInner())
	// Positive values fit in the low three bits
	n.SetHi(7)
	assert.Equal(t, int8(7), n.GetHi())
	assert.Equal(t, int8(0x75), n.GetInner())
}

func Test_Signed_01(t *testing.T) {
	var s Signed
	//
	s.SetLow(bitfield.I128(-1))
	s.SetCarry()
	// Excess bits of low are discarded, leaving carry and top alone
	assert.Equal(t, bitfield.Int128{Hi: 1, Lo: math.MaxUint64}, s.GetInner())
	assert.Equal(t, bitfield.Int128{Lo: math.MaxUint64}, s.GetLow())
	assert.Equal(t, bitfield.I128(0), s.GetTop())
	assert.True(t, s.GetCarry())
	//
	s.ClearCarry()
	assert.False(t, s.GetCarry())
	assert.Equal(t, bitfield.Int128{Lo: math.MaxUint64}, s.GetInner())
}

func Test_Signed_02(t *testing.T) {
	// The top byte includes the sign bit
	s := NewSigned(bitfield.I128(-2))
	assert.Equal(t, bitfield.I128(-1), s.GetTop())
	assert.Equal(t, bitfield.Int128{Lo: math.MaxUint64 - 1}, s.GetLow())
	assert.True(t, s.GetCarry())
	//
	s.SetInner(bitfield.Int128{Hi: 0x7f << 56})
	assert.Equal(t, bitfield.I128(0x7f), s.GetTop())
	assert.False(t, s.GetCarry())
	// top is immutable
	_, ok := reflect.TypeOf(&s).MethodByName("SetTop")
	assert.False(t, ok)
}

func Test_Word_01(t *testing.T) {
	w := NewWord(0)
	//
	w.SetReady()
	w.SetCount(0x1ff)
	assert.Equal(t, uint(0x1ff), w.GetInner())
	assert.Equal(t, uint(0xff), w.GetCount())
	assert.True(t, w.GetReady())
	//
	w.ClearReady()
	w.SetCount(1)
	assert.Equal(t, uint(0b10), w.GetInner())
}

// Regenerating from records.bf reproduces the checked-in file exactly.
func Test_Regenerate(t *testing.T) {
	bytes, err := os.ReadFile("records.bf")
	require.NoError(t, err)
	//
	records, errs := layout.Parse(source.NewSourceFile("records.bf", bytes))
	require.Empty(t, errs)
	assert.Empty(t, layout.Lint(records))
	//
	output := filepath.Join(t.TempDir(), "records_gen.go")
	require.NoError(t, generate.Generate(output, records, generate.Config{Package: "example", Format: true}))
	//
	expected, err := os.ReadFile("records_gen.go")
	require.NoError(t, err)
	actual, err := os.ReadFile(output)
	require.NoError(t, err)
	//
	assert.Equal(t, string(expected), string(actual))
}
