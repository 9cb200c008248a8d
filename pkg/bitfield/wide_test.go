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
package bitfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Uint128_Arith_01(t *testing.T) {
	var (
		ones = Uint128{math.MaxUint64, math.MaxUint64}
		one  = U128(1)
	)
	// Carry across words
	assert.Equal(t, Uint128{1, 0}, U128(math.MaxUint64).Add(one))
	assert.Equal(t, U128(math.MaxUint64), Uint128{1, 0}.Sub(one))
	// Wrap around
	assert.Equal(t, Uint128{}, ones.Add(one))
	assert.Equal(t, ones, Uint128{}.Sub(one))
	assert.Equal(t, ones, Uint128{}.Not())
	assert.Equal(t, "340282366920938463463374607431768211455", ones.String())
}

func Test_Uint128_Shift_01(t *testing.T) {
	var x = U128(0b101)
	//
	assert.Equal(t, Uint128{0, 0b1010}, x.Lsh(U128(1)))
	assert.Equal(t, Uint128{0b101, 0}, x.Lsh(U128(64)))
	assert.Equal(t, Uint128{0b10, 1 << 63}, x.Lsh(U128(63)))
	assert.Equal(t, Uint128{1 << 63, 0}, U128(1).Lsh(U128(127)))
	assert.Equal(t, Uint128{}, x.Lsh(U128(128)))
	assert.Equal(t, Uint128{}, x.Lsh(Uint128{1, 0}))
	assert.Equal(t, x, x.Lsh(U128(64)).Rsh(U128(64)))
	assert.Equal(t, U128(1), Uint128{1 << 63, 0}.Rsh(U128(127)))
	assert.Equal(t, Uint128{}, Uint128{1 << 63, 0}.Rsh(U128(128)))
}

func Test_Int128_Arith_01(t *testing.T) {
	var minusOne = I128(-1)
	//
	assert.Equal(t, Int128{math.MaxUint64, math.MaxUint64}, minusOne)
	assert.Equal(t, I128(0), minusOne.Add(I128(1)))
	assert.Equal(t, -1, minusOne.Sign())
	assert.Equal(t, 0, I128(0).Sign())
	assert.Equal(t, 1, I128(5).Sign())
	assert.Equal(t, "-1", minusOne.String())
	assert.Equal(t, "-170141183460469231731687303715884105728", Int128{1 << 63, 0}.String())
	// Arithmetic right shift preserves the sign
	assert.Equal(t, minusOne, Int128{1 << 63, 0}.Rsh(I128(127)))
	assert.Equal(t, minusOne, minusOne.Rsh(I128(200)))
	assert.Equal(t, I128(-2), I128(-4).Rsh(I128(1)))
}

func Test_Uint128_SingleBit(t *testing.T) {
	for i := uint64(0); i < 128; i++ {
		var x Uint128
		//
		x.SetBit(U128(i))
		require.True(t, x.GetBit(U128(i)), "bit %d not set", i)
		//
		for j := uint64(0); j < 128; j++ {
			if j != i {
				require.False(t, x.GetBit(U128(j)), "bit %d set after setting %d", j, i)
			}
		}
		//
		x.ToggleBit(U128(i))
		require.Equal(t, Uint128{}, x)
		x.ToggleBit(U128(i))
		x.ClearBit(U128(i))
		require.Equal(t, Uint128{}, x, "bit %d not cleared", i)
	}
}

func Test_Int128_SingleBit(t *testing.T) {
	for i := int64(0); i < 128; i++ {
		var x Int128
		//
		x.SetBit(I128(i))
		require.True(t, x.GetBit(I128(i)), "bit %d not set", i)
		require.Equal(t, i == 127, x.Sign() < 0)
		x.ClearBit(I128(i))
		require.Equal(t, Int128{}, x, "bit %d not cleared", i)
	}
}

func Test_Uint128_BitRange_01(t *testing.T) {
	var (
		x Uint128
		r = Inclusive(U128(60), U128(67))
	)
	// Window straddling the word boundary
	x.SetBitRange(r, U128(0x1a5))
	assert.Equal(t, U128(0xa5), x.GetBitRange(r))
	assert.Equal(t, Uint128{0xa, 0x5 << 60}, x)
	// Neighbouring windows are untouched
	x.SetBitRange(Inclusive(U128(0), U128(59)), U128(math.MaxUint64))
	assert.Equal(t, U128(0xa5), x.GetBitRange(r))
	assert.Equal(t, U128(1<<60-1), x.GetBitRange(Inclusive(U128(0), U128(59))))
}

func Test_Uint128_FullWidth(t *testing.T) {
	var (
		x    Uint128
		full = NormalizeWide(Unbounded[Uint128](), Unbounded[Uint128]())
		ones = Uint128{math.MaxUint64, math.MaxUint64}
	)
	//
	assert.Equal(t, ones, WideMask(full))
	x.SetBitRange(full, ones)
	assert.Equal(t, ones, x)
	assert.Equal(t, ones, x.GetBitRange(full))
	x.SetBitRange(full, U128(0x5a))
	assert.Equal(t, U128(0x5a), x.GetBitRange(full))
}

func Test_Int128_FullWidth(t *testing.T) {
	var (
		x    Int128
		full = NormalizeWide(Unbounded[Int128](), Unbounded[Int128]())
	)
	//
	x.SetBitRange(full, I128(-12345))
	assert.Equal(t, I128(-12345), x)
	assert.Equal(t, I128(-12345), x.GetBitRange(full))
	// Top byte of a negative value is returned sign extended
	assert.Equal(t, I128(-1), x.GetBitRange(Inclusive(I128(120), I128(127))))
	// A window straddling the word boundary below the sign bit is not
	assert.Equal(t, I128(0xff), x.GetBitRange(Inclusive(I128(60), I128(67))))
}

func Test_Int128_BitRange_01(t *testing.T) {
	var (
		x  Int128
		hi = Inclusive(I128(100), I128(127))
	)
	// Negative value in the top window round trips
	x.SetBitRange(hi, I128(-5))
	assert.Equal(t, I128(-5), x.GetBitRange(hi))
	assert.Equal(t, -1, x.Sign())
	// The same bits in an unsigned record read back zero extended
	u := Uint128(x)
	assert.Equal(t, U128(1<<28-5), u.GetBitRange(Inclusive(U128(100), U128(127))))
}

func Test_Wide_BitField(t *testing.T) {
	var (
		_ BitField[Uint128] = &Uint128{}
		_ BitField[Int128]  = &Int128{}
	)
}
