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
	"math/big"
	"math/bits"
)

// Wide is the capability set required of a backing type which is not a
// primitive Go integer.  This is currently only needed for the 128-bit widths,
// which are implemented by Uint128 and Int128.  Shift amounts are values of
// the type itself, mirroring the primitive engine.
type Wide[T any] interface {
	comparable
	Or(y T) T
	And(y T) T
	Xor(y T) T
	Not() T
	Lsh(n T) T
	Rsh(n T) T
	Add(y T) T
	Sub(y T) T
	// One returns the multiplicative identity.
	One() T
	// Zero returns the zero value.
	Zero() T
	// BitSize returns the width of the type in bits.
	BitSize() T
}

// ============================================================================
// Uint128
// ============================================================================

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words.  The zero
// value is zero.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// U128 constructs a Uint128 from a 64-bit value.
func U128(v uint64) Uint128 {
	return Uint128{0, v}
}

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 { return Uint128{x.Hi | y.Hi, x.Lo | y.Lo} }

// And returns x & y.
func (x Uint128) And(y Uint128) Uint128 { return Uint128{x.Hi & y.Hi, x.Lo & y.Lo} }

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 { return Uint128{x.Hi ^ y.Hi, x.Lo ^ y.Lo} }

// Not returns ^x.
func (x Uint128) Not() Uint128 { return Uint128{^x.Hi, ^x.Lo} }

// Lsh returns x << n.  Shifting by 128 or more gives zero.
func (x Uint128) Lsh(n Uint128) Uint128 {
	hi, lo := lsh(x.Hi, x.Lo, shiftCount(n.Hi, n.Lo))
	return Uint128{hi, lo}
}

// Rsh returns x >> n, filling with zeros.  Shifting by 128 or more gives zero.
func (x Uint128) Rsh(n Uint128) Uint128 {
	hi, lo := rsh(x.Hi, x.Lo, shiftCount(n.Hi, n.Lo))
	return Uint128{hi, lo}
}

// Add returns x + y, wrapping on overflow.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	//
	return Uint128{hi, lo}
}

// Sub returns x - y, wrapping on underflow.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	//
	return Uint128{hi, lo}
}

// One returns 1.
func (x Uint128) One() Uint128 { return Uint128{0, 1} }

// Zero returns 0.
func (x Uint128) Zero() Uint128 { return Uint128{} }

// BitSize returns 128.
func (x Uint128) BitSize() Uint128 { return Uint128{0, 128} }

// Big returns x as a big integer.
func (x Uint128) Big() *big.Int {
	var (
		hi = new(big.Int).SetUint64(x.Hi)
		lo = new(big.Int).SetUint64(x.Lo)
	)
	//
	return hi.Lsh(hi, 64).Or(hi, lo)
}

func (x Uint128) String() string {
	return x.Big().String()
}

// SetBit sets the ith bit to 1.
func (x *Uint128) SetBit(i Uint128) { WideSetBit(x, i) }

// ClearBit sets the ith bit to 0.
func (x *Uint128) ClearBit(i Uint128) { WideClearBit(x, i) }

// ToggleBit flips the ith bit.
func (x *Uint128) ToggleBit(i Uint128) { WideToggleBit(x, i) }

// GetBit returns true if the ith bit is 1.
func (x *Uint128) GetBit(i Uint128) bool { return WideGetBit(*x, i) }

// SetBitRange writes the low bits of val into r.
func (x *Uint128) SetBitRange(r Range[Uint128], val Uint128) { WideSetBitRange(x, r, val) }

// GetBitRange reads the bits within r, aligned at bit 0.
func (x *Uint128) GetBitRange(r Range[Uint128]) Uint128 { return WideGetBitRange(*x, r) }

// ============================================================================
// Int128
// ============================================================================

// Int128 is a signed (two's complement) 128-bit integer stored as two 64-bit
// words.  The zero value is zero.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// I128 constructs an Int128 from a 64-bit value, sign extending as necessary.
func I128(v int64) Int128 {
	return Int128{uint64(v >> 63), uint64(v)}
}

// Or returns x | y.
func (x Int128) Or(y Int128) Int128 { return Int128{x.Hi | y.Hi, x.Lo | y.Lo} }

// And returns x & y.
func (x Int128) And(y Int128) Int128 { return Int128{x.Hi & y.Hi, x.Lo & y.Lo} }

// Xor returns x ^ y.
func (x Int128) Xor(y Int128) Int128 { return Int128{x.Hi ^ y.Hi, x.Lo ^ y.Lo} }

// Not returns ^x.
func (x Int128) Not() Int128 { return Int128{^x.Hi, ^x.Lo} }

// Lsh returns x << n.  Shifting by 128 or more (or by a negative amount) gives
// zero.
func (x Int128) Lsh(n Int128) Int128 {
	hi, lo := lsh(x.Hi, x.Lo, shiftCount(n.Hi, n.Lo))
	return Int128{hi, lo}
}

// Rsh returns x >> n, replicating the sign bit.  Shifting by 128 or more (or by
// a negative amount) gives 0 or -1 depending on the sign of x.
func (x Int128) Rsh(n Int128) Int128 {
	hi, lo := sar(x.Hi, x.Lo, shiftCount(n.Hi, n.Lo))
	return Int128{hi, lo}
}

// Add returns x + y, wrapping on overflow.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	//
	return Int128{hi, lo}
}

// Sub returns x - y, wrapping on underflow.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	//
	return Int128{hi, lo}
}

// One returns 1.
func (x Int128) One() Int128 { return Int128{0, 1} }

// Zero returns 0.
func (x Int128) Zero() Int128 { return Int128{} }

// BitSize returns 128.
func (x Int128) BitSize() Int128 { return Int128{0, 128} }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int128) Sign() int {
	switch {
	case int64(x.Hi) < 0:
		return -1
	case x.Hi == 0 && x.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Big returns x as a big integer.
func (x Int128) Big() *big.Int {
	if x.Sign() < 0 {
		// Negate, convert, then restore the sign.
		b := Uint128(x.Zero().Sub(x)).Big()
		return b.Neg(b)
	}
	//
	return Uint128(x).Big()
}

func (x Int128) String() string {
	return x.Big().String()
}

// SetBit sets the ith bit to 1.
func (x *Int128) SetBit(i Int128) { WideSetBit(x, i) }

// ClearBit sets the ith bit to 0.
func (x *Int128) ClearBit(i Int128) { WideClearBit(x, i) }

// ToggleBit flips the ith bit.
func (x *Int128) ToggleBit(i Int128) { WideToggleBit(x, i) }

// GetBit returns true if the ith bit is 1.
func (x *Int128) GetBit(i Int128) bool { return WideGetBit(*x, i) }

// SetBitRange writes the low bits of val into r.
func (x *Int128) SetBitRange(r Range[Int128], val Int128) { WideSetBitRange(x, r, val) }

// GetBitRange reads the bits within r, aligned at bit 0.
func (x *Int128) GetBitRange(r Range[Int128]) Int128 { return WideGetBitRange(*x, r) }

// ============================================================================
// Helpers
// ============================================================================

// Determine the effective shift amount for a 128-bit shift count.  Anything
// which does not fit below 128 saturates at 128.
func shiftCount(hi, lo uint64) uint {
	if hi != 0 || lo >= 128 {
		return 128
	}
	//
	return uint(lo)
}

func lsh(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n >= 128:
		return 0, 0
	case n >= 64:
		return lo << (n - 64), 0
	default:
		return hi<<n | lo>>(64-n), lo << n
	}
}

func rsh(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n >= 128:
		return 0, 0
	case n >= 64:
		return 0, hi >> (n - 64)
	default:
		return hi >> n, lo>>n | hi<<(64-n)
	}
}

// arithmetic right shift
func sar(hi, lo uint64, n uint) (uint64, uint64) {
	sign := uint64(int64(hi) >> 63)
	//
	switch {
	case n >= 128:
		return sign, sign
	case n >= 64:
		return sign, uint64(int64(hi) >> (n - 64))
	default:
		return uint64(int64(hi) >> n), lo>>n | hi<<(64-n)
	}
}
