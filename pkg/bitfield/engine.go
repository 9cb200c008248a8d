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

// BitField describes the operations available on anything which can be
// manipulated as a fixed-width sequence of bits.  Generated records implement
// this interface by delegating to their backing value, as do Uint128 and
// Int128.
type BitField[T any] interface {
	// SetBit sets the ith bit to 1.
	SetBit(i T)
	// ClearBit sets the ith bit to 0.
	ClearBit(i T)
	// ToggleBit flips the ith bit.
	ToggleBit(i T)
	// GetBit returns true if the ith bit is 1.
	GetBit(i T) bool
	// SetBitRange writes the low bits of a value into a given range, discarding
	// any bits of the value which do not fit.
	SetBitRange(r Range[T], val T)
	// GetBitRange reads the bits in a given range, returning them aligned at
	// bit 0.
	GetBitRange(r Range[T]) T
}

// SetBit sets the ith bit of x to 1.  This has no effect if the bit is already
// set.
func SetBit[T Integer](x *T, i T) {
	checkIndex(i, BitSize[T]())
	*x |= One[T]() << i
}

// ClearBit sets the ith bit of x to 0.
func ClearBit[T Integer](x *T, i T) {
	checkIndex(i, BitSize[T]())
	*x &^= One[T]() << i
}

// ToggleBit flips the ith bit of x.
func ToggleBit[T Integer](x *T, i T) {
	checkIndex(i, BitSize[T]())
	*x ^= One[T]() << i
}

// GetBit returns true if the ith bit of x is 1.
func GetBit[T Integer](x T, i T) bool {
	checkIndex(i, BitSize[T]())
	return (x&(One[T]()<<i))>>i != Zero[T]()
}

// Mask returns a value whose low (End-Start+1) bits are 1 and all others are 0.
// When the range covers the whole type the result is all ones, rather than the
// outcome of shifting by the full width.
func Mask[T Integer](r Range[T]) T {
	var (
		ones = ^Zero[T]()
		n    = r.End - r.Start + One[T]()
	)
	//
	checkRange(r.Start, r.End, BitSize[T]())
	//
	if n == BitSize[T]() {
		return ones
	}
	//
	return ^(ones << n)
}

// SetBitRange overwrites the bits of x within r with the low bits of val.  Bits
// of val above the width of the range are discarded.
func SetBitRange[T Integer](x *T, r Range[T], val T) {
	mask := Mask(r)
	//
	*x &^= mask << r.Start
	*x |= (val & mask) << r.Start
}

// GetBitRange returns the bits of x within r, shifted down so that r.Start
// becomes bit 0.  For signed types the shift is arithmetic, hence a window
// which includes the sign bit is sign extended.
func GetBitRange[T Integer](x T, r Range[T]) T {
	return (x & (Mask(r) << r.Start)) >> r.Start
}
