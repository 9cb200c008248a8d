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

// The functions in this file mirror those in engine.go, but are expressed in
// terms of the Wide capability set rather than Go's integer operators.

// WideSetBit sets the ith bit of x to 1.
func WideSetBit[T Wide[T]](x *T, i T) {
	checkWideIndex(i)
	*x = (*x).Or((*x).One().Lsh(i))
}

// WideClearBit sets the ith bit of x to 0.
func WideClearBit[T Wide[T]](x *T, i T) {
	checkWideIndex(i)
	*x = (*x).And((*x).One().Lsh(i).Not())
}

// WideToggleBit flips the ith bit of x.
func WideToggleBit[T Wide[T]](x *T, i T) {
	checkWideIndex(i)
	*x = (*x).Xor((*x).One().Lsh(i))
}

// WideGetBit returns true if the ith bit of x is 1.
func WideGetBit[T Wide[T]](x T, i T) bool {
	checkWideIndex(i)
	return x.And(x.One().Lsh(i)).Rsh(i) != x.Zero()
}

// WideMask returns a value whose low (End-Start+1) bits are 1.  As for Mask, a
// range covering the whole type yields all ones directly.
func WideMask[T Wide[T]](r Range[T]) T {
	var (
		zero T
		ones = zero.Zero().Not()
		n    = r.End.Sub(r.Start).Add(zero.One())
	)
	//
	checkWideRange(r.Start, r.End)
	//
	if n == zero.BitSize() {
		return ones
	}
	//
	return ones.Lsh(n).Not()
}

// WideSetBitRange overwrites the bits of x within r with the low bits of val.
func WideSetBitRange[T Wide[T]](x *T, r Range[T], val T) {
	mask := WideMask(r)
	//
	*x = (*x).And(mask.Lsh(r.Start).Not())
	*x = (*x).Or(val.And(mask).Lsh(r.Start))
}

// WideGetBitRange returns the bits of x within r, shifted down to bit 0.  As
// with GetBitRange, a window of an Int128 which includes the sign bit is sign
// extended.
func WideGetBitRange[T Wide[T]](x T, r Range[T]) T {
	return x.And(WideMask(r).Lsh(r.Start)).Rsh(r.Start)
}

// NormalizeWide is the counterpart of Normalize for wide types.
func NormalizeWide[T Wide[T]](lo, hi Bound[T]) Range[T] {
	var (
		zero       T
		start, end T
	)
	//
	switch lo.Kind {
	case UNBOUNDED:
		start = zero.Zero()
	case EXCLUDED:
		start = lo.Value.Add(zero.One())
	default:
		start = lo.Value
	}
	//
	switch hi.Kind {
	case UNBOUNDED:
		end = zero.BitSize().Sub(zero.One())
	case EXCLUDED:
		end = hi.Value.Sub(zero.One())
	default:
		end = hi.Value
	}
	//
	return Range[T]{start, end}
}
