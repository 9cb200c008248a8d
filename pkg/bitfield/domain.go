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

// Package bitfield provides the bit arithmetic used by generated bit-field
// records: getting, setting, clearing and toggling single bits, and reading or
// writing inclusive ranges of bits within a fixed-width integer.
//
// All operations are pure functions of their inputs and perform no bounds
// checking.  A bit index at or beyond the width of the backing type, or a range
// whose start exceeds its end, is a precondition violation whose outcome is
// unspecified.  Building with the "bitfidebug" tag enables assertions for
// these conditions.
package bitfield

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer captures the primitive integer types which can back a bit-field
// record.  This includes all signed and unsigned widths between 8 and 64 bits,
// the pointer-sized types, and any type defined over them.  The 128-bit widths
// are covered separately by Uint128 and Int128 (see Wide).
type Integer interface {
	constraints.Integer
}

// One returns the multiplicative identity for T.
func One[T Integer]() T {
	return 1
}

// Zero returns the zero value for T.
func Zero[T Integer]() T {
	return 0
}

// BitSize returns the number of bits in T, expressed as a T.  For example,
// BitSize[uint16]() returns 16.
func BitSize[T Integer]() T {
	var x T
	//
	return T(unsafe.Sizeof(x) * 8)
}

// Width returns the number of bits in T as a uint.  This is the same quantity
// as BitSize, but in a type suitable for loops and comparisons across types.
func Width[T Integer]() uint {
	var x T
	//
	return uint(unsafe.Sizeof(x) * 8)
}
