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

//go:build bitfidebug

package bitfield

import "fmt"

func checkIndex[T Integer](i T, width T) {
	if i < 0 || i >= width {
		panic(fmt.Sprintf("bit index %d out of bounds for %d-bit value", i, width))
	}
}

func checkRange[T Integer](start T, end T, width T) {
	if start > end {
		panic(fmt.Sprintf("invalid bit range %d..=%d", start, end))
	} else if start < 0 || end >= width {
		panic(fmt.Sprintf("bit range %d..=%d out of bounds for %d-bit value", start, end, width))
	}
}

func checkWideIndex[T Wide[T]](i T) {
	if !wideInBounds(i) {
		panic(fmt.Sprintf("bit index %v out of bounds for 128-bit value", i))
	}
}

func checkWideRange[T Wide[T]](start T, end T) {
	if !wideInBounds(start) || !wideInBounds(end) {
		panic(fmt.Sprintf("bit range %v..=%v out of bounds for 128-bit value", start, end))
	} else if !wideInBounds(end.Sub(start)) {
		// both indices are in bounds, so a wrapped difference means start > end
		panic(fmt.Sprintf("invalid bit range %v..=%v", start, end))
	}
}

// Holds when 0 <= i < 128, which is the case exactly when no bit above the low
// seven is set.  Negative values of a signed type always have the top bit set.
func wideInBounds[T Wide[T]](i T) bool {
	var zero T
	//
	return i.And(zero.BitSize().Sub(zero.One()).Not()) == zero.Zero()
}
