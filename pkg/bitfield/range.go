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

import "fmt"

// Range identifies an inclusive window of bits [Start, End] within a backing
// value.  It is expected that Start <= End and that End is below the bit width
// of the backing type.
type Range[T any] struct {
	Start T
	End   T
}

// Inclusive constructs the range start..=end.
func Inclusive[T any](start, end T) Range[T] {
	return Range[T]{start, end}
}

// Exclusive constructs the range start..end, which is normalised to the
// inclusive range start..=end-1.
func Exclusive[T Integer](start, end T) Range[T] {
	return Normalize(Included(start), Excluded(end))
}

// From constructs the range start.., which extends to the most significant bit
// of the backing type.
func From[T Integer](start T) Range[T] {
	return Normalize(Included(start), Unbounded[T]())
}

// Through constructs the range ..=end, which begins at the least significant
// bit.
func Through[T Integer](end T) Range[T] {
	return Normalize(Unbounded[T](), Included(end))
}

// Full constructs the range covering every bit of the backing type.
func Full[T Integer]() Range[T] {
	return Normalize(Unbounded[T](), Unbounded[T]())
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v..=%v", r.Start, r.End)
}

// BoundKind distinguishes the three forms a range bound can take.
type BoundKind uint8

const (
	// UNBOUNDED indicates an omitted bound.
	UNBOUNDED BoundKind = iota
	// INCLUDED indicates the bound itself lies within the range.
	INCLUDED
	// EXCLUDED indicates the range stops just before (or starts just after) the
	// bound.
	EXCLUDED
)

// Bound represents one end of a (possibly open) range prior to normalisation.
type Bound[T any] struct {
	Kind  BoundKind
	Value T
}

// Included constructs an inclusive bound.
func Included[T any](v T) Bound[T] {
	return Bound[T]{INCLUDED, v}
}

// Excluded constructs an exclusive bound.
func Excluded[T any](v T) Bound[T] {
	return Bound[T]{EXCLUDED, v}
}

// Unbounded constructs an omitted bound.
func Unbounded[T any]() Bound[T] {
	var zero T
	return Bound[T]{UNBOUNDED, zero}
}

// Normalize converts a pair of bounds into an inclusive range.  An omitted lower
// bound becomes zero, an omitted upper bound becomes the most significant bit,
// an excluded upper bound x becomes x-1 and an excluded lower bound x becomes
// x+1.
func Normalize[T Integer](lo, hi Bound[T]) Range[T] {
	var start, end T
	//
	switch lo.Kind {
	case UNBOUNDED:
		start = Zero[T]()
	case EXCLUDED:
		start = lo.Value + One[T]()
	default:
		start = lo.Value
	}
	//
	switch hi.Kind {
	case UNBOUNDED:
		end = BitSize[T]() - One[T]()
	case EXCLUDED:
		end = hi.Value - One[T]()
	default:
		end = hi.Value
	}
	//
	return Range[T]{start, end}
}
