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
package lex

import "cmp"

// Scanner is a function which accepts some prefix of the given items, returning
// the length of that prefix (or 0 if nothing matched).
type Scanner[T any] func(items []T) uint

// Or succeeds with the first of the given scanners to succeed, trying them
// from left to right.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		//
		return 0
	}
}

// Unit accepts exactly the given sequence of items, in order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// String accepts exactly the characters of the given string.
func String(s string) Scanner[rune] {
	return Unit([]rune(s)...)
}

// Within accepts any single item within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		//
		return 0
	}
}

// Many accepts zero or more consecutive matches of a given scanner.  Observe
// that, since zero matches signals failure, Many only succeeds when at least
// one match is found.
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := scanner(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Until accepts everything up to (but not including) the first occurrence of a
// given item, or the end of input.
func Until[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		for i, c := range items {
			if c == item {
				return uint(i)
			}
		}
		//
		return uint(len(items))
	}
}

// Eof accepts the end of the input.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}

// Sequence accepts each of the given scanners in turn, with each starting
// where the previous finished.  Every scanner must match.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return sequence(false, scanners...)
}

// SequenceNullableLast is as for Sequence, except that the last scanner is
// permitted to match nothing (e.g. the digits after a "0x" prefix).
func SequenceNullableLast[T any](scanners ...Scanner[T]) Scanner[T] {
	return sequence(true, scanners...)
}

func sequence[T any](nullableLast bool, scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for i, scanner := range scanners {
			m := scanner(items[n:])
			//
			if m == 0 && !(nullableLast && i == len(scanners)-1) {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}
