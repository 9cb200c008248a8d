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
	"math"
	"math/bits"
)

// Type describes an integer type which can back a record.
type Type struct {
	// Canonical name of the type, as used in layout files.
	Name string
	// Go expression for the type in generated code.
	GoType string
	// Number of bits in the type.
	Width uint
	// Signed indicates a two's complement type.
	Signed bool
	// Wide indicates the type is implemented by the bitfield package rather than
	// being a primitive Go integer.
	Wide bool
}

// MaxIndex returns the largest constant which can be written as a bit index
// for this type in generated code.  Bit indices are expressed in the backing
// type itself, so (for example) 300 cannot index a uint8 even though it would
// be out of bounds anyway.
func (t Type) MaxIndex() uint64 {
	switch {
	case t.Wide && t.Signed:
		return math.MaxInt64
	case t.Wide:
		return math.MaxUint64
	case t.Signed:
		return 1<<(t.Width-1) - 1
	case t.Width == 64:
		return math.MaxUint64
	default:
		return 1<<t.Width - 1
	}
}

func (t Type) String() string {
	return t.Name
}

var types = []Type{
	{"uint8", "uint8", 8, false, false},
	{"uint16", "uint16", 16, false, false},
	{"uint32", "uint32", 32, false, false},
	{"uint64", "uint64", 64, false, false},
	{"uint128", "bitfield.Uint128", 128, false, true},
	{"int8", "int8", 8, true, false},
	{"int16", "int16", 16, true, false},
	{"int32", "int32", 32, true, false},
	{"int64", "int64", 64, true, false},
	{"int128", "bitfield.Int128", 128, true, true},
	{"uint", "uint", bits.UintSize, false, false},
	{"int", "int", bits.UintSize, true, false},
	{"uintptr", "uintptr", bits.UintSize, false, false},
}

// Short names accepted in addition to the canonical ones.
var aliases = map[string]string{
	"u8":    "uint8",
	"u16":   "uint16",
	"u32":   "uint32",
	"u64":   "uint64",
	"u128":  "uint128",
	"i8":    "int8",
	"i16":   "int16",
	"i32":   "int32",
	"i64":   "int64",
	"i128":  "int128",
	"usize": "uint",
	"isize": "int",
}

// LookupType finds the backing type with a given name (or alias).
func LookupType(name string) (Type, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	//
	for _, t := range types {
		if t.Name == name {
			return t, true
		}
	}
	//
	return Type{}, false
}
