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
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Warning describes something suspicious about a record which nevertheless
// does not prevent code being generated for it.
type Warning struct {
	Record  *Record
	Field   *Field
	Message string
}

func (p Warning) String() string {
	return fmt.Sprintf("%s.%s: %s", p.Record.Name, p.Field.Name, p.Message)
}

// Lint looks for fields which overlap other fields of the same record, or which
// cover bits beyond the width of the backing type.  Overlapping fields are
// permitted (the last write wins), but are usually a mistake.
func Lint(records []*Record) []Warning {
	var warnings []Warning
	//
	for _, r := range records {
		warnings = append(warnings, lintRecord(r)...)
	}
	//
	return warnings
}

func lintRecord(record *Record) []Warning {
	var (
		warnings []Warning
		width    = record.Type.Width
		occupied = make([]*bitset.BitSet, len(record.Fields))
	)
	//
	for i, f := range record.Fields {
		occupied[i] = fieldBits(f, width)
		//
		if f.End >= width {
			msg := fmt.Sprintf("bit %d is beyond the width of %s", f.End, record.Type)
			warnings = append(warnings, Warning{record, f, msg})
		}
		// Compare against all earlier fields
		for j := 0; j < i; j++ {
			common := occupied[i].Intersection(occupied[j])
			//
			if common.Any() {
				msg := fmt.Sprintf("overlaps %s at %s", record.Fields[j].Name, describeBits(common))
				warnings = append(warnings, Warning{record, f, msg})
			}
		}
	}
	//
	return warnings
}

// Determine the bits occupied by a field.  Bits at or beyond the width of the
// backing type are ignored, since they are reported separately.
func fieldBits(field *Field, width uint) *bitset.BitSet {
	bits := bitset.New(width)
	//
	for i := field.Start; i <= field.End && i < width; i++ {
		bits.Set(i)
	}
	//
	return bits
}

func describeBits(bits *bitset.BitSet) string {
	first, _ := bits.NextSet(0)
	//
	if bits.Count() == 1 {
		return fmt.Sprintf("bit %d", first)
	}
	//
	last := first
	for i, ok := bits.NextSet(first); ok; i, ok = bits.NextSet(i + 1) {
		last = i
	}
	//
	return fmt.Sprintf("bits %d-%d", first, last)
}
