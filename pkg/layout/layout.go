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
	"strings"
)

// FLAG identifies a field covering exactly one bit, whose accessor returns a
// bool.
const FLAG uint = 0

// RANGE identifies a field covering an inclusive window of bits, whose accessor
// returns a value of the backing type.
const RANGE uint = 1

// Field describes a single named field within a record.  For a FLAG, Start and
// End are always equal.
type Field struct {
	Name  string
	Kind  uint
	Start uint
	End   uint
	// Mutable fields are given a setter (and flags a clearer) as well as a
	// getter.
	Mutable bool
}

// NewFlag constructs a (mutable) single bit field.
func NewFlag(name string, index uint) *Field {
	return &Field{name, FLAG, index, index, true}
}

// NewRange constructs a (mutable) field covering bits start through end
// inclusive.
func NewRange(name string, start, end uint) *Field {
	return &Field{name, RANGE, start, end, true}
}

// Width returns the number of bits covered by this field.
func (p *Field) Width() uint {
	return p.End - p.Start + 1
}

// Accessor returns the exported suffix shared by all methods generated for
// this field.
func (p *Field) Accessor() string {
	return toPascalCase(p.Name)
}

// Getter returns the name of the method which reads this field.
func (p *Field) Getter() string {
	return "Get" + p.Accessor()
}

// Setter returns the name of the method which writes this field.
func (p *Field) Setter() string {
	return "Set" + p.Accessor()
}

// Clearer returns the name of the method which clears this field.  Only
// mutable flags have a clearer.
func (p *Field) Clearer() string {
	return "Clear" + p.Accessor()
}

// Methods returns the names of all methods generated for this field.
func (p *Field) Methods() []string {
	switch {
	case !p.Mutable:
		return []string{p.Getter()}
	case p.Kind == FLAG:
		return []string{p.Getter(), p.Setter(), p.Clearer()}
	default:
		return []string{p.Getter(), p.Setter()}
	}
}

func (p *Field) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name)
	builder.WriteString(": ")
	//
	if p.Kind == FLAG {
		builder.WriteString(fmt.Sprintf("%d", p.Start))
	} else {
		builder.WriteString(fmt.Sprintf("%d-%d", p.Start, p.End))
	}
	//
	if !p.Mutable {
		builder.WriteString(" [mut = false]")
	}
	//
	builder.WriteString(";")
	//
	return builder.String()
}

// Record describes a named value type wrapping a single integer, along with the
// fields laid out over its bits.
type Record struct {
	Name   string
	Type   Type
	Fields []*Field
}

// NewRecord constructs a new record from its components.
func NewRecord(name string, backing Type, fields ...*Field) *Record {
	return &Record{name, backing, fields}
}

// Constructor returns the name of the function which creates a zeroed
// instance of this record.
func (p *Record) Constructor() string {
	return "New" + toExported(p.Name)
}

// Field returns the field of the given name, or nil if there is none.
func (p *Record) Field(name string) *Field {
	for _, f := range p.Fields {
		if f.Name == name {
			return f
		}
	}
	//
	return nil
}

// String returns this record in the canonical form of the layout language.
func (p *Record) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%s = %s {\n", p.Name, p.Type.Name))
	//
	for _, f := range p.Fields {
		builder.WriteString("\t")
		builder.WriteString(f.String())
		builder.WriteString("\n")
	}
	//
	builder.WriteString("}\n")
	//
	return builder.String()
}

// Format writes a set of records in the canonical form of the layout language,
// separated by blank lines.
func Format(records []*Record) string {
	var builder strings.Builder
	//
	for i, r := range records {
		if i != 0 {
			builder.WriteString("\n")
		}
		//
		builder.WriteString(r.String())
	}
	//
	return builder.String()
}
