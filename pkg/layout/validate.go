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
	"go/token"
)

// Issue identifies a problem with a record (or one of its fields) which would
// prevent the generated code from compiling.  Node is either a *Record or a
// *Field.
type Issue struct {
	Node    any
	Message string
}

func (p Issue) Error() string {
	switch n := p.Node.(type) {
	case *Record:
		return fmt.Sprintf("record %s: %s", n.Name, p.Message)
	case *Field:
		return fmt.Sprintf("field %s: %s", n.Name, p.Message)
	default:
		return p.Message
	}
}

// Methods defined on every generated record, regardless of its fields.
var reserved = []string{
	"GetInner", "SetInner",
	"SetBit", "ClearBit", "ToggleBit", "GetBit", "SetBitRange", "GetBitRange",
}

// Validate checks that a set of records can be compiled.  Specifically, record
// and field names must be valid Go identifiers; record names must be unique;
// no two records may declare the same top-level name, nor shadow an identifier
// used by the generated file; bit ranges must not be reversed; bit indices must
// be representable in the backing type; and no two methods of a record may
// share a name.  Overlapping fields, or indices beyond the backing width, are
// not errors (see Lint).
func Validate(records []*Record) []Issue {
	var (
		issues  []Issue
		names   = make(map[string]bool)
		globals = reservedGlobals()
	)
	//
	for _, r := range records {
		if !token.IsIdentifier(r.Name) || r.Name == "_" {
			issues = append(issues, Issue{r, fmt.Sprintf("invalid record name %q", r.Name)})
		} else if names[r.Name] {
			issues = append(issues, Issue{r, fmt.Sprintf("duplicate record %q", r.Name)})
		} else if issue := declareGlobals(r, globals); issue != nil {
			issues = append(issues, *issue)
		}
		//
		names[r.Name] = true
		issues = append(issues, validateFields(r)...)
	}
	//
	return issues
}

// Identifiers which every generated file refers to, mapped to a description of
// where they come from.
func reservedGlobals() map[string]string {
	globals := map[string]string{
		"bitfield": "imported package bitfield",
		"bool":     "predeclared type bool",
		"raw":      "constructor parameter raw",
	}
	//
	for _, t := range types {
		if !t.Wide {
			globals[t.GoType] = fmt.Sprintf("predeclared type %s", t.GoType)
		}
	}
	//
	return globals
}

// Declare the top-level names generated for a record (its type and its
// constructor), reporting the first which is already taken.
func declareGlobals(record *Record, globals map[string]string) *Issue {
	decls := []struct{ kind, name string }{
		{"type", record.Name},
		{"function", record.Constructor()},
	}
	//
	for _, d := range decls {
		if owner, ok := globals[d.name]; ok {
			return &Issue{record, fmt.Sprintf("%s %s clashes with %s", d.kind, d.name, owner)}
		}
	}
	//
	for _, d := range decls {
		globals[d.name] = fmt.Sprintf("record %q", record.Name)
	}
	//
	return nil
}

func validateFields(record *Record) []Issue {
	var (
		issues  []Issue
		methods = make(map[string]string)
	)
	//
	for _, name := range reserved {
		methods[name] = ""
	}
	//
	for _, f := range record.Fields {
		if !token.IsIdentifier(f.Name) || f.Accessor() == "" {
			issues = append(issues, Issue{f, fmt.Sprintf("invalid field name %q", f.Name)})
			continue
		} else if f.Start > f.End {
			issues = append(issues, Issue{f, fmt.Sprintf("invalid bit range %d-%d", f.Start, f.End)})
		} else if uint64(f.End) > record.Type.MaxIndex() {
			msg := fmt.Sprintf("bit index %d not representable in %s", f.End, record.Type)
			issues = append(issues, Issue{f, msg})
		}
		//
		for _, m := range f.Methods() {
			if other, ok := methods[m]; ok && other == "" {
				issues = append(issues, Issue{f, fmt.Sprintf("method %s clashes with built-in method", m)})
				break
			} else if ok {
				issues = append(issues, Issue{f, fmt.Sprintf("method %s clashes with field %q", m, other)})
				break
			}
			//
			methods[m] = f.Name
		}
	}
	//
	return issues
}
