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

// Package generate writes the Go source implementing a set of records.
package generate

import (
	_ "embed"
	"fmt"

	"github.com/consensys/bavard"
	"github.com/consensys/go-bitfi/pkg/layout"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/record.go.tmpl
var recordTemplate string

// Name recorded in the header of every generated file.
const generatedBy = "bitfi"

// Config determines how a file is generated.
type Config struct {
	// Package clause of the generated file.
	Package string
	// Format the generated file with gofmt.
	Format bool
}

// Generate writes a single Go source file implementing the given records, in
// the order given.  Every record gets a constructor, raw accessors and the
// bitfield.BitField method set, along with accessors for each of its fields.
func Generate(output string, records []*layout.Record, config Config) error {
	if config.Package == "" {
		return fmt.Errorf("no package name given for %s", output)
	}
	//
	data := templateData{}
	//
	for _, r := range records {
		log.Debugf("generating record %s (%s, %d fields)", r.Name, r.Type, len(r.Fields))
		data.Records = append(data.Records, newRecordData(r))
	}
	//
	err := bavard.GenerateFromString(output, []string{recordTemplate}, data,
		bavard.Package(config.Package),
		bavard.GeneratedBy(generatedBy),
		bavard.Format(config.Format),
		bavard.Verbose(false))
	//
	if err != nil {
		return fmt.Errorf("generating %s: %w", output, err)
	}
	//
	log.Debugf("wrote %d records to %s", len(records), output)
	//
	return nil
}

// ============================================================================
// Template Data
// ============================================================================

type templateData struct {
	Records []recordData
}

type recordData struct {
	Name        string
	Constructor string
	// Go type of the backing value
	Type   string
	Wide   bool
	Fields []fieldData
}

type fieldData struct {
	Name    string
	Getter  string
	Setter  string
	Clearer string
	Flag    bool
	Mutable bool
	Start   uint
	End     uint
	// Go expression for the bit index of a flag
	Index string
	// Go expression for the bit range of a range field
	Range string
}

func newRecordData(record *layout.Record) recordData {
	data := recordData{
		Name:        record.Name,
		Constructor: record.Constructor(),
		Type:        record.Type.GoType,
		Wide:        record.Type.Wide,
	}
	//
	for _, f := range record.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:    f.Name,
			Getter:  f.Getter(),
			Setter:  f.Setter(),
			Clearer: f.Clearer(),
			Flag:    f.Kind == layout.FLAG,
			Mutable: f.Mutable,
			Start:   f.Start,
			End:     f.End,
			Index:   indexExpr(record.Type, f.Start),
			Range:   rangeExpr(record.Type, f.Start, f.End),
		})
	}
	//
	return data
}

// Determine the Go expression for a bit index of a given backing type.  Indices
// of primitive types are untyped constants, whilst those of wide types must be
// constructed.
func indexExpr(backing layout.Type, index uint) string {
	switch {
	case backing.Wide && backing.Signed:
		return fmt.Sprintf("bitfield.I128(%d)", index)
	case backing.Wide:
		return fmt.Sprintf("bitfield.U128(%d)", index)
	default:
		return fmt.Sprintf("%d", index)
	}
}

func rangeExpr(backing layout.Type, start, end uint) string {
	if backing.Wide {
		return fmt.Sprintf("bitfield.Inclusive(%s, %s)", indexExpr(backing, start), indexExpr(backing, end))
	}
	//
	return fmt.Sprintf("bitfield.Inclusive[%s](%d, %d)", backing.GoType, start, end)
}
