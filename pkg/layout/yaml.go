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
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Layouts can be written in YAML as well as the layout language.  For example:
//
//	records:
//	  - name: Status
//	    type: u16
//	    fields:
//	      - name: ready
//	        bit: 0
//	      - name: code
//	        bits: [4, 7]
//	        mut: false
type yamlFile struct {
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Name   string      `yaml:"name"`
	Type   string      `yaml:"type"`
	Fields []yamlField `yaml:"fields,omitempty"`
}

type yamlField struct {
	Name string `yaml:"name"`
	Bit  *uint  `yaml:"bit,omitempty"`
	Bits []uint `yaml:"bits,flow,omitempty"`
	Mut  *bool  `yaml:"mut,omitempty"`
}

// ParseYAML reads a set of records from a YAML document.  Unknown keys are
// rejected, and the records are checked in the same way as those written in
// the layout language.
func ParseYAML(filename string, contents []byte) ([]*Record, error) {
	var (
		file    yamlFile
		records []*Record
		decoder = yaml.NewDecoder(bytes.NewReader(contents))
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	for _, yr := range file.Records {
		record, err := yr.toRecord()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		//
		records = append(records, record)
	}
	//
	if issues := Validate(records); len(issues) > 0 {
		errs := make([]error, len(issues))
		for i, issue := range issues {
			errs[i] = fmt.Errorf("%s: %w", filename, issue)
		}
		//
		return nil, errors.Join(errs...)
	}
	//
	return records, nil
}

func (p yamlRecord) toRecord() (*Record, error) {
	backing, ok := LookupType(p.Type)
	if !ok {
		return nil, fmt.Errorf("record %s: unknown backing type %q", p.Name, p.Type)
	}
	//
	record := NewRecord(p.Name, backing)
	//
	for _, yf := range p.Fields {
		var field *Field
		//
		switch {
		case yf.Bit != nil && yf.Bits != nil:
			return nil, fmt.Errorf("record %s: field %s has both bit and bits", p.Name, yf.Name)
		case yf.Bit != nil:
			field = NewFlag(yf.Name, *yf.Bit)
		case len(yf.Bits) == 2:
			field = NewRange(yf.Name, yf.Bits[0], yf.Bits[1])
		case yf.Bits != nil:
			return nil, fmt.Errorf("record %s: field %s: expected bits: [start, end]", p.Name, yf.Name)
		default:
			return nil, fmt.Errorf("record %s: field %s has neither bit nor bits", p.Name, yf.Name)
		}
		//
		if yf.Mut != nil {
			field.Mutable = *yf.Mut
		}
		//
		record.Fields = append(record.Fields, field)
	}
	//
	return record, nil
}

// MarshalYAML renders a set of records as a YAML document which ParseYAML
// accepts.
func MarshalYAML(records []*Record) ([]byte, error) {
	var (
		file   yamlFile
		buffer bytes.Buffer
	)
	//
	for _, r := range records {
		yr := yamlRecord{Name: r.Name, Type: r.Type.Name}
		//
		for _, f := range r.Fields {
			yf := yamlField{Name: f.Name}
			//
			if f.Kind == FLAG {
				yf.Bit = &f.Start
			} else {
				yf.Bits = []uint{f.Start, f.End}
			}
			//
			if !f.Mutable {
				yf.Mut = &f.Mutable
			}
			//
			yr.Fields = append(yr.Fields, yf)
		}
		//
		file.Records = append(file.Records, yr)
	}
	//
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	//
	if err := encoder.Encode(&file); err != nil {
		return nil, err
	}
	//
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}
