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
package source

import "fmt"

// Map records the span of text from which each node of a parsed layout
// originated.  This allows errors found after parsing (e.g. clashing field
// names) to be reported against the original text.
type Map[T comparable] struct {
	// Maps a given node to a span in the original text.
	mapping map[T]Span
	// Enclosing source file
	srcfile *File
}

// NewSourceMap constructs an initially empty source map for a given file.
func NewSourceMap[T comparable](srcfile *File) *Map[T] {
	return &Map[T]{make(map[T]Span), srcfile}
}

// Source returns the underlying source file on which this map operates.
func (p *Map[T]) Source() *File {
	return p.srcfile
}

// Put registers a node with a given span.  Registering the same node twice is
// an error in the parser, and causes a panic.
func (p *Map[T]) Put(node T, span Span) {
	if _, ok := p.mapping[node]; ok {
		panic(fmt.Sprintf("source map key already exists: %v", node))
	}
	//
	p.mapping[node] = span
}

// Has checks whether a given node is contained within this source map.
func (p *Map[T]) Has(node T) bool {
	_, ok := p.mapping[node]
	return ok
}

// Get returns the span associated with a given node, or panics if the node
// was never registered.
func (p *Map[T]) Get(node T) Span {
	if s, ok := p.mapping[node]; ok {
		return s
	}
	//
	panic(fmt.Sprintf("invalid source map key: %v", node))
}

// SyntaxError constructs a syntax error covering the text of a given node.
func (p *Map[T]) SyntaxError(node T, msg string) *SyntaxError {
	return p.srcfile.SyntaxError(p.Get(node), msg)
}
