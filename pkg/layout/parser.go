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
	"strconv"
	"strings"

	"github.com/consensys/go-bitfi/pkg/bitfield"
	"github.com/consensys/go-bitfi/pkg/util/source"
	"github.com/consensys/go-bitfi/pkg/util/source/lex"
)

// Parse accepts a given source file written in the layout language, and
// produces the records it declares.  The records are also checked (see
// Validate), and any problem found is reported against the offending text.  If
// any error arises, no records are returned.
func Parse(srcfile *source.File) ([]*Record, []source.SyntaxError) {
	parser := NewParser(srcfile)
	//
	records, errs := parser.Parse()
	if len(errs) > 0 {
		return nil, errs
	}
	// Check records are well-formed
	if issues := Validate(records); len(issues) > 0 {
		errs = make([]source.SyntaxError, len(issues))
		//
		for i, issue := range issues {
			errs[i] = *parser.srcmap.SyntaxError(issue.Node, issue.Message)
		}
		//
		return nil, errs
	}
	//
	return records, nil
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a parser for the layout language.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[any]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[any](srcfile)
	//
	return &Parser{srcfile, nil, srcmap, 0}
}

// SourceMap returns the spans recorded for each record and field parsed so
// far.
func (p *Parser) SourceMap() *source.Map[any] {
	return p.srcmap
}

// Parse the given source file into a sequence of zero or more records, or
// some number of syntax errors.
func (p *Parser) Parse() ([]*Record, []source.SyntaxError) {
	var (
		records []*Record
		record  *Record
		errors  []source.SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(p.srcfile); len(errors) > 0 {
		return nil, errors
	}
	// Continue going until all consumed
	for p.lookahead().Kind != END_OF {
		if record, errors = p.parseRecord(); len(errors) > 0 {
			return nil, errors
		}
		//
		records = append(records, record)
	}
	//
	return records, nil
}

func (p *Parser) parseRecord() (*Record, []source.SyntaxError) {
	var (
		fields []*Field
		field  *Field
	)
	// Parse record name
	name, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(EQUALS); len(errs) > 0 {
		return nil, errs
	}
	// Parse backing type
	typeName, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	backing, ok := LookupType(p.string(typeName))
	if !ok {
		msg := fmt.Sprintf("unknown backing type %q", p.string(typeName))
		return nil, p.syntaxErrors(typeName, msg)
	}
	// Parse start of block
	if _, errs = p.expect(LCURLY); len(errs) > 0 {
		return nil, errs
	}
	// Parse fields until end of block
	for !p.match(RCURLY) {
		if p.lookahead().Kind == END_OF {
			return nil, p.unexpected(RCURLY)
		}
		//
		if field, errs = p.parseField(); len(errs) > 0 {
			return nil, errs
		}
		//
		fields = append(fields, field)
	}
	//
	record := NewRecord(p.string(name), backing, fields...)
	p.srcmap.Put(record, name.Span)
	//
	return record, nil
}

func (p *Parser) parseField() (*Field, []source.SyntaxError) {
	var (
		field      *Field
		start, end uint
	)
	// Parse field name
	name, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COLON); len(errs) > 0 {
		return nil, errs
	}
	// Parse start (or only) bit
	if start, errs = p.parseNumber(); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional end bit
	switch {
	case p.match(MINUS), p.match(DOTDOTEQ):
		if end, errs = p.parseNumber(); len(errs) > 0 {
			return nil, errs
		}
		//
		field = NewRange(p.string(name), start, end)
	case p.match(DOTDOT):
		tok := p.lookahead()
		//
		if end, errs = p.parseNumber(); len(errs) > 0 {
			return nil, errs
		} else if end <= start {
			return nil, p.syntaxErrors(tok, fmt.Sprintf("empty bit range %d..%d", start, end))
		}
		//
		r := bitfield.Normalize(bitfield.Included(start), bitfield.Excluded(end))
		field = NewRange(p.string(name), r.Start, r.End)
	default:
		field = NewFlag(p.string(name), start)
	}
	// Parse optional annotation
	if p.match(LSQUARE) {
		if field.Mutable, errs = p.parseMutability(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	//
	p.srcmap.Put(field, name.Span)
	//
	return field, nil
}

// Parse "mut = true]" or "mut = false]", assuming the opening "[" has already
// been consumed.
func (p *Parser) parseMutability() (bool, []source.SyntaxError) {
	key, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return false, errs
	} else if p.string(key) != "mut" {
		return false, p.syntaxErrors(key, fmt.Sprintf("expected mut, found %q", p.string(key)))
	}
	//
	if _, errs = p.expect(EQUALS); len(errs) > 0 {
		return false, errs
	}
	//
	value := p.lookahead()
	text := p.string(value)
	//
	if value.Kind == END_OF {
		return false, p.syntaxErrors(value, "unexpected end of file, expected true or false")
	} else if value.Kind != IDENTIFIER || (text != "true" && text != "false") {
		return false, p.syntaxErrors(value, fmt.Sprintf("expected true or false, found %q", text))
	}
	//
	p.index++
	//
	if _, errs = p.expect(RSQUARE); len(errs) > 0 {
		return false, errs
	}
	//
	return text == "true", nil
}

// Parse a bit index.  Underscores may be used as separators, and the prefixes
// "0x" and "0b" select hexadecimal and binary respectively.  Leading zeros
// never select octal.
func (p *Parser) parseNumber() (uint, []source.SyntaxError) {
	tok, errs := p.expect(NUMBER)
	if len(errs) > 0 {
		return 0, errs
	}
	//
	var (
		text   = p.string(tok)
		digits = strings.ReplaceAll(text, "_", "")
		base   = 10
	)
	//
	switch {
	case strings.HasPrefix(digits, "0x"):
		digits, base = digits[2:], 16
	case strings.HasPrefix(digits, "0b"):
		digits, base = digits[2:], 2
	}
	//
	n, err := strconv.ParseUint(digits, base, strconv.IntSize)
	if err != nil {
		return 0, p.syntaxErrors(tok, fmt.Sprintf("invalid bit index %q", text))
	}
	//
	return uint(n), nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.unexpected(kind)
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Report that the next token was not of the expected kind.
func (p *Parser) unexpected(expected uint) []source.SyntaxError {
	lookahead := p.lookahead()
	//
	if lookahead.Kind == END_OF {
		msg := fmt.Sprintf("unexpected end of file, expected %s", tokenNames[expected])
		return p.syntaxErrors(lookahead, msg)
	}
	//
	msg := fmt.Sprintf("expected %s, found %q", tokenNames[expected], p.string(lookahead))
	//
	return p.syntaxErrors(lookahead, msg)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
