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
	"slices"

	"github.com/consensys/go-bitfi/pkg/util/source"
	"github.com/consensys/go-bitfi/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ... \n"
const COMMENT uint = 2

// LCURLY signals "{"
const LCURLY uint = 3

// RCURLY signals "}"
const RCURLY uint = 4

// LSQUARE signals "["
const LSQUARE uint = 5

// RSQUARE signals "]"
const RSQUARE uint = 6

// COLON signals ":"
const COLON uint = 7

// SEMICOLON signals ";"
const SEMICOLON uint = 8

// EQUALS signals "="
const EQUALS uint = 9

// MINUS signals "-"
const MINUS uint = 10

// DOTDOT signals ".." (an exclusive range)
const DOTDOT uint = 11

// DOTDOTEQ signals "..=" (an inclusive range)
const DOTDOTEQ uint = 12

// NUMBER signals an integer number
const NUMBER uint = 20

// IDENTIFIER signals a record, type or field name
const IDENTIFIER uint = 21

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Rule for describing numbers
// A number is either a hexadecimal, binary, or decimal one.
// Allowing (and ignoring) '_' in the middle of a number for readability.
var (
	binaryStart = lex.Sequence(lex.String("0b"), lex.Within('0', '1'))
	binaryRest  = lex.Or(
		lex.Within('0', '1'),
		lex.Unit('_'),
	)

	decimalStart = lex.Within('0', '9')
	decimalRest  = lex.Or(
		lex.Within('0', '9'),
		lex.Unit('_'),
	)

	hexDigit = lex.Or(
		lex.Within('0', '9'),
		lex.Within('A', 'F'),
		lex.Within('a', 'f'),
	)
	hexStart = lex.Sequence(lex.String("0x"), hexDigit)
	hexRest  = lex.Or(
		hexDigit,
		lex.Unit('_'),
	)

	number = lex.Or(
		lex.SequenceNullableLast(binaryStart, lex.Many(binaryRest)),
		lex.SequenceNullableLast(hexStart, lex.Many(hexRest)),
		lex.SequenceNullableLast(decimalStart, lex.Many(decimalRest)),
	)
)

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.SequenceNullableLast(identifierStart, identifierRest)

// Comments start with '//' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.SequenceNullableLast(lex.String("//"), lex.Until('\n'))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit(';'), SEMICOLON),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('-'), MINUS),
	lex.Rule(lex.String("..="), DOTDOTEQ),
	lex.Rule(lex.String(".."), DOTDOT),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Descriptions of each token kind, as used in error messages.
var tokenNames = map[uint]string{
	END_OF:     "end of file",
	LCURLY:     `"{"`,
	RCURLY:     `"}"`,
	LSQUARE:    `"["`,
	RSQUARE:    `"]"`,
	COLON:      `":"`,
	SEMICOLON:  `";"`,
	EQUALS:     `"="`,
	MINUS:      `"-"`,
	DOTDOT:     `".."`,
	DOTDOTEQ:   `"..="`,
	NUMBER:     "number",
	IDENTIFIER: "identifier",
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace and comments are dropped, and the
// final token is always END_OF.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace and comments
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == COMMENT
	})
	// Done
	return tokens, nil
}
