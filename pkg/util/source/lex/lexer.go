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

import "github.com/consensys/go-bitfi/pkg/util/source"

// Token associates a kind (e.g. NUMBER or IDENTIFIER) with a given range of
// characters in the text being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates the characters accepted by a scanner with a given token
// kind.
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// token kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer splits an input sequence into tokens by repeatedly applying its rules,
// in order, at the current position.  The first rule which matches wins.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Token scanned but not yet consumed (if any).
	next *Token
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Index returns the current position within the input.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items of the input have not been consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether or not another token can be produced.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return p.next != nil
}

// Next returns the next token and advances the lexer.  This should only be
// called after HasNext has returned true.
func (p *Lexer[T]) Next() Token {
	token := *p.next
	p.next = nil
	//
	if p.index == len(p.items) {
		// An end-of-input token has been consumed, so stop scanning.
		p.index++
	} else {
		p.index = token.Span.End()
	}
	//
	return token
}

// Collect produces all remaining tokens in one go.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() {
	if p.next != nil || p.index > len(p.items) {
		return
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			p.next = &Token{r.kind, source.NewSpan(p.index, end)}
			//
			return
		}
	}
}
