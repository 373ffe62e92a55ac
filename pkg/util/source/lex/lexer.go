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

import "github.com/consensys/go-lox/pkg/util/source"

// Token associates a tag with a given range of items in the sequence being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of items with a given tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching items to a given tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer provides an on-demand tokeniser for a given input sequence.  Tokens are
// produced one at a time, with rules tried in order so that earlier rules take
// priority over later ones.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items from the original sequence are left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next scans the next token and advances the lexer past it.  This fails if no
// rule matches at the current position (in which case the lexer does not
// move), or if the end of the input has already been passed.  A rule matching
// at the very end of the input (e.g. Eof) produces an empty token, after which
// the lexer is exhausted.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			start := p.index
			end := min(len(p.items), p.index+int(n))
			//
			if start == len(p.items) {
				// EOF condition
				p.index++
			} else {
				p.index = end
			}
			//
			return Token{r.tag, source.NewSpan(start, end)}, true
		}
	}
	// nothing matched
	return Token{}, false
}
