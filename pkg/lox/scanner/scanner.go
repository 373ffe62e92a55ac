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
package scanner

import (
	"fmt"

	"github.com/consensys/go-lox/pkg/util/source"
	"github.com/consensys/go-lox/pkg/util/source/lex"
)

// Tags used internally by the lexer for things which never reach the parser as
// tokens of their own.  These sit above the range of real token kinds.
const (
	whitespaceTag uint = NUM_KINDS + iota
	commentTag
	wordTag
	unterminatedTag
	unknownTag
)

// Rule for describing whitespace (including line breaks)
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Comments start with "//" and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.And(lex.Unit('/', '/'), lex.Until('\n'))

// Rule for describing numbers.  A number is a sequence of digits, optionally
// followed by a fractional part.  The fractional part requires at least one
// digit after the '.', otherwise the '.' is left for the next token.
var (
	digits = lex.Many(lex.Within('0', '9'))
	number = lex.SequenceNullableLast(digits, lex.Sequence(lex.Unit('.'), digits))
)

// Rule for describing strings in quotes.  Strings may span multiple lines.
var (
	strung       = lex.Or(lex.Unit('"', '"'), lex.Sequence(lex.Unit('"'), lex.Many(lex.Not('"')), lex.Unit('"')))
	unterminated = lex.SequenceNullableLast(lex.Unit('"'), lex.Many(lex.Not('"')))
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

// Rule for describing identifiers (and keywords)
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, commentTag),
	lex.Rule(whitespace, whitespaceTag),
	lex.Rule(lex.Unit('!', '='), uint(BANG_EQUAL)),
	lex.Rule(lex.Unit('=', '='), uint(EQUAL_EQUAL)),
	lex.Rule(lex.Unit('<', '='), uint(LESS_EQUAL)),
	lex.Rule(lex.Unit('>', '='), uint(GREATER_EQUAL)),
	lex.Rule(lex.Unit('/', '='), uint(SLASH_EQUAL)),
	lex.Rule(lex.Unit('('), uint(LEFT_PAREN)),
	lex.Rule(lex.Unit(')'), uint(RIGHT_PAREN)),
	lex.Rule(lex.Unit('{'), uint(LEFT_BRACE)),
	lex.Rule(lex.Unit('}'), uint(RIGHT_BRACE)),
	lex.Rule(lex.Unit(','), uint(COMMA)),
	lex.Rule(lex.Unit('.'), uint(DOT)),
	lex.Rule(lex.Unit('-'), uint(MINUS)),
	lex.Rule(lex.Unit('+'), uint(PLUS)),
	lex.Rule(lex.Unit(';'), uint(SEMICOLON)),
	lex.Rule(lex.Unit('/'), uint(SLASH)),
	lex.Rule(lex.Unit('*'), uint(STAR)),
	lex.Rule(lex.Unit('!'), uint(BANG)),
	lex.Rule(lex.Unit('='), uint(EQUAL)),
	lex.Rule(lex.Unit('<'), uint(LESS)),
	lex.Rule(lex.Unit('>'), uint(GREATER)),
	lex.Rule(number, uint(NUMBER)),
	lex.Rule(strung, uint(STRING)),
	lex.Rule(unterminated, unterminatedTag),
	lex.Rule(identifier, wordTag),
	lex.Rule(lex.Eof[rune](), uint(EOF)),
	lex.Rule(lex.Any[rune](), unknownTag),
}

var keywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Scanner produces tokens on demand from a given source file.  Whitespace and
// comments are skipped, and lexical errors are reported as ERROR tokens rather
// than aborting the scan.  Once the end of input is reached, every subsequent
// call produces another EOF token.
type Scanner struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
	// Current line (counting from 1)
	line uint
}

// NewScanner constructs a scanner over a given source file.
func NewScanner(srcfile *source.File) *Scanner {
	return &Scanner{
		srcfile: srcfile,
		lexer:   lex.NewLexer(srcfile.Contents(), rules...),
		line:    1,
	}
}

// Substr returns the text of the source file between two offsets.
func (s *Scanner) Substr(start int, end int) string {
	return s.srcfile.Text(source.NewSpan(start, end))
}

// ScanToken produces the next token from the source file.
func (s *Scanner) ScanToken() Token {
	for {
		next, ok := s.lexer.Next()
		//
		if !ok && s.lexer.Remaining() > 0 {
			// The catch-all rule matches any single item.
			panic(fmt.Sprintf("no lexing rule matched at offset %d", s.lexer.Index()))
		} else if !ok {
			// Already passed the end, so keep producing EOF.
			return Token{Kind: EOF, Start: int(s.lexer.Index()), Line: s.line}
		}
		//
		switch next.Kind {
		case whitespaceTag, commentTag:
			s.line += s.countLines(next.Span)
		default:
			return s.token(next)
		}
	}
}

// Construct a parser token from a given lexer token.
func (s *Scanner) token(next lex.Token) Token {
	var (
		line  = s.line
		text  = s.srcfile.Text(next.Span)
		token = Token{Start: next.Span.Start(), Length: next.Span.Length(), Line: line}
	)
	//
	switch next.Kind {
	case wordTag:
		if kind, ok := keywords[text]; ok {
			token.Kind = kind
		} else {
			token.Kind = IDENTIFIER
		}
	case uint(NUMBER):
		token.Kind = NUMBER
		token.Literal = &text
	case uint(STRING):
		contents := text[1 : len(text)-1]
		token.Kind = STRING
		token.Literal = &contents
	case unterminatedTag:
		token.Kind = ERROR
		token.Message = "Unterminated string."
	case unknownTag:
		token.Kind = ERROR
		token.Message = "Unexpected character."
	default:
		token.Kind = Kind(next.Kind)
	}
	// Strings can span lines
	s.line += s.countLines(next.Span)
	//
	return token
}

func (s *Scanner) countLines(span source.Span) uint {
	var (
		contents = s.srcfile.Contents()
		count    uint
	)
	//
	for i := span.Start(); i < span.End(); i++ {
		if contents[i] == '\n' {
			count++
		}
	}
	//
	return count
}
