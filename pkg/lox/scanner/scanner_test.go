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
	"testing"

	"github.com/consensys/go-lox/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Empty(t *testing.T) {
	checkKinds(t, "", EOF)
	checkKinds(t, "   \t\r\n", EOF)
}

func TestScanner_Punctuation(t *testing.T) {
	checkKinds(t, "(){},.-+;/*",
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS, PLUS, SEMICOLON, SLASH, STAR, EOF)
}

func TestScanner_Operators(t *testing.T) {
	checkKinds(t, "! != = == > >= < <= /=",
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, SLASH_EQUAL, EOF)
}

func TestScanner_Keywords(t *testing.T) {
	checkKinds(t, "and class else false for fun if nil or print return super this true var while",
		AND, CLASS, ELSE, FALSE, FOR, FUN, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, EOF)
	// Keywords must match whole words
	checkKinds(t, "android orchid _if", IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF)
}

func TestScanner_Comments(t *testing.T) {
	checkKinds(t, "1 // two\n+ 3", NUMBER, PLUS, NUMBER, EOF)
	checkKinds(t, "// nothing", EOF)
}

func TestScanner_Numbers(t *testing.T) {
	tokens := scanAll("12 3.25 7.")
	//
	require.Len(t, tokens, 5)
	assert.Equal(t, "12", *tokens[0].Literal)
	assert.Equal(t, "3.25", *tokens[1].Literal)
	assert.Equal(t, "7", *tokens[2].Literal)
	assert.Equal(t, DOT, tokens[3].Kind)
	assert.Equal(t, EOF, tokens[4].Kind)
}

func TestScanner_Spans(t *testing.T) {
	tokens := scanAll("1 + 23")
	//
	require.Len(t, tokens, 4)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 1, tokens[0].Length)
	assert.Equal(t, 2, tokens[1].Start)
	assert.Equal(t, 4, tokens[2].Start)
	assert.Equal(t, 2, tokens[2].Length)
	assert.Equal(t, 6, tokens[3].Start)
	assert.Equal(t, 0, tokens[3].Length)
}

func TestScanner_Strings(t *testing.T) {
	tokens := scanAll(`"hello" ""`)
	//
	require.Len(t, tokens, 3)
	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, "hello", *tokens[0].Literal)
	assert.Equal(t, STRING, tokens[1].Kind)
	assert.Equal(t, "", *tokens[1].Literal)
}

func TestScanner_Lines(t *testing.T) {
	tokens := scanAll("1\n+\n\n\"a\nb\" 2")
	//
	require.Len(t, tokens, 5)
	assert.Equal(t, uint(1), tokens[0].Line)
	assert.Equal(t, uint(2), tokens[1].Line)
	assert.Equal(t, uint(4), tokens[2].Line)
	assert.Equal(t, uint(5), tokens[3].Line)
	assert.Equal(t, uint(5), tokens[4].Line)
}

func TestScanner_Errors(t *testing.T) {
	tokens := scanAll("1 @ \"open")
	//
	require.Len(t, tokens, 4)
	assert.Equal(t, ERROR, tokens[1].Kind)
	assert.Equal(t, "Unexpected character.", tokens[1].Message)
	assert.Equal(t, ERROR, tokens[2].Kind)
	assert.Equal(t, "Unterminated string.", tokens[2].Message)
	assert.Equal(t, EOF, tokens[3].Kind)
}

func TestScanner_RepeatedEof(t *testing.T) {
	scanner := NewScanner(source.NewSourceString("test", "1"))
	//
	assert.Equal(t, NUMBER, scanner.ScanToken().Kind)
	//
	for range 3 {
		token := scanner.ScanToken()
		assert.Equal(t, EOF, token.Kind)
		assert.Equal(t, 1, token.Start)
	}
}

func TestScanner_Substr(t *testing.T) {
	scanner := NewScanner(source.NewSourceString("test", "(1 + 2)"))
	//
	assert.Equal(t, "1 + 2", scanner.Substr(1, 6))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", LEFT_PAREN.String())
	assert.Equal(t, "SLASH_EQUAL", SLASH_EQUAL.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

// ==================================================================
// Framework
// ==================================================================

func scanAll(text string) []Token {
	var (
		scanner = NewScanner(source.NewSourceString("test", text))
		tokens  []Token
	)
	//
	for {
		token := scanner.ScanToken()
		tokens = append(tokens, token)
		//
		if token.Kind == EOF {
			return tokens
		}
	}
}

func checkKinds(t *testing.T, text string, expected ...Kind) {
	t.Helper()
	//
	var kinds []Kind
	//
	for _, token := range scanAll(text) {
		kinds = append(kinds, token.Kind)
	}
	//
	assert.Equal(t, expected, kinds, "scanning %q", text)
}
