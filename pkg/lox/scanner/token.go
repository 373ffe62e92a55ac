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

import "fmt"

// Kind identifies the kind of a token.  The numeric rank of each kind is
// stable, and NUM_KINDS always gives the number of distinct kinds.
type Kind uint

// LEFT_PAREN signals "("
const LEFT_PAREN Kind = 0

// RIGHT_PAREN signals ")"
const RIGHT_PAREN Kind = 1

// LEFT_BRACE signals "{"
const LEFT_BRACE Kind = 2

// RIGHT_BRACE signals "}"
const RIGHT_BRACE Kind = 3

// COMMA signals ","
const COMMA Kind = 4

// DOT signals "."
const DOT Kind = 5

// MINUS signals "-"
const MINUS Kind = 6

// PLUS signals "+"
const PLUS Kind = 7

// SEMICOLON signals ";"
const SEMICOLON Kind = 8

// SLASH signals "/"
const SLASH Kind = 9

// STAR signals "*"
const STAR Kind = 10

// BANG signals "!"
const BANG Kind = 11

// BANG_EQUAL signals "!="
const BANG_EQUAL Kind = 12

// EQUAL signals "="
const EQUAL Kind = 13

// EQUAL_EQUAL signals "=="
const EQUAL_EQUAL Kind = 14

// GREATER signals ">"
const GREATER Kind = 15

// GREATER_EQUAL signals ">="
const GREATER_EQUAL Kind = 16

// LESS signals "<"
const LESS Kind = 17

// LESS_EQUAL signals "<="
const LESS_EQUAL Kind = 18

// SLASH_EQUAL signals "/="
const SLASH_EQUAL Kind = 19

// IDENTIFIER signals a name
const IDENTIFIER Kind = 20

// STRING signals a quoted string literal
const STRING Kind = 21

// NUMBER signals a numeric literal
const NUMBER Kind = 22

// AND signals keyword "and"
const AND Kind = 23

// CLASS signals keyword "class"
const CLASS Kind = 24

// ELSE signals keyword "else"
const ELSE Kind = 25

// FALSE signals keyword "false"
const FALSE Kind = 26

// FOR signals keyword "for"
const FOR Kind = 27

// FUN signals keyword "fun"
const FUN Kind = 28

// IF signals keyword "if"
const IF Kind = 29

// NIL signals keyword "nil"
const NIL Kind = 30

// OR signals keyword "or"
const OR Kind = 31

// PRINT signals keyword "print"
const PRINT Kind = 32

// RETURN signals keyword "return"
const RETURN Kind = 33

// SUPER signals keyword "super"
const SUPER Kind = 34

// THIS signals keyword "this"
const THIS Kind = 35

// TRUE signals keyword "true"
const TRUE Kind = 36

// VAR signals keyword "var"
const VAR Kind = 37

// WHILE signals keyword "while"
const WHILE Kind = 38

// ERROR signals a lexical error.  The token's message describes it.
const ERROR Kind = 39

// EOF signals the end of input.
const EOF Kind = 40

// NUM_KINDS is the number of distinct token kinds.
const NUM_KINDS = 41

var kindNames = [NUM_KINDS]string{
	"LEFT_PAREN", "RIGHT_PAREN", "LEFT_BRACE", "RIGHT_BRACE", "COMMA", "DOT", "MINUS", "PLUS",
	"SEMICOLON", "SLASH", "STAR", "BANG", "BANG_EQUAL", "EQUAL", "EQUAL_EQUAL", "GREATER",
	"GREATER_EQUAL", "LESS", "LESS_EQUAL", "SLASH_EQUAL", "IDENTIFIER", "STRING", "NUMBER", "AND",
	"CLASS", "ELSE", "FALSE", "FOR", "FUN", "IF", "NIL", "OR", "PRINT", "RETURN", "SUPER", "THIS",
	"TRUE", "VAR", "WHILE", "ERROR", "EOF",
}

func (k Kind) String() string {
	if k < NUM_KINDS {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("Kind(%d)", uint(k))
}

// Token is an atomic lexical unit produced by the scanner.  Tokens are plain
// values and are never modified once produced.
type Token struct {
	Kind Kind
	// Offset of the first character of this token in the source file.
	Start int
	// Number of characters making up this token.
	Length int
	// Literal text for numbers (the lexeme) and strings (without quotes).
	Literal *string
	// Line on which this token starts (counting from 1).
	Line uint
	// Message explaining a lexical error (for ERROR tokens only).
	Message string
}

// End returns one past the last character of this token in the source file.
func (t Token) End() int {
	return t.Start + t.Length
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s(%q)@%d", t.Kind, *t.Literal, t.Line)
	}
	//
	return fmt.Sprintf("%s@%d", t.Kind, t.Line)
}
