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
package compiler

import (
	"fmt"

	"github.com/consensys/go-lox/pkg/lox/chunk"
	"github.com/consensys/go-lox/pkg/lox/scanner"
)

// Capability identifies the routine used when a token begins (prefix) or
// continues (infix) an expression.
type Capability uint8

// NO_HANDLER signals the token has no behaviour in this position.
const NO_HANDLER Capability = 0

// NUMBER_HANDLER compiles a numeric literal.
const NUMBER_HANDLER Capability = 1

// GROUPING_HANDLER compiles a parenthesised expression.
const GROUPING_HANDLER Capability = 2

// UNARY_HANDLER compiles a prefix operator and its operand.
const UNARY_HANDLER Capability = 3

// BINARY_HANDLER compiles an infix operator and its right operand.
const BINARY_HANDLER Capability = 4

var capabilityNames = [...]string{"none", "number", "grouping", "unary", "binary"}

func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	//
	return fmt.Sprintf("Capability(%d)", c)
}

// Rule describes how a given kind of token is parsed.
type Rule struct {
	Prefix Capability
	Infix  Capability
	// Precedence of this token when used as an infix operator.
	Precedence Precedence
	// Constructs the instruction for a binary operator, given its line.
	Emit func(line uint) chunk.OpCode
}

func emitAdd(line uint) chunk.OpCode { return &chunk.Add{Line: line} }
func emitSub(line uint) chunk.OpCode { return &chunk.Sub{Line: line} }
func emitMul(line uint) chunk.OpCode { return &chunk.Mul{Line: line} }
func emitDiv(line uint) chunk.OpCode { return &chunk.Div{Line: line} }

// Every token kind has exactly one rule.  This is checked when the package is
// initialised.
var rules = map[scanner.Kind]Rule{
	scanner.LEFT_PAREN:    {GROUPING_HANDLER, NO_HANDLER, NONE, nil},
	scanner.RIGHT_PAREN:   {},
	scanner.LEFT_BRACE:    {},
	scanner.RIGHT_BRACE:   {},
	scanner.COMMA:         {},
	scanner.DOT:           {},
	scanner.MINUS:         {UNARY_HANDLER, BINARY_HANDLER, TERM, emitSub},
	scanner.PLUS:          {NO_HANDLER, BINARY_HANDLER, TERM, emitAdd},
	scanner.SEMICOLON:     {},
	scanner.SLASH:         {NO_HANDLER, BINARY_HANDLER, FACTOR, emitDiv},
	scanner.STAR:          {NO_HANDLER, BINARY_HANDLER, FACTOR, emitMul},
	scanner.BANG:          {},
	scanner.BANG_EQUAL:    {},
	scanner.EQUAL:         {},
	scanner.EQUAL_EQUAL:   {},
	scanner.GREATER:       {},
	scanner.GREATER_EQUAL: {},
	scanner.LESS:          {},
	scanner.LESS_EQUAL:    {},
	scanner.SLASH_EQUAL:   {},
	scanner.IDENTIFIER:    {},
	scanner.STRING:        {},
	scanner.NUMBER:        {NUMBER_HANDLER, NO_HANDLER, NONE, nil},
	scanner.AND:           {},
	scanner.CLASS:         {},
	scanner.ELSE:          {},
	scanner.FALSE:         {},
	scanner.FOR:           {},
	scanner.FUN:           {},
	scanner.IF:            {},
	scanner.NIL:           {},
	scanner.OR:            {},
	scanner.PRINT:         {},
	scanner.RETURN:        {},
	scanner.SUPER:         {},
	scanner.THIS:          {},
	scanner.TRUE:          {},
	scanner.VAR:           {},
	scanner.WHILE:         {},
	scanner.ERROR:         {},
	scanner.EOF:           {},
}

func init() {
	if err := checkRules(rules); err != nil {
		panic(err)
	}
}

// Check a rule table covers every token kind exactly, and that every binary
// rule knows which instruction to emit.
func checkRules(table map[scanner.Kind]Rule) error {
	if len(table) != scanner.NUM_KINDS {
		return fmt.Errorf("parse table has %d rules for %d token kinds", len(table), scanner.NUM_KINDS)
	}
	//
	for i := range scanner.NUM_KINDS {
		kind := scanner.Kind(i)
		//
		if rule, ok := table[kind]; !ok {
			return fmt.Errorf("missing parse rule for %s", kind)
		} else if rule.Infix == BINARY_HANDLER && rule.Emit == nil {
			return fmt.Errorf("binary parse rule for %s emits nothing", kind)
		}
	}
	//
	return nil
}

// Lookup the rule for a given kind of token.
func ruleFor(kind scanner.Kind) Rule {
	rule, ok := rules[kind]
	if !ok {
		panic(fmt.Sprintf("missing parse rule for %s", kind))
	}
	//
	return rule
}
