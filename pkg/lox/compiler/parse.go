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
	"github.com/consensys/go-lox/pkg/lox/value"
)

func (p *Compiler) expression() error {
	p.log.Debugf("expression(), %s", p.cursor())
	//
	return p.parsePrecedence(ASSIGNMENT)
}

// Parse an expression whose operators all bind at least as tightly as a given
// level.  One prefix form is consumed first, followed by as many infix forms as
// the level permits.  Each infix handler parses its own right operand at the
// next level up, which makes operators of equal precedence group to the left.
func (p *Compiler) parsePrecedence(level Precedence) error {
	p.log.Debugf("parsePrecedence(%s), %s", level, p.cursor())
	//
	if err := p.advance(); err != nil {
		return err
	}
	//
	prefix := ruleFor(p.previousToken().Kind).Prefix
	if prefix == NO_HANDLER {
		return p.errorAtPrevious("Expected expression")
	} else if err := p.dispatch(prefix); err != nil {
		return err
	}
	//
	for level <= ruleFor(p.currentToken().Kind).Precedence {
		p.log.Debugf("infix loop at %s, current precedence %s, %s", level,
			ruleFor(p.currentToken().Kind).Precedence, p.cursor())
		//
		if err := p.advance(); err != nil {
			return err
		}
		// Tokens without an infix handler are simply skipped.
		if infix := ruleFor(p.previousToken().Kind).Infix; infix != NO_HANDLER {
			if err := p.dispatch(infix); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

func (p *Compiler) dispatch(handler Capability) error {
	p.log.Debugf("dispatch %s handler for %s", handler, p.previousToken())
	//
	switch handler {
	case NUMBER_HANDLER:
		return p.number()
	case GROUPING_HANDLER:
		return p.grouping()
	case UNARY_HANDLER:
		return p.unary()
	case BINARY_HANDLER:
		return p.binary()
	default:
		panic(fmt.Sprintf("unknown parse handler %s", handler))
	}
}

func (p *Compiler) number() error {
	token := p.previousToken()
	//
	if token.Literal == nil {
		panic(fmt.Sprintf("numeric literal missing for %s", token))
	}
	// The scanner only produces well-formed literals.
	val, err := value.ParseNumber(*token.Literal)
	if err != nil {
		panic(err)
	}
	//
	p.log.Debugf("number() for %s", val)
	p.emitConst(token.Line, val)
	//
	return nil
}

func (p *Compiler) grouping() error {
	if err := p.expression(); err != nil {
		return err
	}
	//
	return p.consume(scanner.RIGHT_PAREN, "Expected ')'")
}

func (p *Compiler) unary() error {
	operator := p.previousToken()
	// Compile the operand
	if err := p.parsePrecedence(UNARY); err != nil {
		return err
	}
	//
	p.log.Debugf("unary() for %s, %s", operator.Kind, p.cursor())
	// Attributed to the last token of the operand
	if operator.Kind == scanner.MINUS {
		p.emit(&chunk.Negate{Line: p.previousToken().Line})
	}
	//
	return nil
}

func (p *Compiler) binary() error {
	var (
		operator = p.previousToken()
		rule     = ruleFor(operator.Kind)
		next     = nextPrecedence(rule.Precedence)
	)
	//
	p.log.Debugf("binary() for %s, next precedence %s, %s", operator.Kind, next, p.cursor())
	// Compile the right operand
	if err := p.parsePrecedence(next); err != nil {
		return err
	} else if rule.Emit == nil {
		panic(fmt.Sprintf("unsupported binary operator %s", operator.Kind))
	}
	//
	p.emit(rule.Emit(operator.Line))
	//
	return nil
}
