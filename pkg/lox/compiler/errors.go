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
	"errors"
	"fmt"

	"github.com/consensys/go-lox/pkg/lox/scanner"
	"github.com/consensys/go-lox/pkg/util/source"
)

// ErrParse is matched (via errors.Is) by every error arising from a failed
// compile.
var ErrParse = errors.New("parse error")

// ParseError describes the first syntax error encountered during a compile.
type ParseError struct {
	srcfile *source.File
	// Token to which the error is attributed.
	Token scanner.Token
	// Location of the error, such as " at end" or " at '+'" (possibly empty).
	Location string
	// Error message being reported
	Message string
}

// Error implements the error interface, giving the diagnostic exactly as it is
// reported.
func (p *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", p.Token.Line, p.Location, p.Message)
}

// Is allows errors.Is(err, ErrParse) to succeed.
func (p *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SyntaxError converts this error into a syntax error over the offending
// token's span, suitable for highlighting the source line.
func (p *ParseError) SyntaxError() *source.SyntaxError {
	span := source.NewSpan(p.Token.Start, p.Token.End())
	//
	return p.srcfile.SyntaxError(span, p.Message)
}

// Report an error attributed to the current token.
func (p *Compiler) errorAtCurrent(message string) error {
	return p.errorAt(p.currentToken(), message)
}

// Report an error attributed to the previous token.
func (p *Compiler) errorAtPrevious(message string) error {
	return p.errorAt(p.previousToken(), message)
}

// Report an error attributed to a given token.  The diagnostic is written to
// the output immediately, and the returned error aborts the compile.  There is
// no attempt at recovery.
func (p *Compiler) errorAt(token scanner.Token, message string) error {
	var location string
	//
	switch token.Kind {
	case scanner.EOF:
		location = " at end"
	case scanner.ERROR:
		// Nothing to add, since the message already explains it.
	default:
		location = fmt.Sprintf(" at '%s'", p.scanner.Substr(token.Start, token.End()))
	}
	//
	err := &ParseError{p.srcfile, token, location, message}
	//
	fmt.Fprintln(p.out, err.Error())
	//
	return err
}
