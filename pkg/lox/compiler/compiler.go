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
	"io"
	"os"

	"github.com/consensys/go-lox/pkg/lox/chunk"
	"github.com/consensys/go-lox/pkg/lox/scanner"
	"github.com/consensys/go-lox/pkg/lox/value"
	"github.com/consensys/go-lox/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Compiler turns the tokens of a single expression into instructions, using
// operator precedence parsing.  A compiler is not safe for concurrent use.
type Compiler struct {
	srcfile *source.File
	scanner *scanner.Scanner
	// Parser cursor.  Either token is nil until it has been read.
	previous *scanner.Token
	current  *scanner.Token
	// Chunk being written.  This is only bound for the duration of Compile.
	chunk *chunk.Chunk
	// Destination for diagnostics and trace output.
	out io.Writer
	// Trace logger (only writes in debug mode).
	log *log.Logger
}

// NewCompiler constructs a compiler for a given source file.  In debug mode,
// every cursor movement, handler invocation and loop iteration is traced.
func NewCompiler(srcfile *source.File, debug bool) *Compiler {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true, DisableQuote: true})
	//
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	//
	return &Compiler{
		srcfile: srcfile,
		scanner: scanner.NewScanner(srcfile),
		out:     os.Stdout,
		log:     logger,
	}
}

// FromSource constructs a compiler directly from the text of an expression.
func FromSource(text string, debug bool) *Compiler {
	return NewCompiler(source.NewSourceString("<input>", text), debug)
}

// CompileString is a convenience which compiles the text of an expression into
// a fresh chunk, writing any diagnostic to stdout.
func CompileString(text string, debug bool) (*chunk.Chunk, error) {
	var target = chunk.NewChunk()
	//
	return target, FromSource(text, debug).Compile(target)
}

// SetOutput redirects diagnostics and trace output to a given writer.
func (p *Compiler) SetOutput(out io.Writer) *Compiler {
	p.out = out
	p.log.SetOutput(out)
	//
	return p
}

// Compile the expression into a given chunk, checking nothing follows it.  On
// failure, the error is a *ParseError for the first problem found and its
// diagnostic has already been written.  Instructions emitted before the error
// are left in the chunk.
func (p *Compiler) Compile(target *chunk.Chunk) error {
	p.chunk = target
	// Start from the beginning of the source
	p.scanner = scanner.NewScanner(p.srcfile)
	p.previous, p.current = nil, nil
	//
	defer func() { p.chunk = nil }()
	//
	if err := p.advance(); err != nil {
		return err
	} else if err := p.expression(); err != nil {
		return err
	}
	//
	return p.consume(scanner.EOF, "Expected end of expression")
}

// ============================================================================
// Parser cursor
// ============================================================================

// Shift the current token into previous, and read the next one.  If the new
// token signals a lexical error, this is reported against it.
func (p *Compiler) advance() error {
	token := p.scanner.ScanToken()
	//
	p.previous = p.current
	p.current = &token
	//
	p.log.Debugf("advance(), %s", p.cursor())
	//
	if token.Kind == scanner.ERROR {
		return p.errorAtCurrent(token.Message)
	}
	//
	return nil
}

// Advance past the current token, provided it is of the expected kind.
func (p *Compiler) consume(kind scanner.Kind, message string) error {
	if p.currentToken().Kind == kind {
		return p.advance()
	}
	//
	return p.errorAtCurrent(message)
}

func (p *Compiler) previousToken() scanner.Token {
	if p.previous == nil {
		panic("no previous token")
	}
	//
	return *p.previous
}

func (p *Compiler) currentToken() scanner.Token {
	if p.current == nil {
		panic("no current token")
	}
	//
	return *p.current
}

func (p *Compiler) cursor() string {
	return fmt.Sprintf("current: %s, previous: %s", tokenString(p.current), tokenString(p.previous))
}

func tokenString(token *scanner.Token) string {
	if token == nil {
		return "None"
	}
	//
	return token.String()
}

// ============================================================================
// Emitter
// ============================================================================

func (p *Compiler) emit(op chunk.OpCode) {
	p.log.Debugf("emit %s", op)
	p.chunk.Push(op)
}

func (p *Compiler) emitConst(line uint, val value.Value) {
	index := p.chunk.PushConst(val)
	//
	p.emit(&chunk.Const{Line: line, Index: index})
}
