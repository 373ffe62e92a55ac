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
package chunk

import (
	"fmt"
	"io"

	"github.com/consensys/go-lox/pkg/lox/value"
)

// Chunk is an append-only sequence of instructions along with the pool of
// constants they refer to.
type Chunk struct {
	code      []OpCode
	constants []value.Value
}

// NewChunk constructs an initially empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Push appends an instruction to the end of this chunk.
func (p *Chunk) Push(op OpCode) {
	p.code = append(p.code, op)
}

// PushConst interns a value into the constant pool, returning its index.
// Constants are not deduplicated, hence every call allocates a fresh slot.
func (p *Chunk) PushConst(val value.Value) uint {
	p.constants = append(p.constants, val)
	//
	return uint(len(p.constants) - 1)
}

// Code returns the instructions of this chunk in order of emission.
func (p *Chunk) Code() []OpCode {
	return p.code
}

// Constants returns the constant pool of this chunk.
func (p *Chunk) Constants() []value.Value {
	return p.constants
}

// Constant returns the ith constant in the pool.
func (p *Chunk) Constant(index uint) value.Value {
	return p.constants[index]
}

// Len returns the number of instructions in this chunk.
func (p *Chunk) Len() uint {
	return uint(len(p.code))
}

// Disassemble writes a human readable listing of this chunk.  Each instruction
// is given with its offset and source line, where consecutive instructions on
// the same line show "|" instead of repeating it.
func (p *Chunk) Disassemble(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "== %s ==\n", name); err != nil {
		return err
	}
	//
	for offset, op := range p.code {
		var line = fmt.Sprintf("%4d", op.SourceLine())
		//
		if offset > 0 && p.code[offset-1].SourceLine() == op.SourceLine() {
			line = "   |"
		}
		//
		if _, err := fmt.Fprintf(w, "%04d %s %s\n", offset, line, p.describe(op)); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *Chunk) describe(op OpCode) string {
	if c, ok := op.(*Const); ok && c.Index < uint(len(p.constants)) {
		return fmt.Sprintf("%-16s '%s'", c.Mnemonic(), p.constants[c.Index].String())
	}
	//
	return op.Mnemonic()
}
