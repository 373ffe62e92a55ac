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

import "fmt"

// OpCode represents a single stack machine instruction.  Every instruction
// records the source line it was emitted for, so the virtual machine can
// attribute runtime errors.  Instructions are never modified after emission.
type OpCode interface {
	// SourceLine returns the line of the source file responsible for this
	// instruction.
	SourceLine() uint
	// Mnemonic returns the instruction name along with any operands, but
	// without the source line.
	Mnemonic() string
	// Provide human readable form of instruction
	String() string
}

// Const pushes a value from the constant pool onto the stack.
type Const struct {
	Line uint
	// Index of the constant within the pool.
	Index uint
}

// SourceLine implementation for OpCode interface.
func (p *Const) SourceLine() uint {
	return p.Line
}

// Mnemonic implementation for OpCode interface.
func (p *Const) Mnemonic() string {
	return fmt.Sprintf("CONST %d", p.Index)
}

func (p *Const) String() string {
	return fmt.Sprintf("%s (line %d)", p.Mnemonic(), p.Line)
}

// Negate replaces the value on top of the stack with its negation.
type Negate struct {
	Line uint
}

// SourceLine implementation for OpCode interface.
func (p *Negate) SourceLine() uint {
	return p.Line
}

// Mnemonic implementation for OpCode interface.
func (p *Negate) Mnemonic() string {
	return "NEGATE"
}

func (p *Negate) String() string {
	return fmt.Sprintf("NEGATE (line %d)", p.Line)
}
