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

// Add pops two values and pushes their sum.
type Add struct {
	Line uint
}

// SourceLine implementation for OpCode interface.
func (p *Add) SourceLine() uint {
	return p.Line
}

// Mnemonic implementation for OpCode interface.
func (p *Add) Mnemonic() string {
	return "ADD"
}

func (p *Add) String() string {
	return binaryString(p)
}

// Sub pops two values and pushes the first minus the second.
type Sub struct {
	Line uint
}

// SourceLine implementation for OpCode interface.
func (p *Sub) SourceLine() uint {
	return p.Line
}

// Mnemonic implementation for OpCode interface.
func (p *Sub) Mnemonic() string {
	return "SUB"
}

func (p *Sub) String() string {
	return binaryString(p)
}

// Mul pops two values and pushes their product.
type Mul struct {
	Line uint
}

// SourceLine implementation for OpCode interface.
func (p *Mul) SourceLine() uint {
	return p.Line
}

// Mnemonic implementation for OpCode interface.
func (p *Mul) Mnemonic() string {
	return "MUL"
}

func (p *Mul) String() string {
	return binaryString(p)
}

// Div pops two values and pushes the first divided by the second.
type Div struct {
	Line uint
}

// SourceLine implementation for OpCode interface.
func (p *Div) SourceLine() uint {
	return p.Line
}

// Mnemonic implementation for OpCode interface.
func (p *Div) Mnemonic() string {
	return "DIV"
}

func (p *Div) String() string {
	return binaryString(p)
}

func binaryString(op OpCode) string {
	return fmt.Sprintf("%s (line %d)", op.Mnemonic(), op.SourceLine())
}
