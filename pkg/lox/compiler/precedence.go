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

import "fmt"

// Precedence determines how tightly an operator binds its operands.  Levels are
// totally ordered by their integer rank, with higher ranks binding tighter.
type Precedence uint8

// NONE is the lowest precedence, and binds nothing at all.
const NONE Precedence = 0

// ASSIGNMENT is the precedence of "="
const ASSIGNMENT Precedence = 1

// OR is the precedence of "or"
const OR Precedence = 2

// AND is the precedence of "and"
const AND Precedence = 3

// EQUALITY is the precedence of "==" and "!="
const EQUALITY Precedence = 4

// COMPARISON is the precedence of "<", ">", "<=" and ">="
const COMPARISON Precedence = 5

// TERM is the precedence of "+" and "-"
const TERM Precedence = 6

// FACTOR is the precedence of "*" and "/"
const FACTOR Precedence = 7

// UNARY is the precedence of prefix "-" and "!"
const UNARY Precedence = 8

// CALL is the precedence of "." and "()"
const CALL Precedence = 9

// PRIMARY is the highest precedence.
const PRIMARY Precedence = 10

var precedenceNames = [...]string{
	"NONE", "ASSIGNMENT", "OR", "AND", "EQUALITY", "COMPARISON", "TERM", "FACTOR", "UNARY", "CALL", "PRIMARY",
}

func (p Precedence) String() string {
	if int(p) < len(precedenceNames) {
		return fmt.Sprintf("%s(%d)", precedenceNames[p], p)
	}
	//
	return fmt.Sprintf("Precedence(%d)", p)
}

// Determine the precedence immediately above a given level.  Going past the top
// of the ladder wraps around to ASSIGNMENT rather than producing an undefined
// level.
func nextPrecedence(level Precedence) Precedence {
	if level >= PRIMARY {
		return ASSIGNMENT
	}
	//
	return level + 1
}
