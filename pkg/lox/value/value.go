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
package value

import (
	"errors"
	"strconv"
)

// Value represents a runtime value which can be placed into the constant pool
// of a chunk.  Values are immutable.
type Value interface {
	// Equals determines whether this value is the same as another.
	Equals(other Value) bool
	// String returns a human readable form of this value.
	String() string
}

// Number is a double-precision floating point value.
type Number float64

// Equals implementation for Value interface.
func (n Number) Equals(other Value) bool {
	if o, ok := other.(Number); ok {
		return n == o
	}
	//
	return false
}

// String implementation for Value interface.  This produces the shortest
// representation which reads back as the same number, so 1.0 prints as "1".
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// ParseNumber parses the text of a numeric literal into a number.  Literals
// too large to represent become infinite, whilst those too small become zero.
// Only malformed text is an error.
func ParseNumber(text string) (Number, error) {
	f, err := strconv.ParseFloat(text, 64)
	//
	if errors.Is(err, strconv.ErrRange) {
		return Number(f), nil
	}
	//
	return Number(f), err
}
