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
package conformance

// Suite is a named collection of conformance cases, as described by a single
// YAML file.
type Suite struct {
	// Name of this suite.
	Name string `yaml:"name"`
	// Optional description of what the suite covers.
	Description string `yaml:"description,omitempty"`
	// Cases making up this suite.
	Cases []Case `yaml:"cases"`
	// File from which this suite was loaded (if any).
	File string `yaml:"-"`
}

// Case describes a single expression along with the outcome expected from
// compiling it.  A case which names an error is expected to fail with exactly
// that diagnostic.  Otherwise, it is expected to succeed producing exactly the
// given code and constants.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Opcode mnemonics, such as "CONST 0" or "ADD".
	Code      []string  `yaml:"code,omitempty"`
	Constants []float64 `yaml:"constants,omitempty"`
	// Complete diagnostic line, such as "[line 1] Error at end: Expected ')'".
	Error string `yaml:"error,omitempty"`
	// Reason for skipping this case (if non-empty).
	Skip string `yaml:"skip,omitempty"`
}

// ExpectsError determines whether this case should fail to compile.
func (c *Case) ExpectsError() bool {
	return c.Error != ""
}

// IsSkipped determines whether this case should be skipped.
func (c *Case) IsSkipped() bool {
	return c.Skip != ""
}
