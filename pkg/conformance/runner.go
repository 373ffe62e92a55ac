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

import (
	"bytes"
	"slices"
	"strings"

	"github.com/consensys/go-lox/pkg/lox/chunk"
	"github.com/consensys/go-lox/pkg/lox/compiler"
	"github.com/consensys/go-lox/pkg/lox/value"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Run compiles every case in a given suite, and returns an error describing
// each case which did not behave as expected.  If every case passed (or was
// skipped), nil is returned.
func Run(suite *Suite, debug bool) error {
	var result *multierror.Error
	//
	for i := range suite.Cases {
		c := &suite.Cases[i]
		//
		if c.IsSkipped() {
			log.Debugf("skipping %s/%s (%s)", suite.Name, c.Name, c.Skip)
			continue
		} else if err := RunCase(c, debug); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "%s/%s", suite.Name, c.Name))
		}
	}
	//
	return result.ErrorOrNil()
}

// RunCase compiles a single case into a fresh chunk, and checks the outcome
// matches that expected.  Any output from the compiler is captured rather than
// written to the terminal.
func RunCase(c *Case, debug bool) error {
	var (
		out    bytes.Buffer
		target = chunk.NewChunk()
		err    = compiler.FromSource(c.Source, debug).SetOutput(&out).Compile(target)
	)
	//
	switch {
	case c.ExpectsError() && err == nil:
		return errors.Errorf("expected error %q, but compiled successfully", c.Error)
	case c.ExpectsError() && err.Error() != c.Error:
		return errors.Errorf("expected error %q, got %q", c.Error, err.Error())
	case c.ExpectsError() && !containsLine(out.String(), c.Error):
		return errors.Errorf("diagnostic %q not reported", c.Error)
	case !c.ExpectsError() && err != nil:
		return errors.Errorf("unexpected error %q", err.Error())
	}
	// Failing cases only check code when some is given, since emission stops
	// part way through.
	if !c.ExpectsError() || c.Code != nil {
		if code := Mnemonics(target); !slices.Equal(code, c.Code) {
			return errors.Errorf("expected code %v, got %v", c.Code, code)
		}
	}
	//
	if !c.ExpectsError() || c.Constants != nil {
		return checkConstants(target, c.Constants)
	}
	//
	return nil
}

// Mnemonics returns the mnemonic of each instruction in a given chunk, in
// order.
func Mnemonics(target *chunk.Chunk) []string {
	var names []string
	//
	for _, op := range target.Code() {
		names = append(names, op.Mnemonic())
	}
	//
	return names
}

func checkConstants(target *chunk.Chunk, expected []float64) error {
	var actual = target.Constants()
	//
	if len(actual) != len(expected) {
		return errors.Errorf("expected %d constant(s), got %d", len(expected), len(actual))
	}
	//
	for i, c := range expected {
		if !value.Number(c).Equals(actual[i]) {
			return errors.Errorf("expected constant %d to be %s, got %s", i, value.Number(c), actual[i])
		}
	}
	//
	return nil
}

func containsLine(text string, line string) bool {
	return slices.Contains(strings.Split(text, "\n"), line)
}
