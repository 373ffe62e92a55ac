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
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SUITE_DIR is the directory of conformance suites shipped with the
// repository.
const SUITE_DIR = "../../testdata/conformance"

func TestConformance(t *testing.T) {
	suites, err := LoadDir(SUITE_DIR)
	require.NoError(t, err)
	require.NotEmpty(t, suites)
	//
	for _, suite := range suites {
		t.Run(suite.Name, func(t *testing.T) {
			require.NotEmpty(t, suite.Cases)
			assert.NoError(t, Run(suite, false))
		})
	}
}

func TestConformance_Debug(t *testing.T) {
	suite, err := Load(filepath.Join(SUITE_DIR, "arithmetic.yaml"))
	require.NoError(t, err)
	// Trace output must not disturb the diagnostics
	assert.NoError(t, Run(suite, true))
}

func TestRun_Mismatches(t *testing.T) {
	suite := &Suite{
		Name: "broken",
		Cases: []Case{
			{Name: "ok", Source: "1", Code: []string{"CONST 0"}, Constants: []float64{1}},
			{Name: "wrong code", Source: "1 + 2", Code: []string{"CONST 0"}, Constants: []float64{1, 2}},
			{Name: "wrong constant", Source: "3", Code: []string{"CONST 0"}, Constants: []float64{4}},
			{Name: "missing error", Source: "1", Error: "[line 1] Error at end: Expected ')'"},
			{Name: "unexpected error", Source: "(1", Code: []string{"CONST 0"}},
			{Name: "wrong error", Source: "(1", Error: "[line 1] Error: Unexpected character."},
			{Name: "skipped", Source: "(", Skip: "not supported"},
		},
	}
	//
	err := Run(suite, false)
	require.Error(t, err)
	//
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
	assert.Contains(t, err.Error(), "broken/wrong code")
	assert.Contains(t, err.Error(), "broken/wrong constant")
	assert.Contains(t, err.Error(), "broken/missing error")
	assert.Contains(t, err.Error(), "broken/unexpected error")
	assert.Contains(t, err.Error(), "broken/wrong error")
	assert.NotContains(t, err.Error(), "broken/ok")
	assert.NotContains(t, err.Error(), "broken/skipped")
}

func TestRunCase_PartialCode(t *testing.T) {
	c := Case{Source: "1 + * 2", Error: "[line 1] Error at '*': Expected expression"}
	// Code unchecked
	assert.NoError(t, RunCase(&c, false))
	// Code checked
	c.Code = []string{"CONST 0"}
	assert.NoError(t, RunCase(&c, false))
	//
	c.Code = []string{"CONST 0", "ADD"}
	assert.Error(t, RunCase(&c, false))
}

func TestLoad(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "mine.yaml")
		text = "cases:\n  - name: one\n    source: \"1\"\n    code: [\"CONST 0\"]\n    constants: [1]\n"
	)
	//
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	//
	suite, err := Load(path)
	require.NoError(t, err)
	// Name defaults to the file name
	assert.Equal(t, "mine.yaml", suite.Name)
	assert.Equal(t, path, suite.File)
	require.Len(t, suite.Cases, 1)
	assert.Equal(t, []string{"CONST 0"}, suite.Cases[0].Code)
	assert.False(t, suite.Cases[0].ExpectsError())
	assert.NoError(t, Run(suite, false))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	//
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read conformance suite")
	//
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cases: [unclosed"), 0o600))
	//
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse conformance suite")
}

func TestLoadAll(t *testing.T) {
	suites, err := LoadAll(filepath.Join(SUITE_DIR, "unary.yaml"), SUITE_DIR)
	require.NoError(t, err)
	//
	all, err := LoadDir(SUITE_DIR)
	require.NoError(t, err)
	assert.Len(t, suites, len(all)+1)
	assert.Equal(t, "unary", suites[0].Name)
}
