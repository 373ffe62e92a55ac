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
package cmd

import (
	"strings"
	"testing"

	"github.com/consensys/go-lox/pkg/conformance"
	"github.com/consensys/go-lox/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSourceFile_Disassembly(t *testing.T) {
	var (
		out     strings.Builder
		srcfile = source.NewSourceString("sum.lox", "1 + 2")
	)
	//
	assert.True(t, CompileSourceFile(&out, srcfile, false, true))
	//
	expected := "== sum.lox ==\n" +
		"0000    1 CONST 0          '1'\n" +
		"0001    | CONST 1          '2'\n" +
		"0002    | ADD\n"
	assert.Equal(t, expected, out.String())
}

func TestCompileSourceFile_Quiet(t *testing.T) {
	var out strings.Builder
	//
	assert.True(t, CompileSourceFile(&out, source.NewSourceString("x", "-3"), false, false))
	assert.Empty(t, out.String())
}

func TestCompileSourceFile_Error(t *testing.T) {
	var (
		out     strings.Builder
		srcfile = source.NewSourceString("bad.lox", "1 +\n  * 2")
	)
	//
	assert.False(t, CompileSourceFile(&out, srcfile, false, true))
	//
	expected := "[line 2] Error at '*': Expected expression\n" +
		"bad.lox:2:3-4 Expected expression\n" +
		"\n" +
		"  * 2\n" +
		"  ^\n"
	assert.Equal(t, expected, out.String())
}

func TestRunBatch(t *testing.T) {
	var (
		out   strings.Builder
		input = "1 + 2\n\n(1\n:quit\n3\n"
	)
	//
	require.NoError(t, runBatch(strings.NewReader(input), &out, false, true))
	//
	expected := "== <line 1> ==\n" +
		"0000    1 CONST 0          '1'\n" +
		"0001    | CONST 1          '2'\n" +
		"0002    | ADD\n" +
		"[line 1] Error at end: Expected ')'\n" +
		"<line 3>:1:3-4 Expected ')'\n" +
		"\n" +
		"(1\n" +
		"  ^\n"
	assert.Equal(t, expected, out.String())
}

func TestCompileLine(t *testing.T) {
	var out strings.Builder
	//
	assert.False(t, compileLine(&out, "  :quit ", 1, false, true))
	assert.True(t, compileLine(&out, "   ", 2, false, true))
	assert.Empty(t, out.String())
}

func TestRunSuites(t *testing.T) {
	var (
		out  strings.Builder
		good = &conformance.Suite{Name: "good", Cases: []conformance.Case{
			{Name: "one", Source: "1", Code: []string{"CONST 0"}, Constants: []float64{1}},
		}}
		bad = &conformance.Suite{Name: "bad", Cases: []conformance.Case{
			{Name: "two", Source: "2", Code: []string{"NEGATE"}, Constants: []float64{2}},
		}}
	)
	//
	assert.Equal(t, 1, runSuites(&out, []*conformance.Suite{good, bad}, false))
	assert.Contains(t, out.String(), "PASS good (1 cases)")
	assert.Contains(t, out.String(), "FAIL bad")
	assert.Contains(t, out.String(), "bad/two")
}
