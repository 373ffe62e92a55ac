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
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	span := NewSpan(2, 5)
	//
	assert.Equal(t, 2, span.Start())
	assert.Equal(t, 5, span.End())
	assert.Equal(t, 3, span.Length())
	assert.False(t, span.IsEmpty())
	assert.Equal(t, "2..5", span.String())
	//
	empty := NewSpan(4, 4)
	assert.True(t, empty.IsEmpty())
	//
	assert.Panics(t, func() { NewSpan(3, 1) })
}

func TestFile_Text(t *testing.T) {
	file := NewSourceString("test", "1 + 23")
	//
	assert.Equal(t, "test", file.Filename())
	assert.Equal(t, "23", file.Text(NewSpan(4, 6)))
	assert.Equal(t, "23", file.Text(NewSpan(4, 60)))
	assert.Equal(t, "", file.Text(NewSpan(10, 12)))
}

func TestFile_EnclosingLine(t *testing.T) {
	tests := []struct {
		offset int
		number int
		text   string
	}{
		{0, 1, "1 +"},
		{2, 1, "1 +"},
		{4, 2, "  2 *"},
		{10, 3, "(3"},
		// Beyond the end of the file
		{50, 3, "(3"},
	}
	//
	file := NewSourceString("test", "1 +\n  2 *\n(3")
	//
	for _, tt := range tests {
		line := file.FindFirstEnclosingLine(NewSpan(tt.offset, tt.offset))
		//
		assert.Equal(t, tt.number, line.Number(), "offset %d", tt.offset)
		assert.Equal(t, tt.text, line.String(), "offset %d", tt.offset)
	}
}

func TestSyntaxError(t *testing.T) {
	file := NewSourceString("test", "1 +\n  * 2")
	err := file.SyntaxError(NewSpan(6, 7), "Expected expression")
	line := err.FirstEnclosingLine()
	//
	assert.Equal(t, file, err.SourceFile())
	assert.Equal(t, "Expected expression", err.Message())
	assert.Equal(t, "6:7:Expected expression", err.Error())
	assert.Equal(t, 4, line.Start())
	assert.Equal(t, 5, line.Length())
}

func TestReadFiles(t *testing.T) {
	var (
		dir  = t.TempDir()
		name = filepath.Join(dir, "expr.lox")
	)
	//
	require.NoError(t, os.WriteFile(name, []byte("(1 + 2)"), 0o600))
	//
	files, err := ReadFiles(name)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "(1 + 2)", string(files[0].Contents()))
	//
	_, err = ReadFiles(filepath.Join(dir, "missing.lox"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read source file")
}
