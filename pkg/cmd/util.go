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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-lox/pkg/lox/chunk"
	"github.com/consensys/go-lox/pkg/lox/compiler"
	"github.com/consensys/go-lox/pkg/util"
	"github.com/consensys/go-lox/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Raise the log level when verbose output was requested, returning whether it
// was.
func configureLogging(cmd *cobra.Command) bool {
	verbose := GetFlag(cmd, "verbose")
	//
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	return verbose
}

// CompileSourceFile compiles a given source file into a fresh chunk, writing
// either its disassembly (when requested) or the diagnostic for the first
// syntax error encountered.  Returns true if compilation succeeded.
func CompileSourceFile(out io.Writer, srcfile *source.File, debug bool, disasm bool) bool {
	var (
		target = chunk.NewChunk()
		stats  = util.NewPerfStats()
		perr   *compiler.ParseError
	)
	//
	log.Debugf("compiling source file %s", srcfile.Filename())
	//
	err := compiler.NewCompiler(srcfile, debug).SetOutput(out).Compile(target)
	//
	stats.Log(fmt.Sprintf("compiling %s into %d instruction(s)", srcfile.Filename(), target.Len()))
	//
	if errors.As(err, &perr) {
		printSyntaxError(out, perr.SyntaxError())
		return false
	} else if err != nil {
		log.Error(err)
		return false
	} else if disasm {
		if err := target.Disassemble(out, srcfile.Filename()); err != nil {
			log.Error(err)
			return false
		}
	}
	//
	return true
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line).  Always highlight at
	// least one column, so errors at the end of input remain visible.
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}
