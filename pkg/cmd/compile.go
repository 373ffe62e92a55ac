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
	"fmt"
	"os"

	"github.com/consensys/go-lox/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file1.lox file2.lox ...",
	Short: "compile lox expressions into bytecode.",
	Long: `Compile the expression held in each given source file (or given inline
with --expr) into a chunk of bytecode, printing its disassembly.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			verbose  = configureLogging(cmd)
			disasm   = GetFlag(cmd, "disasm")
			expr     = GetString(cmd, "expr")
			srcfiles []source.File
		)
		//
		if expr != "" {
			srcfiles = append(srcfiles, *source.NewSourceString("<expr>", expr))
		}
		// Read source files
		files, err := source.ReadFiles(args...)
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		srcfiles = append(srcfiles, files...)
		// Sanity check
		if len(srcfiles) == 0 {
			fmt.Println("no source files or expression given")
			os.Exit(2)
		}
		//
		failed := false
		//
		for i := range srcfiles {
			if !CompileSourceFile(os.Stdout, &srcfiles[i], verbose, disasm) {
				failed = true
			}
		}
		//
		if failed {
			os.Exit(4)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("disasm", true, "Output disassembly of the compiled chunk")
	compileCmd.Flags().StringP("expr", "e", "", "Compile a given expression instead of a file")
}
