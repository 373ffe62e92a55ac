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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-lox/pkg/util/source"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PROMPT is displayed when reading an expression interactively.
const PROMPT = "> "

// QUIT is the command which ends an interactive session.
const QUIT = ":quit"

// HISTORY_FILE is the name of the file (within the user's home directory) in
// which interactive history is kept.
const HISTORY_FILE = ".loxc_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactively compile lox expressions.",
	Long: `Read expressions one line at a time, compiling each and printing either its
disassembly or a diagnostic.  Enter :quit (or end of input) to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			verbose = configureLogging(cmd)
			disasm  = GetFlag(cmd, "disasm")
			err     error
		)
		//
		if term.IsTerminal(int(os.Stdin.Fd())) {
			err = runInteractive(verbose, disasm)
		} else {
			err = runBatch(os.Stdin, os.Stdout, verbose, disasm)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
	},
}

// Run an interactive session on the terminal, using a line editor with
// history.
func runInteractive(debug bool, disasm bool) error {
	var (
		editor  = liner.NewLiner()
		history = historyPath()
	)
	//
	defer editor.Close()
	//
	editor.SetCtrlCAborts(true)
	// Load history (best-effort)
	if f, err := os.Open(history); err == nil {
		_, _ = editor.ReadHistory(f)
		_ = f.Close()
	}
	//
	for n := 1; ; n++ {
		line, err := editor.Prompt(PROMPT)
		//
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		} else if err != nil {
			return err
		} else if strings.TrimSpace(line) != "" {
			editor.AppendHistory(line)
		}
		//
		if !compileLine(os.Stdout, line, n, debug, disasm) {
			break
		}
	}
	// Persist history (best-effort)
	if f, err := os.Create(history); err == nil {
		_, _ = editor.WriteHistory(f)
		_ = f.Close()
	}
	//
	return nil
}

// Compile expressions read from a non-interactive input, such as a pipe.  No
// prompt is shown.
func runBatch(in io.Reader, out io.Writer, debug bool, disasm bool) error {
	scanner := bufio.NewScanner(in)
	//
	for n := 1; scanner.Scan(); n++ {
		if !compileLine(out, scanner.Text(), n, debug, disasm) {
			return nil
		}
	}
	//
	return scanner.Err()
}

// Compile a single line of input, returning false if the session should end.
// Blank lines are ignored.
func compileLine(out io.Writer, line string, n int, debug bool, disasm bool) bool {
	switch strings.TrimSpace(line) {
	case QUIT:
		return false
	case "":
		return true
	}
	//
	srcfile := source.NewSourceString(fmt.Sprintf("<line %d>", n), line)
	// Errors have already been reported, and the session continues regardless.
	CompileSourceFile(out, srcfile, debug, disasm)
	//
	return true
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return HISTORY_FILE
	}
	//
	return filepath.Join(home, HISTORY_FILE)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("disasm", true, "Output disassembly of each compiled chunk")
}
