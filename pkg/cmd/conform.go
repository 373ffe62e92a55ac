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
	"io"
	"os"

	"github.com/consensys/go-lox/pkg/conformance"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var conformCmd = &cobra.Command{
	Use:   "conform [flags] suite1.yaml dir2 ...",
	Short: "run conformance suites against the compiler.",
	Long: `Run one or more conformance suites, each given either as a YAML file or as a
directory containing them.  Every case is compiled and its code, constants and
diagnostic are checked against those expected.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose := configureLogging(cmd)
		//
		suites, err := conformance.LoadAll(args...)
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		if failures := runSuites(os.Stdout, suites, verbose); failures > 0 {
			fmt.Printf("%d suite(s) failed\n", failures)
			os.Exit(5)
		}
	},
}

// Run each suite in turn, reporting its outcome and returning the number of
// suites which failed.
func runSuites(out io.Writer, suites []*conformance.Suite, debug bool) int {
	var failures int
	//
	for _, suite := range suites {
		if err := conformance.Run(suite, debug); err != nil {
			fmt.Fprintf(out, "FAIL %s\n%s\n", suite.Name, err)
			failures++
		} else {
			fmt.Fprintf(out, "PASS %s (%d cases)\n", suite.Name, len(suite.Cases))
		}
	}
	//
	return failures
}

func init() {
	rootCmd.AddCommand(conformCmd)
}
