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
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EXTENSION is the file extension identifying conformance suites.
const EXTENSION = ".yaml"

// Load reads a single conformance suite from a given YAML file.
func Load(path string) (*Suite, error) {
	var suite Suite
	//
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read conformance suite %#v", path)
	} else if err := yaml.Unmarshal(bytes, &suite); err != nil {
		return nil, errors.Wrapf(err, "failed to parse conformance suite %#v", path)
	}
	// Default the name from the file
	if suite.Name == "" {
		suite.Name = filepath.Base(path)
	}
	//
	suite.File = path
	//
	return &suite, nil
}

// LoadDir reads every conformance suite found under a given directory
// (including any subdirectories).  Suites are returned in lexicographic order
// of their file paths.
func LoadDir(dir string) ([]*Suite, error) {
	var paths []string
	//
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		} else if !entry.IsDir() && filepath.Ext(path) == EXTENSION {
			paths = append(paths, path)
		}
		//
		return nil
	})
	//
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory %#v", dir)
	}
	//
	slices.Sort(paths)
	//
	return LoadAll(paths...)
}

// LoadAll reads a given set of paths, each of which is either a suite file or
// a directory of suites.
func LoadAll(paths ...string) ([]*Suite, error) {
	var suites []*Suite
	//
	for _, path := range paths {
		info, err := os.Stat(path)
		//
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read conformance suite %#v", path)
		} else if info.IsDir() {
			dirSuites, err := LoadDir(path)
			if err != nil {
				return nil, err
			}
			//
			suites = append(suites, dirSuites...)
		} else if suite, err := Load(path); err != nil {
			return nil, err
		} else {
			suites = append(suites, suite)
		}
	}
	//
	return suites, nil
}
