// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package walker is the thin external collaborator that sits next to the
// core script package: filesystem traversal, directory recursion, and
// path normalization. It knows nothing about Clausewitz syntax beyond
// calling script.ParseFile on whatever bytes it reads.
package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paradox-tools/clausewitz/pkg/script"
)

// Files returns every ".txt" file under root, sorted for deterministic
// output.
func Files(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".txt") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Batch holds the result of parsing every script file found under a
// directory: the successfully parsed trees, keyed by the (normalized)
// file path they came from; every SyntaxError encountered while parsing a
// file that was readable; and every plain I/O error for a file that
// couldn't be read at all. A single file's failure never aborts the rest
// of the batch.
type Batch struct {
	Files      map[string]*script.FileScope
	Errors     []*script.SyntaxError
	ReadErrors map[string]error
}

// ParseAll walks root for ".txt" files and parses each one.
func ParseAll(root string) (*Batch, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	files, err := Files(abs)
	if err != nil {
		return nil, err
	}

	b := &Batch{
		Files:      map[string]*script.FileScope{},
		ReadErrors: map[string]error{},
	}
	for _, f := range files {
		address := displayPath(abs, f)
		data, err := os.ReadFile(f)
		if err != nil {
			b.ReadErrors[address] = err
			continue
		}
		fs, parseErr := script.ParseFile(string(data), address)
		if parseErr != nil {
			if se, ok := parseErr.(*script.SyntaxError); ok {
				b.Errors = append(b.Errors, se)
			}
			continue
		}
		b.Files[address] = fs
	}
	return b, nil
}

// displayPath strips the walked root's directory prefix from p: callers
// see "events/my_event.txt", not an absolute path that changes between
// machines.
func displayPath(root, p string) string {
	if rel, err := filepath.Rel(root, p); err == nil {
		return rel
	}
	return p
}
