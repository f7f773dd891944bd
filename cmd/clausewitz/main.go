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

// Program clausewitz parses Clausewitz script files, displays errors, and
// optionally re-emits the parsed tree in canonical form.
//
// Usage: clausewitz [--sorted] [--pretty] [--debug] FILE...
//        clausewitz [--sorted] [--pretty] [--debug] --dir DIR
//
// If --dir is given, every ".txt" file found by walking DIR is parsed
// instead of the explicit FILE arguments. A SyntaxError is printed to
// stderr for every file that fails to parse; parsing continues with the
// remaining files. With --pretty, every file that parsed successfully is
// re-serialized to stdout in canonical form; --sorted additionally sorts
// every scope's members before serializing. --debug dumps the parsed
// tree structure to stderr; combined with --pretty, both outputs are
// produced.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt"

	"github.com/paradox-tools/clausewitz/pkg/indent"
	"github.com/paradox-tools/clausewitz/pkg/script"
	"github.com/paradox-tools/clausewitz/pkg/walker"
)

var stop = os.Exit

func sortTree(s *script.Scope) {
	s.SortMembers()
	for _, m := range s.Members {
		if child, ok := m.(*script.Scope); ok {
			sortTree(child)
		}
	}
}

func main() {
	var sorted, prettyPrint, debug, help bool
	var dir string

	getopt.BoolVarLong(&sorted, "sorted", 0, "sort every scope's members before serializing")
	getopt.BoolVarLong(&prettyPrint, "pretty", 0, "re-emit each parsed file in canonical form")
	getopt.BoolVarLong(&debug, "debug", 0, "dump the parsed tree structure to stderr")
	getopt.StringVarLong(&dir, "dir", 0, "walk DIR for .txt files instead of taking FILE arguments", "DIR")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE ...")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintln(os.Stderr, "\nFILE arguments are Clausewitz script files; with none given and")
		fmt.Fprintln(os.Stderr, "--dir unset, standard input is parsed as one file. Example:")
		fmt.Fprintln(indent.NewWriter(os.Stderr, "    "), "clausewitz --pretty --sorted events/*.txt")
		stop(0)
	}

	type parsed struct {
		address string
		tree    *script.FileScope
	}
	var trees []parsed
	var errs []error

	if dir != "" {
		batch, err := walker.ParseAll(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		for address, err := range batch.ReadErrors {
			errs = append(errs, fmt.Errorf("%s: %v", address, err))
		}
		for _, se := range batch.Errors {
			errs = append(errs, se)
		}
		for address, fs := range batch.Files {
			trees = append(trees, parsed{address, fs})
		}
	} else {
		files := getopt.Args()
		if len(files) == 0 {
			data, err := ioutil.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				stop(1)
			}
			fs, err := script.ParseFile(string(data), "<STDIN>")
			if err != nil {
				errs = append(errs, err)
			} else {
				trees = append(trees, parsed{"<STDIN>", fs})
			}
		}
		for _, name := range files {
			data, err := ioutil.ReadFile(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			fs, err := script.ParseFile(string(data), name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			trees = append(trees, parsed{name, fs})
		}
	}

	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}

	for _, p := range trees {
		if sorted {
			sortTree(p.tree.Scope)
		}
		if debug {
			fmt.Fprintf(os.Stderr, "%s:\n", p.address)
			iw := indent.NewWriter(os.Stderr, "    ")
			fmt.Fprintln(iw, pretty.Sprint(p.tree))
		}
		if prettyPrint {
			fmt.Print(script.Serialize(p.tree.Scope))
		}
	}

	if len(errs) > 0 {
		stop(1)
	}
}
