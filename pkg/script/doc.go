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

// Package script parses and serializes the Clausewitz script format: the
// hierarchical, curly-brace-delimited key/value text format used by several
// grand-strategy games for event, localization, modifier, and definition
// files.
//
// A generic Clausewitz construct takes one of three forms:
//
//	name = value
//	name = { ... }
//	value
//
// At the lowest level, package script returns a tree of Scope, Binding, and
// Token constructs via the ParseFile function. ParseFile makes no attempt to
// validate the meaning of the data, only its syntax.
//
//	root, err := script.ParseFile(text, "events/my_event.txt")
//	if err != nil {
//		var se *script.SyntaxError
//		if errors.As(err, &se) {
//			fmt.Fprintln(os.Stderr, se)
//		}
//	}
//
// Serialize (or Write, to pair the serializer with an io.Writer) turns a
// parsed or programmatically built tree back into canonical text.
package script
