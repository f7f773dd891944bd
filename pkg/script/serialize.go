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

package script

import (
	"io"
	"strings"
)

// Serialize walks s and produces canonical Clausewitz text: tab
// indentation, and comment placement symmetric to how the parser attached
// them. s is usually a FileScope's embedded *Scope, but any Scope
// can be serialized on its own — its own Comments/EndComments are then
// rendered as a file-style prelude/postlude.
func Serialize(s *Scope) string {
	var b strings.Builder

	if comments := s.Comments(); len(comments) > 0 {
		for _, c := range comments {
			b.WriteString("# ")
			b.WriteString(c)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	writeScopeBody(&b, s, 0)

	if ec := s.EndComments(); len(ec) > 0 {
		for _, c := range ec {
			b.WriteString("\n# ")
			b.WriteString(c)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Write serializes f and writes the result to w.
func Write(f *FileScope, w io.Writer) error {
	_, err := io.WriteString(w, Serialize(f.Scope))
	return err
}

func tabs(depth int) string { return strings.Repeat("\t", depth) }

// writeScopeBody renders every member of s, each line indented to depth
// tabs. Named/anonymous child scopes and bindings always occupy their own
// line(s); bare tokens in an indented (list-like) scope do too, while bare
// tokens in a non-indented scope are packed inline per the spacing rules
// below.
func writeScopeBody(b *strings.Builder, s *Scope, depth int) {
	members := s.Members
	for i, m := range members {
		switch v := m.(type) {
		case *Scope:
			writeComments(b, v.Comments(), depth)
			writeScopeHeader(b, v, depth)
		case *Binding:
			writeComments(b, v.Comments(), depth)
			b.WriteString(tabs(depth))
			b.WriteString(v.Name)
			b.WriteString(" = ")
			b.WriteString(v.Value)
			b.WriteByte('\n')
		case *Token:
			if s.Indented {
				writeComments(b, v.Comments(), depth)
				b.WriteString(tabs(depth))
				b.WriteString(v.Value)
				b.WriteByte('\n')
			} else {
				writeInlineToken(b, members, i, depth)
			}
		}
	}
}

func writeComments(b *strings.Builder, comments []string, depth int) {
	for _, c := range comments {
		b.WriteString(tabs(depth))
		b.WriteString("# ")
		b.WriteString(c)
		b.WriteByte('\n')
	}
}

// writeInlineToken renders one bare token of a non-indented (inline) scope,
// per the format's preceding/following spacing rules:
//
//	Preceding: the line's indentation (depth tabs) if the token is first in
//	the scope, or has any own comments, or follows a non-token member;
//	otherwise a single space.
//	Following: newline if the token is last in the scope, or the next
//	member is a non-token, or the next member has any own comments;
//	otherwise empty, so the next token supplies its own leading space.
func writeInlineToken(b *strings.Builder, members []Construct, i, depth int) {
	t := members[i].(*Token)
	writeComments(b, t.Comments(), depth)

	first := i == 0
	ownComments := len(t.Comments()) > 0
	followsNonToken := !first && !isToken(members[i-1])
	if first || ownComments || followsNonToken {
		b.WriteString(tabs(depth))
	} else {
		b.WriteString(" ")
	}

	b.WriteString(t.Value)

	last := i == len(members)-1
	nextIsNonToken := !last && !isToken(members[i+1])
	nextHasComments := !last && isToken(members[i+1]) && len(members[i+1].Comments()) > 0
	if last || nextIsNonToken || nextHasComments {
		b.WriteByte('\n')
	}
}

func isToken(c Construct) bool {
	_, ok := c.(*Token)
	return ok
}

// writeScopeHeader renders a scope's "name = {" / "{" header, its members
// (if any), its end comments, and its closing brace.
func writeScopeHeader(b *strings.Builder, s *Scope, depth int) {
	b.WriteString(tabs(depth))
	if s.Name != "" {
		b.WriteString(s.Name)
		b.WriteString(" = {")
	} else {
		b.WriteString("{")
	}

	if len(s.Members) == 0 && len(s.EndComments()) == 0 {
		b.WriteString("}\n")
		return
	}

	b.WriteByte('\n')
	writeScopeBody(b, s, depth+1)
	for _, ec := range s.EndComments() {
		b.WriteString(tabs(depth + 1))
		b.WriteString("# ")
		b.WriteString(ec)
		b.WriteByte('\n')
	}
	b.WriteString(tabs(depth))
	b.WriteString("}\n")
}
