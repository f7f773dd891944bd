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

import "sort"

// Construct is the tagged-variant interface implemented by every node that
// can live inside a Scope's member list: *Scope, *Binding, and *Token. It
// is a closed interface so the serializer and sorter can exhaust the cases
// with a type switch instead of runtime type tests.
type Construct interface {
	isConstruct()
	// Comments returns the construct's own leading/attached comments, in
	// source order.
	Comments() []string
}

// Scope is a container of ordered members, optionally named, delimited by
// "{ ... }" in the source. An anonymous scope has Name == "".
type Scope struct {
	Name    string
	Members []Construct

	comments    []string
	endComments []string

	// Indented, when true, serializes a list-like scope with one bare
	// token per line instead of space-separated on one line. It is a
	// serialization hint only; the parser never sets it.
	Indented bool
	// Sorted, when true, causes the parser to stably sort Members at the
	// closing brace (by Binding/Scope name, by Token value, anonymous
	// scopes last) and causes SortMembers to do the same on demand.
	Sorted bool

	// Level is this scope's depth; the FileScope root is 0.
	Level int
}

func (*Scope) isConstruct() {}

// Comments returns s's leading comments.
func (s *Scope) Comments() []string { return s.comments }

// EndComments returns the comments found just before s's closing brace (or
// end of file, for the root FileScope).
func (s *Scope) EndComments() []string { return s.endComments }

// SetComments replaces s's leading comments.
func (s *Scope) SetComments(c []string) { s.comments = append([]string(nil), c...) }

// SetEndComments replaces s's end comments.
func (s *Scope) SetEndComments(c []string) { s.endComments = append([]string(nil), c...) }

// AddComment appends a single leading comment to s.
func (s *Scope) AddComment(text string) { s.comments = append(s.comments, text) }

// AddEndComment appends a single end comment to s.
func (s *Scope) AddEndComment(text string) { s.endComments = append(s.endComments, text) }

// IsListLike reports whether every member of s is a bare Token (an empty
// scope counts as list-like). The serializer does not consult it: it packs
// bare tokens inline in any scope whose Indented flag is unset.
func (s *Scope) IsListLike() bool {
	for _, m := range s.Members {
		if _, ok := m.(*Token); !ok {
			return false
		}
	}
	return true
}

// AddScope appends a new child scope (named if name != "", anonymous
// otherwise) to s and returns it.
func (s *Scope) AddScope(name string) *Scope {
	child := &Scope{Name: name, Level: s.Level + 1}
	s.Members = append(s.Members, child)
	return child
}

// AddBinding appends a new name = value binding to s. It returns
// ErrInvalidValue if name or value fails the value-validity predicate,
// since a tree containing such a binding could never be round-tripped.
func (s *Scope) AddBinding(name, value string) (*Binding, error) {
	if !isValidValue(name) || !isValidValue(value) {
		return nil, ErrInvalidValue
	}
	b := &Binding{Name: name, Value: value}
	s.Members = append(s.Members, b)
	return b, nil
}

// AddToken appends a new bare token to s. It returns ErrInvalidValue if
// value fails the value-validity predicate.
func (s *Scope) AddToken(value string) (*Token, error) {
	if !isValidValue(value) {
		return nil, ErrInvalidValue
	}
	t := &Token{Value: value}
	s.Members = append(s.Members, t)
	return t, nil
}

// SortMembers stably sorts s.Members in place: Bindings and named Scopes
// sort by name, Tokens sort by value, and anonymous scopes sort after all
// named members, preserving their relative order. This is the pass callers
// are expected to invoke explicitly before serialization when they want
// sorted output; the parser also applies it automatically to any scope
// whose Sorted flag was set before its closing brace was seen.
func (s *Scope) SortMembers() {
	sort.SliceStable(s.Members, func(i, j int) bool {
		return sortKey(s.Members[i]) < sortKey(s.Members[j])
	})
}

// sortKey returns the key used to order a construct. Anonymous scopes sort
// after everything else ("\xff" cannot appear in a valid name).
func sortKey(c Construct) string {
	switch v := c.(type) {
	case *Binding:
		return v.Name
	case *Scope:
		if v.Name == "" {
			return "\xff"
		}
		return v.Name
	case *Token:
		return v.Value
	}
	return ""
}

// FileScope is the root of a parsed or constructed tree. It is always at
// Level 0 and carries the source address it was parsed from (or built
// for).
type FileScope struct {
	*Scope
	Address string
}

// NewFileScope returns an empty root scope for the given source address.
func NewFileScope(address string) *FileScope {
	return &FileScope{Scope: &Scope{Level: 0}, Address: address}
}

// Binding is a "name = value" pair inside a scope. Name and Value are raw
// lexemes: quoted strings retain their surrounding quotes verbatim.
type Binding struct {
	Name  string
	Value string

	comments []string
}

func (*Binding) isConstruct()             {}
func (b *Binding) Comments() []string     { return b.comments }
func (b *Binding) SetComments(c []string) { b.comments = append([]string(nil), c...) }
func (b *Binding) AddComment(text string) { b.comments = append(b.comments, text) }

// Token is a bare positional value inside a list-like scope.
type Token struct {
	Value string

	comments []string
}

func (*Token) isConstruct()             {}
func (t *Token) Comments() []string     { return t.comments }
func (t *Token) SetComments(c []string) { t.comments = append([]string(nil), c...) }
func (t *Token) AddComment(text string) { t.comments = append(t.comments, text) }
