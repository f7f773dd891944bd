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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScopeAddBindingValidation(t *testing.T) {
	s := NewFileScope("test").Scope
	if _, err := s.AddBinding("name", "value"); err != nil {
		t.Fatalf("AddBinding(valid, valid): unexpected error: %v", err)
	}
	if _, err := s.AddBinding("na!me", "value"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("AddBinding(invalid name): got %v, want ErrInvalidValue", err)
	}
	if _, err := s.AddBinding("name", "val!ue"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("AddBinding(invalid value): got %v, want ErrInvalidValue", err)
	}
}

func TestScopeAddTokenValidation(t *testing.T) {
	s := NewFileScope("test").Scope
	if _, err := s.AddToken("---"); err != nil {
		t.Fatalf("AddToken(sentinel): unexpected error: %v", err)
	}
	if _, err := s.AddToken("bad!"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("AddToken(invalid): got %v, want ErrInvalidValue", err)
	}
}

func TestScopeAddScopeSetsLevel(t *testing.T) {
	root := NewFileScope("test").Scope
	child := root.AddScope("child")
	grandchild := child.AddScope("")
	if child.Level != 1 {
		t.Errorf("child.Level = %d, want 1", child.Level)
	}
	if grandchild.Level != 2 {
		t.Errorf("grandchild.Level = %d, want 2", grandchild.Level)
	}
	if grandchild.Name != "" {
		t.Errorf("grandchild.Name = %q, want anonymous", grandchild.Name)
	}
}

func TestScopeIsListLike(t *testing.T) {
	s := NewFileScope("test").Scope
	if !s.IsListLike() {
		t.Errorf("empty scope should be list-like")
	}
	s.AddToken("a")
	if !s.IsListLike() {
		t.Errorf("scope with only tokens should be list-like")
	}
	s.AddBinding("b", "1")
	if s.IsListLike() {
		t.Errorf("scope with a binding should not be list-like")
	}
}

func TestSortMembers(t *testing.T) {
	s := NewFileScope("test").Scope
	s.AddScope("") // anonymous, should sort last
	s.AddBinding("c", "1")
	s.AddBinding("a", "1")
	s.AddScope("b-scope")
	s.SortMembers()

	var keys []string
	for _, m := range s.Members {
		keys = append(keys, sortKey(m))
	}
	want := []string{"a", "b-scope", "c", "\xff"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
}
