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

package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paradox-tools/clausewitz/pkg/script"
)

func TestParseAllCollectsErrorsWithoutAborting(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "events"), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(name, contents string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("good.txt", "a = 1\n")
	write(filepath.Join("events", "bad.txt"), "= 5\n")
	write("ignored.yml", "a: 1\n")

	b, err := ParseAll(dir)
	if err != nil {
		t.Fatalf("ParseAll: unexpected error: %v", err)
	}
	if _, ok := b.Files["good.txt"]; !ok {
		t.Errorf("Files[good.txt] missing, got keys %v", keys(b.Files))
	}
	if len(b.Files) != 1 {
		t.Errorf("got %d parsed files, want 1 (ignored.yml should be skipped)", len(b.Files))
	}
	if len(b.Errors) != 1 {
		t.Fatalf("got %d syntax errors, want 1", len(b.Errors))
	}
	if got, want := b.Errors[0].FileAddress, filepath.Join("events", "bad.txt"); got != want {
		t.Errorf("error FileAddress = %q, want %q", got, want)
	}
}

func keys(m map[string]*script.FileScope) []string {
	var ks []string
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}
