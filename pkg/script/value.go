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

// isValidValue implements the value-validity predicate of the Clausewitz
// format (any lexeme legal as a binding name, binding value, or bare
// token): the lexeme is valid iff it contains a decimal digit, or is
// exactly the "---" sentinel, or consists entirely of identifier
// characters, dots, colons, and double quotes.
//
// The digit disjunct is permissive: a lexeme like "abc1!" passes because it
// contains a digit, even though "!" is outside the identifier character
// class.
func isValidValue(s string) bool {
	if s == "" {
		return false
	}
	if s == "---" {
		return true
	}
	hasDigit := false
	allIdentClass := true
	for _, r := range s {
		if r >= '0' && r <= '9' {
			hasDigit = true
			continue
		}
		if !isIdentChar(r) {
			allIdentClass = false
		}
	}
	return hasDigit || allIdentClass
}

// isIdentChar reports whether r is in the character class
// [A-Za-z0-9_.:"].
func isIdentChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '.', r == ':', r == '"':
		return true
	default:
		return false
	}
}
