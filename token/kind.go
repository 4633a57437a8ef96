// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"fmt"
	"strings"
)

const (
	Keyword         Kind = iota + 1 // One of the reserved words.
	Identifier                      // A name that is not a reserved word.
	IntegerConstant                 // A run of decimal digits.
	StringConstant                  // A double-quoted string, quotes stripped.
	Symbol                          // A single punctuation character.

	kindCount Kind = iota + 1 // One past the last valid kind.
)

// Kind identifies what kind of token a particular [Token] is. The zero Kind
// is not a valid kind; it is used for the end-of-input sentinel.
type Kind byte

// Kinds returns every valid kind, in declaration order.
func Kinds() []Kind {
	return []Kind{Keyword, Identifier, IntegerConstant, StringConstant, Symbol}
}

// IsValid returns whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && k < kindCount
}

// Set returns a KindSet containing only k.
func (k Kind) Set() KindSet {
	if !k.IsValid() {
		return 0
	}
	return 1 << k
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case IntegerConstant:
		return "integer constant"
	case StringConstant:
		return "string constant"
	case Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// XMLName returns the name of the leaf tag used when serializing a token of
// this kind.
func (k Kind) XMLName() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case IntegerConstant:
		return "integerConstant"
	case StringConstant:
		return "stringConstant"
	case Symbol:
		return "symbol"
	default:
		panic(fmt.Sprintf("jackcompile/token: no tag name for %v", k))
	}
}

// KindSet is a set of token kinds.
type KindSet uint8

// KindsOf returns a set containing the given kinds.
func KindsOf(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= k.Set()
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&k.Set() != 0
}

// IsEmpty reports whether the set contains no kinds.
func (s KindSet) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members of s in declaration order.
func (s KindSet) Kinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String renders the set as "a or b".
func (s KindSet) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}
