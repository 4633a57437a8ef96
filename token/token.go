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

	"github.com/bufbuild/jackcompile/source"
)

// MaxInt is the largest integer constant the language admits.
const MaxInt = 32767

// Token is a single classified lexical unit. Tokens are values; nothing
// mutates a token once the lexer has produced it.
type Token struct {
	Kind Kind
	// The text of the token. For string constants this excludes the
	// surrounding quotes.
	Lexeme string
	// Where the token starts.
	Pos source.Pos
}

// IsZero returns whether this is the zero token, which stands in for the
// end of input.
func (t Token) IsZero() bool {
	return t.Kind == 0
}

// Is reports whether the token has kind k and, if any lexemes are given,
// one of those lexemes.
func (t Token) Is(k Kind, lexemes ...string) bool {
	if t.Kind != k {
		return false
	}
	if len(lexemes) == 0 {
		return true
	}
	for _, lex := range lexemes {
		if t.Lexeme == lex {
			return true
		}
	}
	return false
}

// String returns a description suitable for diagnostics, such as
// `identifier "Main"`, or "end of input" for the zero token.
func (t Token) String() string {
	if t.IsZero() {
		return "end of input"
	}
	return fmt.Sprintf("%v %q", t.Kind, t.Lexeme)
}

// Stream is the ordered, finite sequence of tokens produced by one lexer pass
// over one source unit. It is never modified after the lexer returns it.
type Stream []Token

// Len returns the number of tokens in the stream.
func (s Stream) Len() int {
	return len(s)
}

// At returns the token at index i. If i is out of range, it returns the zero
// token and false.
func (s Stream) At(i int) (Token, bool) {
	if i < 0 || i >= len(s) {
		return Token{}, false
	}
	return s[i], true
}

// Lexemes returns the lexeme of every token, in order.
func (s Stream) Lexemes() []string {
	lexemes := make([]string, len(s))
	for i, t := range s {
		lexemes[i] = t.Lexeme
	}
	return lexemes
}
