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

import "strings"

var keywords = []string{
	"class", "constructor", "function", "method", "field", "static",
	"var", "int", "char", "boolean", "void", "true", "false", "null",
	"this", "let", "do", "if", "else", "while", "return",
}

var keywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		m[kw] = struct{}{}
	}
	return m
}()

// symbols are the punctuation characters that form Symbol tokens.
const symbols = "{}()[].,;+-*/&|<>=~"

// BinaryOperators are the symbols that may join two terms in an expression.
const BinaryOperators = "+-*/&|<>="

// UnaryOperators are the symbols that may prefix a term.
const UnaryOperators = "-~"

// Keywords returns the reserved words, in a fixed order.
func Keywords() []string {
	return append([]string(nil), keywords...)
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywordSet[s]
	return ok
}

// Symbols returns the punctuation characters that form Symbol tokens.
func Symbols() string {
	return symbols
}

// IsSymbol reports whether r is one of the punctuation characters.
func IsSymbol(r rune) bool {
	return strings.ContainsRune(symbols, r)
}

// IsBinaryOperator reports whether t is a symbol that joins two terms.
func IsBinaryOperator(t Token) bool {
	return t.Kind == Symbol && len(t.Lexeme) == 1 && strings.Contains(BinaryOperators, t.Lexeme)
}

// IsUnaryOperator reports whether t is a symbol that prefixes a term.
func IsUnaryOperator(t Token) bool {
	return t.Kind == Symbol && len(t.Lexeme) == 1 && strings.Contains(UnaryOperators, t.Lexeme)
}

// IsKeywordConstant reports whether t is one of true, false, null or this.
func IsKeywordConstant(t Token) bool {
	return t.Is(Keyword, "true", "false", "null", "this")
}
