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

// Package token defines the tokens of the Jack language.
//
// There are exactly five kinds of token. Whitespace and comments never
// become tokens; the lexer discards them. Reserved words are lexed as
// identifiers first and then reclassified, so every identifier-shaped lexeme
// that is one of the 21 reserved words has kind [Keyword].
package token
