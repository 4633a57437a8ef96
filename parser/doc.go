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

// Package parser turns Jack source code into tokens and tokens into a parse
// tree.
//
// [Lex] and [Tokenize] strip comments and classify what remains into the
// five token kinds of the language. [Parse] runs the lexer and then a
// recursive descent parser with one token of lookahead, producing a tree of
// [ast.CompositeNode] values whose leaves are the input tokens in order.
//
// Both stages stop at the first defect. Diagnostics are delivered through a
// [reporter.Handler]; a defect in the source yields no tree at all.
package parser
