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

// Package jackcompile provides the entry point for the syntax analysis of
// Jack programs. "Compile" in this case means lexing and parsing each source
// unit into a parse tree; no code is generated.
//
// The various sub-packages represent the phases and contain models for the
// intermediate results:
//  1. Lex into a token stream.
//     Also see: parser.Lex, parser.Tokenize
//  2. Parse the tokens into a tree.
//     Also see: parser.Parse, parser.ParseTokens
//  3. Serialize the tree.
//     Also see: printer.Print
//
// This package does all of the phases relevant, based on the inputs given,
// for many source units at once, taking advantage of multiple CPU cores.
//
// # Resolvers
//
// A Resolver is how the compiler locates the source units to compile. A
// Resolver can answer a query with any of the following:
//   - Source code: the compiler lexes and parses it.
//   - Tokens: the compiler only parses them.
//   - A tree: the compiler uses it as is.
//
// FindSources expands glob patterns, such as "**/*.jack", into the paths to
// compile.
//
// # Compiler
//
// A Compiler accepts a list of paths and produces the list of parsed files.
// Only the Resolver field is required. A minimal Compiler, that loads files
// from the file system relative to the current working directory and writes
// an XML listing next to each one, looks like this:
//
//	compiler := jackcompile.Compiler{
//	    Resolver: &jackcompile.SourceResolver{},
//	    Sink:     &jackcompile.XMLSink{},
//	}
//
// This Compiler uses default parallelism, equal to the number of CPU cores
// detected, and fails fast at the first error. Both can be customized by
// setting other fields.
package jackcompile
