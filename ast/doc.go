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

// Package ast defines the parse tree for Jack source units.
//
// All nodes of the tree implement the Node interface. Leaf nodes in the
// tree are *TerminalNode values that wrap a single token, and all others are
// *CompositeNode values tagged with the grammar rule that produced them. The
// root of the tree for a source unit is a *CompositeNode tagged [Class].
//
// The tree is a parse tree, not an abstract syntax tree: every token of the
// source unit appears as a leaf, including punctuation, and the children of
// each composite node appear in exactly the order its grammar rule lists
// them. This makes the tree suitable for faithful serialization and leaves
// all interpretation to later stages.
//
// The parser builds the tree and owns it until parsing succeeds. Consumers
// should treat a returned tree as read-only.
package ast
