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

// Package walk provides helper functions for traversing the nodes of a Jack
// parse tree in depth-first, source order.
package walk

import (
	"errors"

	"github.com/bufbuild/jackcompile/ast"
)

// SkipChildren may be returned from an enter function to skip the children
// of the node just entered. The node's exit function is still called.
var SkipChildren = errors.New("skip children")

// Tree walks the tree rooted at root, calling fn for every node before its
// children. If fn returns an error other than SkipChildren, the walk stops
// and that error is returned.
func Tree(root ast.Node, fn func(ast.Node) error) error {
	return TreeEnterAndExit(root, fn, nil)
}

// TreeEnterAndExit is like Tree, but also calls exit for every node after
// its children have been visited. Either function may be nil.
func TreeEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	return WithDepth(root,
		func(n ast.Node, _ int) error {
			if enter == nil {
				return nil
			}
			return enter(n)
		},
		func(n ast.Node, _ int) error {
			if exit == nil {
				return nil
			}
			return exit(n)
		})
}

// WithDepth is like TreeEnterAndExit, but also passes each node's depth:
// zero for root and one more than its parent's for every other node.
func WithDepth(root ast.Node, enter, exit func(n ast.Node, depth int) error) error {
	w := walker{enter: enter, exit: exit}
	return w.walk(root, 0)
}

type walker struct {
	enter, exit func(ast.Node, int) error
}

func (w *walker) walk(n ast.Node, depth int) error {
	skip := false
	if w.enter != nil {
		if err := w.enter(n, depth); err != nil {
			if !errors.Is(err, SkipChildren) {
				return err
			}
			skip = true
		}
	}
	if comp, ok := n.(*ast.CompositeNode); ok && !skip {
		for _, child := range comp.Children {
			if err := w.walk(child, depth+1); err != nil {
				return err
			}
		}
	}
	if w.exit != nil {
		return w.exit(n, depth)
	}
	return nil
}
