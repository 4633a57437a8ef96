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

package ast

import (
	"github.com/bufbuild/jackcompile/source"
	"github.com/bufbuild/jackcompile/token"
)

// Node is the interface implemented by all nodes in the parse tree. The only
// implementations are *TerminalNode and *CompositeNode.
type Node interface {
	// Start returns the position of the node's first token. For a composite
	// node with no tokens, such as an empty parameter list, this is the zero
	// Pos.
	Start() source.Pos
	// End returns the position of the node's last token.
	End() source.Pos

	isNode()
}

// TerminalNode is a leaf of the tree. It wraps exactly one token.
type TerminalNode struct {
	Token token.Token
}

var _ Node = (*TerminalNode)(nil)

// NewTerminalNode creates a leaf for tok.
func NewTerminalNode(tok token.Token) *TerminalNode {
	return &TerminalNode{Token: tok}
}

func (n *TerminalNode) Start() source.Pos {
	return n.Token.Pos
}

func (n *TerminalNode) End() source.Pos {
	return n.Token.Pos
}

func (*TerminalNode) isNode() {}

// CompositeNode is an interior node of the tree. Its children appear in the
// order the grammar rule named by Tag lists them.
type CompositeNode struct {
	Tag      Tag
	Children []Node
}

var _ Node = (*CompositeNode)(nil)

// NewCompositeNode creates an interior node. Children are added by the
// parser as it descends.
func NewCompositeNode(tag Tag, children ...Node) *CompositeNode {
	return &CompositeNode{Tag: tag, Children: children}
}

func (*CompositeNode) isNode() {}

// Add appends a child.
func (n *CompositeNode) Add(child Node) {
	n.Children = append(n.Children, child)
}

func (n *CompositeNode) Start() source.Pos {
	terms := n.Terminals()
	if len(terms) == 0 {
		return source.Pos{}
	}
	return terms[0].Start()
}

func (n *CompositeNode) End() source.Pos {
	terms := n.Terminals()
	if len(terms) == 0 {
		return source.Pos{}
	}
	return terms[len(terms)-1].End()
}

// Terminals returns every leaf under n, in source order.
func (n *CompositeNode) Terminals() []*TerminalNode {
	var terms []*TerminalNode
	var visit func(*CompositeNode)
	visit = func(c *CompositeNode) {
		for _, child := range c.Children {
			switch child := child.(type) {
			case *TerminalNode:
				terms = append(terms, child)
			case *CompositeNode:
				visit(child)
			}
		}
	}
	visit(n)
	return terms
}

// Tokens returns the token of every leaf under n, in source order.
func (n *CompositeNode) Tokens() token.Stream {
	terms := n.Terminals()
	toks := make(token.Stream, len(terms))
	for i, t := range terms {
		toks[i] = t.Token
	}
	return toks
}

// Composites returns the composite children of n (not all descendants).
func (n *CompositeNode) Composites() []*CompositeNode {
	var comps []*CompositeNode
	for _, child := range n.Children {
		if c, ok := child.(*CompositeNode); ok {
			comps = append(comps, c)
		}
	}
	return comps
}

// Find returns the first descendant of n, in pre-order, tagged tag. It
// returns nil if there is none. n itself is not considered.
func (n *CompositeNode) Find(tag Tag) *CompositeNode {
	for _, c := range n.Composites() {
		if c.Tag == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of n tagged tag, in pre-order.
func (n *CompositeNode) FindAll(tag Tag) []*CompositeNode {
	var found []*CompositeNode
	for _, c := range n.Composites() {
		if c.Tag == tag {
			found = append(found, c)
		}
		found = append(found, c.FindAll(tag)...)
	}
	return found
}
