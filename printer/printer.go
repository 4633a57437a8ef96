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

// Package printer serializes parse trees and token streams as the tagged
// XML listings used to check a Jack syntax analyzer.
//
// A tree prints one tag per line, each level indented two spaces past its
// parent:
//
//	<class>
//	  <keyword> class </keyword>
//	  <identifier> Main </identifier>
//	  ...
//	</class>
//
// An interior node with no children still prints its opening and closing
// tags, on separate lines.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/jackcompile/ast"
	"github.com/bufbuild/jackcompile/token"
	"github.com/bufbuild/jackcompile/walk"
)

const indent = "  "

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Print writes the tree rooted at root to w. The whole listing is rendered
// before anything is written, so a tree that cannot be printed leaves w
// untouched.
func Print(w io.Writer, root ast.Node) error {
	var p printer
	if err := walk.WithDepth(root, p.enter, p.exit); err != nil {
		return err
	}
	_, err := p.buf.WriteTo(w)
	return err
}

// String returns the tree rooted at root as Print would write it.
func String(root ast.Node) string {
	var sb strings.Builder
	// writes to a strings.Builder never fail
	_ = Print(&sb, root)
	return sb.String()
}

// PrintTokens writes the flat token listing for toks: every token as a leaf
// tag, without indentation, between <tokens> and </tokens>. Like Print, it
// writes nothing if some token cannot be printed.
func PrintTokens(w io.Writer, toks token.Stream) error {
	var p printer
	p.line(0, "<tokens>")
	for _, tok := range toks {
		p.leaf(0, tok)
	}
	p.line(0, "</tokens>")
	if p.err != nil {
		return p.err
	}
	_, err := p.buf.WriteTo(w)
	return err
}

type printer struct {
	buf bytes.Buffer
	err error
}

func (p *printer) enter(n ast.Node, depth int) error {
	switch n := n.(type) {
	case *ast.TerminalNode:
		p.leaf(depth, n.Token)
	case *ast.CompositeNode:
		if !n.Tag.IsValid() {
			return fmt.Errorf("printer: invalid tag %v", n.Tag)
		}
		p.line(depth, "<"+n.Tag.String()+">")
	}
	return p.err
}

func (p *printer) exit(n ast.Node, depth int) error {
	if n, ok := n.(*ast.CompositeNode); ok {
		p.line(depth, "</"+n.Tag.String()+">")
	}
	return p.err
}

func (p *printer) leaf(depth int, tok token.Token) {
	if p.err != nil {
		return
	}
	if !tok.Kind.IsValid() {
		p.err = fmt.Errorf("printer: %v has no valid kind", tok)
		return
	}
	name := tok.Kind.XMLName()
	p.line(depth, "<"+name+"> "+escaper.Replace(tok.Lexeme)+" </"+name+">")
}

func (p *printer) line(depth int, s string) {
	if p.err != nil {
		return
	}
	for range depth {
		p.buf.WriteString(indent)
	}
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}
