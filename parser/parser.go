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

package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/jackcompile/ast"
	"github.com/bufbuild/jackcompile/reporter"
	"github.com/bufbuild/jackcompile/source"
	"github.com/bufbuild/jackcompile/token"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options configures a parse. The zero value is ready to use.
type Options struct {
	// The maximum number of grammar rules that may be open at once. Deeply
	// nested expressions and statements past this limit are reported as a
	// syntax error instead of growing the stack without bound. Zero means
	// DefaultMaxDepth; negative means no limit.
	MaxDepth int
}

// Parse parses the source unit read from r into a parse tree rooted at a
// node tagged ast.Class.
//
// Lexing and parsing stop at the first defect. The diagnostic is passed to
// handler, and the returned error is whatever the handler's reporter
// returned, or reporter.ErrInvalidSource if the reporter swallowed it. No
// tree is returned on failure. A nil handler fails on the first error.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.CompositeNode, error) {
	return Options{}.Parse(filename, r, handler)
}

// ParseTokens parses an already lexed source unit.
func ParseTokens(filename string, toks token.Stream, handler *reporter.Handler) (*ast.CompositeNode, error) {
	return Options{}.ParseTokens(filename, toks, handler)
}

// Parse is like the package-level Parse, but uses the receiver's options.
func (o Options) Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.CompositeNode, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	l, err := newLexer(r, filename, handler)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	var toks token.Stream
	for tok, err := range l.all() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return o.parse(toks, l.file.Pos(l.file.Len()), handler)
}

// ParseTokens is like the package-level ParseTokens, but uses the
// receiver's options.
func (o Options) ParseTokens(filename string, toks token.Stream, handler *reporter.Handler) (*ast.CompositeNode, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	eof := source.UnknownPos(filename)
	if last, ok := toks.At(toks.Len() - 1); ok {
		eof = endOf(last)
	}
	return o.parse(toks, eof, handler)
}

func (o Options) parse(toks token.Stream, eof source.Pos, handler *reporter.Handler) (*ast.CompositeNode, error) {
	if toks.Len() == 0 {
		handler.HandleWarning(eof, ErrEmptySource)
	}
	maxDepth := o.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{
		tokens:   toks,
		eof:      eof,
		handler:  handler,
		maxDepth: maxDepth,
	}
	return p.parseFile()
}

// endOf approximates the position just past tok, for streams that were not
// lexed from a source.File.
func endOf(tok token.Token) source.Pos {
	pos := tok.Pos
	width := len(tok.Lexeme)
	if tok.Kind == token.StringConstant {
		width += 2
	}
	pos.Offset += width
	if pos.IsKnown() {
		pos.Col += utf8.RuneCountInString(tok.Lexeme) + (width - len(tok.Lexeme))
	}
	return pos
}

// parser holds the only mutable parse state: an index into an immutable
// token stream. depth mirrors the number of open grammar rules.
type parser struct {
	tokens token.Stream
	pos    int
	eof    source.Pos

	handler  *reporter.Handler
	depth    int
	maxDepth int
}

// current returns the token at the cursor, or the zero token at the end of
// input.
func (p *parser) current() token.Token {
	tok, _ := p.tokens.At(p.pos)
	return tok
}

// peek returns the token n positions past the cursor without consuming
// anything, or the zero token if there is none.
func (p *parser) peek(n int) token.Token {
	tok, _ := p.tokens.At(p.pos + n)
	return tok
}

// want describes one acceptable shape for the token at the cursor: any of
// the kinds in kinds and, if lexemes is not empty, one of those lexemes.
type want struct {
	kinds   token.KindSet
	lexemes []string
}

func keyword(words ...string) want {
	return want{kinds: token.Keyword.Set(), lexemes: words}
}

func symbol(syms ...string) want {
	return want{kinds: token.Symbol.Set(), lexemes: syms}
}

var (
	identifier = want{kinds: token.Identifier.Set()}
	literal    = want{kinds: token.KindsOf(token.IntegerConstant, token.StringConstant)}
	binaryOp   = symbol(strings.Split(token.BinaryOperators, "")...)
	unaryOp    = symbol(strings.Split(token.UnaryOperators, "")...)
)

func (w want) matches(tok token.Token) bool {
	if !w.kinds.Has(tok.Kind) {
		return false
	}
	if len(w.lexemes) == 0 {
		return true
	}
	for _, lex := range w.lexemes {
		if tok.Lexeme == lex {
			return true
		}
	}
	return false
}

func (w want) describe() []string {
	if len(w.lexemes) == 0 {
		return []string{w.kinds.String()}
	}
	descs := make([]string, len(w.lexemes))
	for i, lex := range w.lexemes {
		descs[i] = fmt.Sprintf("%v %q", w.kinds, lex)
	}
	return descs
}

// consume checks the token at the cursor against the acceptable shapes,
// adds it to parent as a leaf and advances. With no shapes any token is
// accepted, but the input must not have ended.
func (p *parser) consume(parent *ast.CompositeNode, wants ...want) error {
	tok := p.current()
	if tok.IsZero() {
		return p.unexpected(tok, wants...)
	}
	ok := len(wants) == 0
	for _, w := range wants {
		if w.matches(tok) {
			ok = true
			break
		}
	}
	if !ok {
		return p.unexpected(tok, wants...)
	}
	parent.Add(ast.NewTerminalNode(tok))
	p.pos++
	return nil
}

// child runs a grammar rule and adds the node it produces to parent.
func (p *parser) child(parent *ast.CompositeNode, rule func() (*ast.CompositeNode, error)) error {
	if err := p.enter(); err != nil {
		return err
	}
	n, err := rule()
	p.depth--
	if err != nil {
		return err
	}
	parent.Add(n)
	return nil
}

// enter opens one more grammar rule, failing if that exceeds the maximum
// depth. On success the caller must decrement p.depth when the rule is done.
func (p *parser) enter() error {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		tok := p.current()
		return p.fail(tok, &reporter.SyntaxError{
			Reason: fmt.Sprintf("nesting exceeds maximum depth of %d", p.maxDepth),
			Found:  tok.String(),
			EOF:    tok.IsZero(),
		})
	}
	p.depth++
	return nil
}

// unexpected reports tok as a syntax error.
func (p *parser) unexpected(tok token.Token, wants ...want) error {
	var expected []string
	for _, w := range wants {
		expected = append(expected, w.describe()...)
	}
	return p.fail(tok, &reporter.SyntaxError{
		Expected: expected,
		Found:    tok.String(),
		EOF:      tok.IsZero(),
	})
}

func (p *parser) fail(tok token.Token, err *reporter.SyntaxError) error {
	pos := tok.Pos
	if tok.IsZero() {
		pos = p.eof
	}
	return handle(p.handler, reporter.Error(pos, err))
}
