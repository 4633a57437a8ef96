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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jackcompile/ast"
	"github.com/bufbuild/jackcompile/reporter"
	"github.com/bufbuild/jackcompile/token"
)

func parseForTest(t *testing.T, src string) *ast.CompositeNode {
	t.Helper()
	root, err := Parse("test.jack", strings.NewReader(src), nil)
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

// shape renders the tags and lexemes under n on one line, for compact
// assertions about tree structure.
func shape(n ast.Node) string {
	switch n := n.(type) {
	case *ast.TerminalNode:
		return n.Token.Lexeme
	case *ast.CompositeNode:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = shape(c)
		}
		return n.Tag.String() + "(" + strings.Join(parts, " ") + ")"
	}
	return "?"
}

func TestParseEmptyClass(t *testing.T) {
	t.Parallel()

	root := parseForTest(t, "class Empty { }")
	assert.Equal(t, ast.Class, root.Tag)
	require.Len(t, root.Children, 4)
	for _, c := range root.Children {
		assert.IsType(t, (*ast.TerminalNode)(nil), c)
	}
	assert.Empty(t, root.Composites())
	assert.Nil(t, root.Find(ast.ClassVarDec))
	assert.Nil(t, root.Find(ast.SubroutineDec))
	assert.Equal(t, []string{"class", "Empty", "{", "}"}, root.Tokens().Lexemes())
}

func TestParseLet(t *testing.T) {
	t.Parallel()

	root := parseForTest(t, `class Main {
  function void main() {
    var int x;
    let x = 42;
    return;
  }
}`)
	let := root.Find(ast.LetStatement)
	require.NotNil(t, let)
	assert.Equal(t, "letStatement(let x = expression(term(42)) ;)", shape(let))

	expr := let.Find(ast.Expression)
	require.NotNil(t, expr)
	terms := expr.Composites()
	require.Len(t, terms, 1)
	require.Len(t, terms[0].Children, 1)
	leaf, ok := terms[0].Children[0].(*ast.TerminalNode)
	require.True(t, ok)
	assert.Equal(t, token.IntegerConstant, leaf.Token.Kind)
	assert.Equal(t, "42", leaf.Token.Lexeme)
	assert.Equal(t, 4, leaf.Token.Pos.Line)
	assert.Equal(t, 13, leaf.Token.Pos.Col)

	assert.Equal(t, 4, let.Start().Line)
	assert.Equal(t, 5, let.Start().Col)
	assert.Equal(t, 15, let.End().Col)
}

func TestParseDo(t *testing.T) {
	t.Parallel()

	root := parseForTest(t, "class A { function void f() { do g(); return; } }")
	do := root.Find(ast.DoStatement)
	require.NotNil(t, do)
	require.Len(t, do.Children, 3)
	call, ok := do.Children[1].(*ast.CompositeNode)
	require.True(t, ok, "the call is a composite child")
	assert.Equal(t, ast.Term, call.Tag)
	assert.Equal(t, "term(g ( expressionList() ))", shape(call))
	assert.Equal(t, []string{"do", "g", "(", ")", ";"}, do.Tokens().Lexemes())
}

func TestParseShapes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name, body, want string
	}{
		{
			name: "array access",
			body: "let a[i + 1] = b[0];",
			want: "statements(letStatement(let a [ expression(term(i) + term(1)) ] = expression(term(b [ expression(term(0)) ])) ;))",
		},
		{
			name: "qualified call",
			body: "do Output.printInt(x, -y);",
			want: "statements(doStatement(do term(Output . printInt ( expressionList(expression(term(x)) , expression(term(- term(y)))) )) ;))",
		},
		{
			name: "unqualified call",
			body: "do draw();",
			want: "statements(doStatement(do term(draw ( expressionList() )) ;))",
		},
		{
			name: "call in term",
			body: "let x = Math.max(a, b) * f();",
			want: "statements(letStatement(let x = expression(term(Math . max ( expressionList(expression(term(a)) , expression(term(b))) )) * term(f ( expressionList() ))) ;))",
		},
		{
			name: "left to right operators",
			body: "let x = 1 + 2 * 3;",
			want: "statements(letStatement(let x = expression(term(1) + term(2) * term(3)) ;))",
		},
		{
			name: "parenthesized and unary",
			body: "let b = ~(x < 10) & (y = null);",
			want: "statements(letStatement(let b = expression(term(~ term(( expression(term(x) < term(10)) ))) & term(( expression(term(y) = term(null)) ))) ;))",
		},
		{
			name: "if else",
			body: "if (true) { return; } else { }",
			want: "statements(ifStatement(if ( expression(term(true)) ) { statements(returnStatement(return ;)) } else { statements() }))",
		},
		{
			name: "while",
			body: `while (i > 0) { let s = "x"; }`,
			want: "statements(whileStatement(while ( expression(term(i) > term(0)) ) { statements(letStatement(let s = expression(term(x)) ;)) }))",
		},
		{
			name: "return value",
			body: "return this;",
			want: "statements(returnStatement(return expression(term(this)) ;))",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root := parseForTest(t, "class A { method void f() { "+tc.body+" } }")
			stmts := root.Find(ast.Statements)
			require.NotNil(t, stmts)
			assert.Equal(t, tc.want, shape(stmts))
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	t.Parallel()

	root := parseForTest(t, `class Point {
  static int count;
  field int x, y;
  field Point next;

  constructor Point new(int ax, boolean b, char c, Array d) {
    var int i, j;
    var String s;
    return this;
  }

  method Point getNext() { return next; }
}`)
	decs := root.FindAll(ast.ClassVarDec)
	require.Len(t, decs, 3)
	assert.Equal(t, "classVarDec(static int count ;)", shape(decs[0]))
	assert.Equal(t, "classVarDec(field int x , y ;)", shape(decs[1]))
	assert.Equal(t, "classVarDec(field Point next ;)", shape(decs[2]))

	subs := root.FindAll(ast.SubroutineDec)
	require.Len(t, subs, 2)
	params := subs[0].Find(ast.ParameterList)
	require.NotNil(t, params)
	assert.Equal(t, "parameterList(int ax , boolean b , char c , Array d)", shape(params))
	vars := subs[0].FindAll(ast.VarDec)
	require.Len(t, vars, 2)
	assert.Equal(t, "varDec(var int i , j ;)", shape(vars[0]))
	assert.Equal(t, "varDec(var String s ;)", shape(vars[1]))

	params = subs[1].Find(ast.ParameterList)
	require.NotNil(t, params)
	assert.Empty(t, params.Children)
	assert.False(t, params.Start().IsKnown())

	// class members are ordered as the grammar lists them
	var tags []ast.Tag
	for _, c := range root.Composites() {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []ast.Tag{ast.ClassVarDec, ast.ClassVarDec, ast.ClassVarDec, ast.SubroutineDec, ast.SubroutineDec}, tags)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		src    string
		errMsg string
	}{
		{
			src:    "class Main {",
			errMsg: `test.jack:1:13: syntax error: unexpected end of input, expecting symbol "}"`,
		},
		{
			src:    "",
			errMsg: `test.jack:1:1: syntax error: unexpected end of input, expecting keyword "class"`,
		},
		{
			src:    "class A { } x",
			errMsg: `test.jack:1:13: syntax error: unexpected identifier "x", expecting end of input`,
		},
		{
			src:    "class 1 { }",
			errMsg: `test.jack:1:7: syntax error: unexpected integer constant "1", expecting identifier`,
		},
		{
			src:    "class A { field x; }",
			errMsg: `test.jack:1:18: syntax error: unexpected symbol ";", expecting identifier`,
		},
		{
			src:    "class A { field void x; }",
			errMsg: `test.jack:1:17: syntax error: unexpected keyword "void", expecting keyword "int" or keyword "char" or keyword "boolean" or identifier`,
		},
		{
			src:    "class A { function void f() { do x; } }",
			errMsg: `test.jack:1:35: syntax error: unexpected symbol ";", expecting symbol "(" or symbol "."`,
		},
		{
			src:    "class A { function void f() { do a.b.c(); } }",
			errMsg: `test.jack:1:37: syntax error: unexpected symbol ".", expecting symbol "("`,
		},
		{
			src:    "class A { function int f() { return class; } }",
			errMsg: `test.jack:1:37: syntax error: invalid term: unexpected keyword "class"`,
		},
		{
			src:    "class A { function void f() { let x = ; } }",
			errMsg: `test.jack:1:39: syntax error: invalid term: unexpected symbol ";"`,
		},
		{
			src:    "class A { function void f() { var int x; let x = 1; var int y; } }",
			errMsg: `test.jack:1:53: syntax error: unexpected keyword "var", expecting symbol "}"`,
		},
		{
			src:    "class A { method void f(int a b) { } }",
			errMsg: `test.jack:1:31: syntax error: unexpected identifier "b", expecting symbol ")"`,
		},
		{
			src:    "class A { method void f() { if x { } } }",
			errMsg: `test.jack:1:32: syntax error: unexpected identifier "x", expecting symbol "("`,
		},
		{
			src:    "class A { method void f() { let a[1 = 2; } }",
			errMsg: `test.jack:1:40: syntax error: unexpected symbol ";", expecting symbol "]"`,
		},
		{
			src:    "class A { function void f() { let x = 1 +",
			errMsg: `test.jack:1:42: syntax error: invalid term: unexpected end of input`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			root, err := Parse("test.jack", strings.NewReader(tc.src), nil)
			require.Error(t, err)
			assert.Nil(t, root)
			assert.Equal(t, tc.errMsg, err.Error())
			var synErr *reporter.SyntaxError
			assert.ErrorAs(t, err, &synErr)
		})
	}
}

func TestParseUnexpectedEOF(t *testing.T) {
	t.Parallel()

	_, err := Parse("test.jack", strings.NewReader("class Main {\n  function void main() {\n"), nil)
	require.ErrorIs(t, err, reporter.ErrUnexpectedEOF)
	var synErr *reporter.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.True(t, synErr.EOF)
	assert.Equal(t, "end of input", synErr.Found)

	_, err = Parse("test.jack", strings.NewReader("class Main { } }"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, reporter.ErrUnexpectedEOF)
}

func TestParseLexicalError(t *testing.T) {
	t.Parallel()

	_, err := Parse("test.jack", strings.NewReader("class Main { @ }"), nil)
	var lexErr *reporter.LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, '@', lexErr.Char)
}

func TestParseReporter(t *testing.T) {
	t.Parallel()

	var errs, warnings []string
	h := reporter.NewHandler(reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			errs = append(errs, err.Error())
			return nil
		},
		func(err reporter.ErrorWithPos) {
			warnings = append(warnings, err.Error())
		},
	))
	root, err := Parse("empty.jack", strings.NewReader("// nothing here\n"), h)
	assert.Nil(t, root)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Equal(t, []string{"empty.jack:2:1: source unit contains no tokens"}, warnings)
	assert.Equal(t, []string{`empty.jack:2:1: syntax error: unexpected end of input, expecting keyword "class"`}, errs)
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
}

func TestParseEmptySourceWarning(t *testing.T) {
	t.Parallel()

	var warning error
	h := reporter.NewHandler(reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warning = err
	}))
	_, err := Parse("test.jack", strings.NewReader("   "), h)
	require.Error(t, err)
	assert.ErrorIs(t, warning, ErrEmptySource)
}

func TestParseMaxDepth(t *testing.T) {
	t.Parallel()

	nested := func(n int) string {
		return "class A { function int f() { return " +
			strings.Repeat("(", n) + "1" + strings.Repeat(")", n) +
			"; } }"
	}

	// each parenthesized level opens an expression and a term
	_, err := Options{MaxDepth: 20}.Parse("test.jack", strings.NewReader(nested(3)), nil)
	require.NoError(t, err)

	_, err = Options{MaxDepth: 20}.Parse("test.jack", strings.NewReader(nested(10)), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting exceeds maximum depth of 20")

	// the default limit admits ordinary nesting and rejects pathological input
	_, err = Parse("test.jack", strings.NewReader(nested(100)), nil)
	require.NoError(t, err)
	_, err = Parse("test.jack", strings.NewReader(nested(DefaultMaxDepth)), nil)
	require.Error(t, err)

	// the class itself counts as one level
	root, err := Options{MaxDepth: 1}.Parse("test.jack", strings.NewReader("class A { }"), nil)
	require.NoError(t, err)
	assert.Equal(t, ast.Class, root.Tag)
	_, err = Options{MaxDepth: 1}.Parse("test.jack", strings.NewReader("class A { field int x; }"), nil)
	require.ErrorContains(t, err, "test.jack:1:11: syntax error: nesting exceeds maximum depth of 1")

	// negative disables the limit
	_, err = Options{MaxDepth: -1}.Parse("test.jack", strings.NewReader(nested(DefaultMaxDepth)), nil)
	require.NoError(t, err)
}

func TestParseTokens(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("test.jack", strings.NewReader("class A { field int x; }"), nil)
	require.NoError(t, err)
	root, err := ParseTokens("test.jack", toks, nil)
	require.NoError(t, err)
	assert.Equal(t, toks, root.Tokens())

	_, err = ParseTokens("test.jack", toks[:len(toks)-1], nil)
	require.ErrorIs(t, err, reporter.ErrUnexpectedEOF)
	// the end of input is just past the last token
	assert.True(t, strings.HasPrefix(err.Error(), "test.jack:1:23: "), err.Error())

	_, err = ParseTokens("test.jack", nil, nil)
	require.ErrorIs(t, err, reporter.ErrUnexpectedEOF)
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	const src = "class A { method int f(int n) { if (n < 2) { return n; } return f(n - 1) + f(n - 2); } }"
	first := parseForTest(t, src)
	second := parseForTest(t, src)
	assert.Equal(t, shape(first), shape(second))
}

func TestParseReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Parse("test.jack", failingReader{boom}, nil)
	assert.ErrorIs(t, err, boom)
}
