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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jackcompile/source"
	"github.com/bufbuild/jackcompile/token"
)

func leaf(kind token.Kind, lexeme string, col int) *TerminalNode {
	return NewTerminalNode(token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    source.Pos{Filename: "A.jack", Line: 1, Col: col, Offset: col - 1},
	})
}

// class A { method void f() { return; } }
func sample() *CompositeNode {
	return NewCompositeNode(Class,
		leaf(token.Keyword, "class", 1),
		leaf(token.Identifier, "A", 7),
		leaf(token.Symbol, "{", 9),
		NewCompositeNode(SubroutineDec,
			leaf(token.Keyword, "method", 11),
			leaf(token.Keyword, "void", 18),
			leaf(token.Identifier, "f", 23),
			leaf(token.Symbol, "(", 24),
			NewCompositeNode(ParameterList),
			leaf(token.Symbol, ")", 25),
			NewCompositeNode(SubroutineBody,
				leaf(token.Symbol, "{", 27),
				NewCompositeNode(Statements,
					NewCompositeNode(ReturnStatement,
						leaf(token.Keyword, "return", 29),
						leaf(token.Symbol, ";", 35),
					),
				),
				leaf(token.Symbol, "}", 37),
			),
		),
		leaf(token.Symbol, "}", 39),
	)
}

func TestTags(t *testing.T) {
	t.Parallel()
	tags := Tags()
	require.Len(t, tags, 15)
	assert.Equal(t, Class, tags[0])
	assert.Equal(t, ExpressionList, tags[len(tags)-1])
	seen := map[string]bool{}
	for _, tag := range tags {
		assert.True(t, tag.IsValid())
		name := tag.String()
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "letStatement", LetStatement.String())
	assert.Equal(t, "expressionList", ExpressionList.String())

	assert.False(t, Tag(0).IsValid())
	assert.False(t, Tag(200).IsValid())
	assert.Equal(t, "ast.Tag(0)", Tag(0).String())
}

func TestTerminals(t *testing.T) {
	t.Parallel()
	root := sample()
	assert.Equal(t,
		[]string{"class", "A", "{", "method", "void", "f", "(", ")", "{", "return", ";", "}", "}"},
		root.Tokens().Lexemes())
	assert.Len(t, root.Terminals(), 13)
	assert.Empty(t, root.Find(ParameterList).Terminals())
}

func TestStartEnd(t *testing.T) {
	t.Parallel()
	root := sample()
	assert.Equal(t, 1, root.Start().Col)
	assert.Equal(t, 39, root.End().Col)

	body := root.Find(SubroutineBody)
	require.NotNil(t, body)
	assert.Equal(t, 27, body.Start().Col)
	assert.Equal(t, 37, body.End().Col)

	empty := root.Find(ParameterList)
	require.NotNil(t, empty)
	assert.False(t, empty.Start().IsKnown())
	assert.False(t, empty.End().IsKnown())
}

func TestFind(t *testing.T) {
	t.Parallel()
	root := sample()
	assert.Nil(t, root.Find(Class), "root is not its own descendant")
	assert.Nil(t, root.Find(WhileStatement))

	ret := root.Find(ReturnStatement)
	require.NotNil(t, ret)
	assert.Equal(t, []string{"return", ";"}, ret.Tokens().Lexemes())

	comps := root.Composites()
	require.Len(t, comps, 1)
	assert.Equal(t, SubroutineDec, comps[0].Tag)
}

func TestFindAll(t *testing.T) {
	t.Parallel()
	root := NewCompositeNode(Expression,
		NewCompositeNode(Term,
			leaf(token.Symbol, "(", 1),
			NewCompositeNode(Expression,
				NewCompositeNode(Term, leaf(token.IntegerConstant, "1", 2)),
			),
			leaf(token.Symbol, ")", 3),
		),
		leaf(token.Symbol, "+", 5),
		NewCompositeNode(Term, leaf(token.IntegerConstant, "2", 7)),
	)
	terms := root.FindAll(Term)
	require.Len(t, terms, 3)
	// pre-order: the parenthesized term comes before the one nested in it
	assert.Equal(t, []string{"(", "1", ")"}, terms[0].Tokens().Lexemes())
	assert.Equal(t, []string{"1"}, terms[1].Tokens().Lexemes())
	assert.Equal(t, []string{"2"}, terms[2].Tokens().Lexemes())
	assert.Len(t, root.FindAll(Expression), 1)
	assert.Empty(t, root.FindAll(Class))
}

func TestAdd(t *testing.T) {
	t.Parallel()
	n := NewCompositeNode(Statements)
	assert.Empty(t, n.Children)
	n.Add(NewCompositeNode(ReturnStatement))
	n.Add(leaf(token.Symbol, ";", 1))
	require.Len(t, n.Children, 2)
	_, ok := n.Children[1].(*TerminalNode)
	assert.True(t, ok)
}
