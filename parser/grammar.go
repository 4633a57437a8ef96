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
	"github.com/bufbuild/jackcompile/ast"
	"github.com/bufbuild/jackcompile/reporter"
	"github.com/bufbuild/jackcompile/token"
)

// Each parseX method below implements one grammar rule. It creates the
// rule's node, consumes terminals and runs nested rules in the order the
// rule lists them, and returns the finished node.

var (
	// type: 'int' | 'char' | 'boolean' | className
	typeName = []want{keyword("int", "char", "boolean"), identifier}
	// the return type also admits 'void'
	returnType = []want{keyword("void", "int", "char", "boolean"), identifier}
)

// parseFile parses a whole source unit: exactly one class and nothing after
// it.
func (p *parser) parseFile() (*ast.CompositeNode, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	class, err := p.parseClass()
	p.depth--
	if err != nil {
		return nil, err
	}
	if tok := p.current(); !tok.IsZero() {
		return nil, p.fail(tok, &reporter.SyntaxError{
			Expected: []string{token.Token{}.String()},
			Found:    tok.String(),
		})
	}
	return class, nil
}

// 'class' className '{' classVarDec* subroutineDec* '}'
func (p *parser) parseClass() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.Class)
	if err := p.consume(n, keyword("class")); err != nil {
		return nil, err
	}
	if err := p.consume(n, identifier); err != nil {
		return nil, err
	}
	if err := p.consume(n, symbol("{")); err != nil {
		return nil, err
	}
	for p.current().Is(token.Keyword, "static", "field") {
		if err := p.child(n, p.parseClassVarDec); err != nil {
			return nil, err
		}
	}
	for p.current().Is(token.Keyword, "constructor", "function", "method") {
		if err := p.child(n, p.parseSubroutineDec); err != nil {
			return nil, err
		}
	}
	if err := p.consume(n, symbol("}")); err != nil {
		return nil, err
	}
	return n, nil
}

// ('static' | 'field') type varName (',' varName)* ';'
func (p *parser) parseClassVarDec() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.ClassVarDec)
	if err := p.consume(n, keyword("static", "field")); err != nil {
		return nil, err
	}
	if err := p.varNames(n); err != nil {
		return nil, err
	}
	return n, nil
}

// type varName (',' varName)* ';' as shared by classVarDec and varDec.
func (p *parser) varNames(n *ast.CompositeNode) error {
	if err := p.consume(n, typeName...); err != nil {
		return err
	}
	if err := p.consume(n, identifier); err != nil {
		return err
	}
	for p.current().Is(token.Symbol, ",") {
		if err := p.consume(n, symbol(",")); err != nil {
			return err
		}
		if err := p.consume(n, identifier); err != nil {
			return err
		}
	}
	return p.consume(n, symbol(";"))
}

// ('constructor' | 'function' | 'method') ('void' | type) subroutineName
// '(' parameterList ')' subroutineBody
func (p *parser) parseSubroutineDec() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.SubroutineDec)
	if err := p.consume(n, keyword("constructor", "function", "method")); err != nil {
		return nil, err
	}
	if err := p.consume(n, returnType...); err != nil {
		return nil, err
	}
	if err := p.consume(n, identifier); err != nil {
		return nil, err
	}
	if err := p.consume(n, symbol("(")); err != nil {
		return nil, err
	}
	if err := p.child(n, p.parseParameterList); err != nil {
		return nil, err
	}
	if err := p.consume(n, symbol(")")); err != nil {
		return nil, err
	}
	if err := p.child(n, p.parseSubroutineBody); err != nil {
		return nil, err
	}
	return n, nil
}

// ((type varName) (',' type varName)*)?
func (p *parser) parseParameterList() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.ParameterList)
	if p.current().Is(token.Symbol, ")") {
		return n, nil
	}
	for {
		if err := p.consume(n, typeName...); err != nil {
			return nil, err
		}
		if err := p.consume(n, identifier); err != nil {
			return nil, err
		}
		if !p.current().Is(token.Symbol, ",") {
			return n, nil
		}
		if err := p.consume(n, symbol(",")); err != nil {
			return nil, err
		}
	}
}

// '{' varDec* statements '}'
func (p *parser) parseSubroutineBody() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.SubroutineBody)
	if err := p.consume(n, symbol("{")); err != nil {
		return nil, err
	}
	for p.current().Is(token.Keyword, "var") {
		if err := p.child(n, p.parseVarDec); err != nil {
			return nil, err
		}
	}
	if err := p.child(n, p.parseStatements); err != nil {
		return nil, err
	}
	if err := p.consume(n, symbol("}")); err != nil {
		return nil, err
	}
	return n, nil
}

// 'var' type varName (',' varName)* ';'
func (p *parser) parseVarDec() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.VarDec)
	if err := p.consume(n, keyword("var")); err != nil {
		return nil, err
	}
	if err := p.varNames(n); err != nil {
		return nil, err
	}
	return n, nil
}

// statement*, where the leading keyword selects the statement.
func (p *parser) parseStatements() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.Statements)
	for {
		tok := p.current()
		if tok.Kind != token.Keyword {
			return n, nil
		}
		var rule func() (*ast.CompositeNode, error)
		switch tok.Lexeme {
		case "let":
			rule = p.parseLet
		case "if":
			rule = p.parseIf
		case "while":
			rule = p.parseWhile
		case "do":
			rule = p.parseDo
		case "return":
			rule = p.parseReturn
		default:
			return n, nil
		}
		if err := p.child(n, rule); err != nil {
			return nil, err
		}
	}
}

// 'let' varName ('[' expression ']')? '=' expression ';'
func (p *parser) parseLet() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.LetStatement)
	if err := p.consume(n, keyword("let")); err != nil {
		return nil, err
	}
	if err := p.consume(n, identifier); err != nil {
		return nil, err
	}
	if p.current().Is(token.Symbol, "[") {
		if err := p.index(n); err != nil {
			return nil, err
		}
	}
	if err := p.consume(n, symbol("=")); err != nil {
		return nil, err
	}
	if err := p.child(n, p.parseExpression); err != nil {
		return nil, err
	}
	if err := p.consume(n, symbol(";")); err != nil {
		return nil, err
	}
	return n, nil
}

// 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
func (p *parser) parseIf() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.IfStatement)
	if err := p.consume(n, keyword("if")); err != nil {
		return nil, err
	}
	if err := p.condition(n); err != nil {
		return nil, err
	}
	if err := p.block(n); err != nil {
		return nil, err
	}
	if p.current().Is(token.Keyword, "else") {
		if err := p.consume(n, keyword("else")); err != nil {
			return nil, err
		}
		if err := p.block(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// 'while' '(' expression ')' '{' statements '}'
func (p *parser) parseWhile() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.WhileStatement)
	if err := p.consume(n, keyword("while")); err != nil {
		return nil, err
	}
	if err := p.condition(n); err != nil {
		return nil, err
	}
	if err := p.block(n); err != nil {
		return nil, err
	}
	return n, nil
}

// 'do' subroutineCall ';'
//
// The call is wrapped in a term, the same node an expression would give it.
func (p *parser) parseDo() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.DoStatement)
	if err := p.consume(n, keyword("do")); err != nil {
		return nil, err
	}
	if err := p.child(n, p.parseCallTerm); err != nil {
		return nil, err
	}
	if err := p.consume(n, symbol(";")); err != nil {
		return nil, err
	}
	return n, nil
}

// A term that may only be a subroutineCall.
func (p *parser) parseCallTerm() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.Term)
	if tok, next := p.current(), p.peek(1); tok.Kind == token.Identifier && !next.Is(token.Symbol, ".", "(") {
		return nil, p.unexpected(next, symbol("(", "."))
	}
	if err := p.subroutineCall(n); err != nil {
		return nil, err
	}
	return n, nil
}

// 'return' expression? ';'
func (p *parser) parseReturn() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.ReturnStatement)
	if err := p.consume(n, keyword("return")); err != nil {
		return nil, err
	}
	if !p.current().Is(token.Symbol, ";") {
		if err := p.child(n, p.parseExpression); err != nil {
			return nil, err
		}
	}
	if err := p.consume(n, symbol(";")); err != nil {
		return nil, err
	}
	return n, nil
}

// '(' expression ')'
func (p *parser) condition(n *ast.CompositeNode) error {
	if err := p.consume(n, symbol("(")); err != nil {
		return err
	}
	if err := p.child(n, p.parseExpression); err != nil {
		return err
	}
	return p.consume(n, symbol(")"))
}

// '{' statements '}'
func (p *parser) block(n *ast.CompositeNode) error {
	if err := p.consume(n, symbol("{")); err != nil {
		return err
	}
	if err := p.child(n, p.parseStatements); err != nil {
		return err
	}
	return p.consume(n, symbol("}"))
}

// '[' expression ']'
func (p *parser) index(n *ast.CompositeNode) error {
	if err := p.consume(n, symbol("[")); err != nil {
		return err
	}
	if err := p.child(n, p.parseExpression); err != nil {
		return err
	}
	return p.consume(n, symbol("]"))
}

// term (op term)*
//
// Operators are left-associative and all share one precedence.
func (p *parser) parseExpression() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.Expression)
	if err := p.child(n, p.parseTerm); err != nil {
		return nil, err
	}
	for token.IsBinaryOperator(p.current()) {
		if err := p.consume(n, binaryOp); err != nil {
			return nil, err
		}
		if err := p.child(n, p.parseTerm); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// integerConstant | stringConstant | keywordConstant | varName |
// varName '[' expression ']' | subroutineCall | '(' expression ')' |
// unaryOp term
//
// Only identifier-led terms need to look past the current token, and one
// token is always enough: '[' selects an array access, '(' or '.' a
// subroutine call, and anything else a plain variable.
func (p *parser) parseTerm() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.Term)
	tok := p.current()
	var err error
	switch tok.Kind {
	case token.IntegerConstant, token.StringConstant:
		err = p.consume(n, literal)
	case token.Keyword:
		if !token.IsKeywordConstant(tok) {
			return nil, p.invalidTerm(tok)
		}
		err = p.consume(n, keyword("true", "false", "null", "this"))
	case token.Symbol:
		switch {
		case token.IsUnaryOperator(tok):
			if err = p.consume(n, unaryOp); err == nil {
				err = p.child(n, p.parseTerm)
			}
		case tok.Lexeme == "(":
			if err = p.consume(n, symbol("(")); err == nil {
				if err = p.child(n, p.parseExpression); err == nil {
					err = p.consume(n, symbol(")"))
				}
			}
		default:
			return nil, p.invalidTerm(tok)
		}
	case token.Identifier:
		next := p.peek(1)
		switch {
		case next.Is(token.Symbol, "["):
			if err = p.consume(n, identifier); err == nil {
				err = p.index(n)
			}
		case next.Is(token.Symbol, ".", "("):
			err = p.subroutineCall(n)
		default:
			err = p.consume(n, identifier)
		}
	default:
		return nil, p.invalidTerm(tok)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// subroutineName '(' expressionList ')' |
// (className | varName) '.' subroutineName '(' expressionList ')'
func (p *parser) subroutineCall(n *ast.CompositeNode) error {
	if err := p.consume(n, identifier); err != nil {
		return err
	}
	if p.current().Is(token.Symbol, ".") {
		if err := p.consume(n, symbol(".")); err != nil {
			return err
		}
		if err := p.consume(n, identifier); err != nil {
			return err
		}
	}
	if err := p.consume(n, symbol("(")); err != nil {
		return err
	}
	if err := p.child(n, p.parseExpressionList); err != nil {
		return err
	}
	return p.consume(n, symbol(")"))
}

// (expression (',' expression)*)?
func (p *parser) parseExpressionList() (*ast.CompositeNode, error) {
	n := ast.NewCompositeNode(ast.ExpressionList)
	if p.current().Is(token.Symbol, ")") {
		return n, nil
	}
	if err := p.child(n, p.parseExpression); err != nil {
		return nil, err
	}
	for p.current().Is(token.Symbol, ",") {
		if err := p.consume(n, symbol(",")); err != nil {
			return nil, err
		}
		if err := p.child(n, p.parseExpression); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *parser) invalidTerm(tok token.Token) error {
	return p.fail(tok, &reporter.SyntaxError{
		Reason: "invalid term",
		Found:  tok.String(),
		EOF:    tok.IsZero(),
	})
}
