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

import "fmt"

// Tag names the grammar rule that produced a CompositeNode.
type Tag byte

const (
	Class Tag = iota + 1
	ClassVarDec
	SubroutineDec
	ParameterList
	SubroutineBody
	VarDec
	Statements
	LetStatement
	IfStatement
	WhileStatement
	DoStatement
	ReturnStatement
	Expression
	Term
	ExpressionList

	tagCount = iota + 1
)

var tagNames = [...]string{
	Class:           "class",
	ClassVarDec:     "classVarDec",
	SubroutineDec:   "subroutineDec",
	ParameterList:   "parameterList",
	SubroutineBody:  "subroutineBody",
	VarDec:          "varDec",
	Statements:      "statements",
	LetStatement:    "letStatement",
	IfStatement:     "ifStatement",
	WhileStatement:  "whileStatement",
	DoStatement:     "doStatement",
	ReturnStatement: "returnStatement",
	Expression:      "expression",
	Term:            "term",
	ExpressionList:  "expressionList",
}

// Tags returns every tag, in declaration order.
func Tags() []Tag {
	tags := make([]Tag, 0, tagCount-1)
	for t := Class; t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// IsValid returns whether t is one of the declared tags.
func (t Tag) IsValid() bool {
	return t > 0 && t < tagCount
}

// String returns the name used for the tag when serializing, such as
// "letStatement".
func (t Tag) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("ast.Tag(%d)", int(t))
	}
	return tagNames[t]
}
