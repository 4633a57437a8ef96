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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/jackcompile/reporter"
	"github.com/bufbuild/jackcompile/source"
	"github.com/bufbuild/jackcompile/token"
)

type runeReader struct {
	data []byte
	pos  int
	err  error
	mark int
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.err != nil {
		return 0, 0, rr.err
	}
	if rr.pos == len(rr.data) {
		rr.err = io.EOF
		return 0, 0, rr.err
	}
	r, sz := utf8.DecodeRune(rr.data[rr.pos:])
	if r == utf8.RuneError && sz <= 1 {
		rr.err = errInvalidUTF8
		return 0, 0, rr.err
	}
	rr.pos += sz
	return r, sz, nil
}

func (rr *runeReader) offset() int {
	return rr.pos
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return string(rr.data[rr.mark:rr.pos])
}

var errInvalidUTF8 = errors.New("invalid UTF-8 encoding")

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

type lexer struct {
	input   *runeReader
	file    *source.File
	handler *reporter.Handler

	// Set once the lexer has returned io.EOF or an error; every later call
	// to next repeats that result.
	done error
}

func newLexer(in io.Reader, filename string, handler *reporter.Handler) (*lexer, error) {
	br := bufio.NewReader(in)

	// if the unit has a UTF-8 byte order marker preface, consume it
	marker, err := br.Peek(3)
	if err == nil && bytes.Equal(marker, utf8Bom) {
		_, _ = br.Discard(3)
	}

	contents, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	l := &lexer{
		file:    source.NewFile(filename, contents),
		handler: handler,
	}
	l.input = &runeReader{data: stripComments(contents)}
	return l, nil
}

// stripComments returns a copy of data with every comment replaced by
// spaces. Newlines inside block comments are kept so that offsets and line
// numbers in the result match data exactly.
//
// Block comments are removed first and line comments second, and neither
// pass knows about string constants: comment markers inside quotes still
// start a comment. A line comment runs to the end of its line as it reads
// once block comments are gone, so a newline swallowed by a block comment
// does not end it. A "/*" with no closing "*/" is left for the scanner,
// which sees the symbols '/' and '*'.
func stripComments(data []byte) []byte {
	out := bytes.Clone(data)
	inBlock := make([]bool, len(data))
	for i := 0; i+1 < len(data); i++ {
		if data[i] != '/' || data[i+1] != '*' {
			continue
		}
		end := bytes.Index(data[i+2:], []byte("*/"))
		if end < 0 {
			break
		}
		end += i + 4
		for k := i; k < end; k++ {
			inBlock[k] = true
			if out[k] != '\n' {
				out[k] = ' '
			}
		}
		i = end - 1
	}

	for i := 0; i+1 < len(out); i++ {
		if out[i] != '/' || out[i+1] != '/' {
			continue
		}
		k := i
		for k < len(out) && (out[k] != '\n' || inBlock[k]) {
			if out[k] != '\n' {
				out[k] = ' '
			}
			k++
		}
		i = k
	}
	return out
}

// next returns the next token, or io.EOF once the input is exhausted. Any
// other error is a diagnostic that has already been passed to the handler.
func (l *lexer) next() (token.Token, error) {
	if l.done != nil {
		return token.Token{}, l.done
	}

	for {
		l.input.setMark()
		c, _, err := l.input.readRune()
		if err == io.EOF {
			l.done = io.EOF
			return token.Token{}, l.done
		} else if err != nil {
			l.done = l.fail(l.input.offset(), &reporter.LexicalError{Char: utf8.RuneError, Reason: err.Error()})
			return token.Token{}, l.done
		}

		if strings.ContainsRune("\n\r\t\f\v ", c) {
			if c == '\n' {
				l.file.AddLine(l.input.offset())
			}
			continue
		}

		switch {
		case c >= '0' && c <= '9':
			l.readWhile(isDigit)
			return l.integer(), nil

		case c == '"':
			tok, err := l.readString()
			if err != nil {
				l.done = err
				return token.Token{}, err
			}
			return tok, nil

		case c == '_' || isLetter(c):
			l.readWhile(func(r rune) bool { return r == '_' || isLetter(r) || isDigit(r) })
			lexeme := l.input.getMark()
			kind := token.Identifier
			// Reserved words are only recognized once the whole identifier
			// has been read, so "classy" stays an identifier.
			if token.IsKeyword(lexeme) {
				kind = token.Keyword
			}
			return l.newToken(kind, lexeme), nil

		case token.IsSymbol(c):
			return l.newToken(token.Symbol, string(c)), nil
		}

		l.done = l.fail(l.input.mark, &reporter.LexicalError{Char: c, Reason: "unexpected character"})
		return token.Token{}, l.done
	}
}

func (l *lexer) newToken(kind token.Kind, lexeme string) token.Token {
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    l.file.Pos(l.input.mark),
	}
}

func (l *lexer) integer() token.Token {
	tok := l.newToken(token.IntegerConstant, l.input.getMark())
	if v, err := strconv.ParseUint(tok.Lexeme, 10, 64); err != nil || v > token.MaxInt {
		l.handler.HandleWarningf(tok.Pos, "integer constant %s is out of range: must be between 0 and %d", tok.Lexeme, token.MaxInt)
	}
	return tok
}

func (l *lexer) readString() (token.Token, error) {
	for {
		c, sz, err := l.input.readRune()
		if err == io.EOF || c == '\n' {
			if c == '\n' {
				l.input.unreadRune(sz)
			}
			return token.Token{}, l.fail(l.input.mark, &reporter.LexicalError{Char: '"', Reason: "unterminated string constant"})
		} else if err != nil {
			return token.Token{}, l.fail(l.input.offset(), &reporter.LexicalError{Char: utf8.RuneError, Reason: err.Error()})
		}
		if c == '"' {
			break
		}
	}
	quoted := l.input.getMark()
	return l.newToken(token.StringConstant, quoted[1:len(quoted)-1]), nil
}

func (l *lexer) readWhile(accept func(rune) bool) {
	for {
		c, sz, err := l.input.readRune()
		if err != nil {
			// A bad rune here is reported when the scan resumes at it.
			l.input.err = nil
			return
		}
		if !accept(c) {
			l.input.unreadRune(sz)
			return
		}
	}
}

// fail reports a lexical error at offset and returns the error the lexer
// should stop with.
func (l *lexer) fail(offset int, err *reporter.LexicalError) error {
	return handle(l.handler, reporter.Error(l.file.Pos(offset), err))
}

// all returns a single-use sequence over the remaining tokens. The sequence
// ends after the last token or after yielding an error.
func (l *lexer) all() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Lex returns the tokens of the source unit read from r.
//
// The returned sequence is lazy and single-use: ranging over it a second
// time yields nothing. It stops after the first error, which is also
// passed to handler. A nil handler fails on the first error.
func Lex(filename string, r io.Reader, handler *reporter.Handler) iter.Seq2[token.Token, error] {
	l, err := newLexer(r, filename, handler)
	if err != nil {
		return func(yield func(token.Token, error) bool) {
			yield(token.Token{}, fmt.Errorf("reading %s: %w", filename, err))
		}
	}
	return l.all()
}

// Tokenize lexes the whole source unit read from r and returns its tokens.
func Tokenize(filename string, r io.Reader, handler *reporter.Handler) (token.Stream, error) {
	var toks token.Stream
	for tok, err := range Lex(filename, r, handler) {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
