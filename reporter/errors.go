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

package reporter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/jackcompile/source"
)

// ErrInvalidSource is a sentinel error that is returned by compilation in the
// event that lexical or syntax errors are encountered, but the configured
// ErrorReporter always returns nil.
var ErrInvalidSource = errors.New("parse failed: invalid Jack source")

// ErrUnexpectedEOF is wrapped by a SyntaxError when the input ends in the
// middle of a grammar rule.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrorWithPos is an error about a Jack source unit that includes information
// about the location in the unit that caused the error.
//
// The value of Error() will contain both the position and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Pos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and position.
func Error(pos source.Pos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos source.Pos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        source.Pos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface.
func (e errorWithSourcePos) GetPosition() source.Pos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}

// LexicalError is reported when some input matches no token rule, including
// a string constant that is never closed.
type LexicalError struct {
	// The offending character. Zero when the input ended instead.
	Char rune
	// What went wrong, such as "unexpected character".
	Reason string
}

func (e *LexicalError) Error() string {
	if e.Char == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s %q", e.Reason, e.Char)
}

// SyntaxError is reported when the token at the cursor is not one the
// grammar admits at that point.
type SyntaxError struct {
	// Optional context for the failure, such as "invalid term".
	Reason string
	// Descriptions of what would have been accepted, such as `symbol "}"`.
	Expected []string
	// Description of the token that was found instead.
	Found string
	// Set when the input ended; unwraps to ErrUnexpectedEOF.
	EOF bool
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString("syntax error: ")
	if e.Reason != "" {
		sb.WriteString(e.Reason)
		sb.WriteString(": ")
	}
	sb.WriteString("unexpected ")
	sb.WriteString(e.Found)
	if len(e.Expected) > 0 {
		sb.WriteString(", expecting ")
		sb.WriteString(strings.Join(e.Expected, " or "))
	}
	return sb.String()
}

// Unwrap returns ErrUnexpectedEOF if the input ended mid-rule.
func (e *SyntaxError) Unwrap() error {
	if e.EOF {
		return ErrUnexpectedEOF
	}
	return nil
}
