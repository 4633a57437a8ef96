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

package jackcompile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/jackcompile/printer"
)

// Sink receives the units a Compiler parses successfully. Accept may be
// called from several goroutines at once. An error returned from Accept
// fails the compilation.
type Sink interface {
	Accept(ctx context.Context, file *File) error
}

// SinkFunc is a simple function type that implements Sink.
type SinkFunc func(context.Context, *File) error

var _ Sink = SinkFunc(nil)

// Accept implements Sink.
func (f SinkFunc) Accept(ctx context.Context, file *File) error {
	return f(ctx, file)
}

// XMLSink writes each unit's tree as XML, to a file named after the unit
// with its extension replaced by ".xml".
type XMLSink struct {
	// Optional function for creating the output named path. If nil,
	// os.Create is used.
	Open func(path string) (io.WriteCloser, error)
}

var _ Sink = (*XMLSink)(nil)

// OutputPath returns the path XMLSink writes the tree of the unit at path
// to: "src/Main.jack" becomes "src/Main.xml".
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".xml"
}

// Accept implements Sink.
func (s *XMLSink) Accept(ctx context.Context, file *File) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	open := s.Open
	if open == nil {
		open = func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		}
	}
	w, err := open(OutputPath(file.Path()))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()
	return printer.Print(w, file.AST())
}
