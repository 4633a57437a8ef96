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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jackcompile/parser"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Main.xml", OutputPath("Main.jack"))
	assert.Equal(t, filepath.Join("src", "Main.xml"), OutputPath(filepath.Join("src", "Main.jack")))
	assert.Equal(t, "Main.xml", OutputPath("Main"))
}

type closeRecorder struct {
	strings.Builder
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestXMLSink(t *testing.T) {
	t.Parallel()

	root, err := parser.Parse("Empty.jack", strings.NewReader("class Empty { }"), nil)
	require.NoError(t, err)
	file := &File{path: "Empty.jack", ast: root}

	out := &closeRecorder{}
	var opened string
	sink := &XMLSink{Open: func(path string) (io.WriteCloser, error) {
		opened = path
		return out, nil
	}}
	require.NoError(t, sink.Accept(t.Context(), file))
	assert.Equal(t, "Empty.xml", opened)
	assert.True(t, out.closed)
	assert.Equal(t, "<class>\n  <keyword> class </keyword>\n  <identifier> Empty </identifier>\n  <symbol> { </symbol>\n  <symbol> } </symbol>\n</class>\n", out.String())

	// close errors are reported
	boom := errors.New("close failed")
	sink.Open = func(string) (io.WriteCloser, error) {
		return &closeRecorder{closeErr: boom}, nil
	}
	assert.ErrorIs(t, sink.Accept(t.Context(), file), boom)

	// open errors are reported
	sink.Open = func(string) (io.WriteCloser, error) {
		return nil, boom
	}
	assert.ErrorIs(t, sink.Accept(t.Context(), file), boom)

	// nothing is opened once the context is done
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	opened = ""
	sink.Open = func(path string) (io.WriteCloser, error) {
		opened = path
		return &closeRecorder{}, nil
	}
	assert.ErrorIs(t, sink.Accept(ctx, file), context.Canceled)
	assert.Empty(t, opened)
}
