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
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/jackcompile/ast"
	"github.com/bufbuild/jackcompile/parser"
	"github.com/bufbuild/jackcompile/reporter"
	"github.com/bufbuild/jackcompile/token"
)

// Compiler handles compilation tasks, to turn Jack source units, or other
// intermediate representations, into parse trees.
//
// The process for each source unit involves two steps:
//  1. Lexing the source into a token stream.
//  2. Parsing the token stream into a tree.
//
// Each finished tree is then handed to the Sink, if one is configured.
type Compiler struct {
	// Resolves paths into source code or intermediate representations for
	// Jack source units. This field is the only required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the compilation after encountering any
	// errors and ignores all warnings. Warnings may be reported from several
	// goroutines at once.
	Reporter reporter.Reporter
	// Receives every successfully parsed unit, as soon as it is parsed. Units
	// that fail never reach the sink. Optional.
	Sink Sink
	// Options for the parser, such as the nesting limit.
	ParserOptions parser.Options
}

// Compile parses the source units at the given paths. The compiler's
// resolver is used to locate source code (or intermediate artifacts such as
// token streams or trees) and then do what is necessary to produce a tree.
//
// Units are processed concurrently. The returned files are in the order of
// paths; a path given more than once is processed once and appears once for
// each time it was given.
//
// If any unit fails, Compile returns a nil result and an error: the first
// error the reporter returned, or reporter.ErrInvalidSource if the reporter
// swallowed every error. A reporter that swallows errors lets every other
// unit finish, and each of those still reaches the sink.
func (c *Compiler) Compile(ctx context.Context, paths ...string) (Files, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	h := reporter.NewHandler(c.Reporter)

	e := executor{
		c:       c,
		h:       h,
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, p := range paths {
		results[i] = e.compile(ctx, p)
	}

	files := make(Files, len(paths))
	var firstErr error
	for i, r := range results {
		select {
		case <-r.ready:
		case <-parent.Done():
			return nil, parent.Err()
		}
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		files[i] = r.res
	}
	if err := h.Error(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return files, nil
}

type result struct {
	ready chan struct{}
	res   *File
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(f *File) {
	r.res = f
	close(r.ready)
}

type executor struct {
	c      *Compiler
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) compile(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[path] = r
	go func() {
		e.doCompile(ctx, path, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	file, err := e.asFile(path)
	if err == nil && e.c.Sink != nil {
		if sinkErr := e.c.Sink.Accept(ctx, file); sinkErr != nil {
			err = e.h.HandleError(fmt.Errorf("sink for %q: %w", path, sinkErr))
		}
	}
	if err != nil {
		// A reporter that returned an error (as opposed to swallowing it)
		// means the whole compilation is over.
		if e.h.ReporterError() != nil {
			e.cancel()
		}
		r.fail(err)
		return
	}
	r.complete(file)
}

func (e *executor) asFile(path string) (*File, error) {
	sr, err := e.c.Resolver.FindFileByPath(path)
	if err != nil {
		return nil, e.h.HandleError(fmt.Errorf("resolving %q: %w", path, err))
	}
	defer func() {
		// if results included a source, don't leave it open if it can be closed
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	root, err := e.asAST(path, sr)
	if err != nil {
		return nil, err
	}
	return &File{path: path, ast: root}, nil
}

func (e *executor) asAST(path string, sr SearchResult) (*ast.CompositeNode, error) {
	switch {
	case sr.AST != nil:
		if name := sr.AST.Start().Filename; name != path {
			return nil, e.h.HandleError(fmt.Errorf("search result for %q returned tree for %q", path, name))
		}
		if sr.AST.Tag != ast.Class {
			return nil, e.h.HandleError(fmt.Errorf("search result for %q returned tree rooted at %v", path, sr.AST.Tag))
		}
		return sr.AST, nil
	case sr.Tokens != nil:
		if tok, ok := sr.Tokens.At(0); ok && tok.Pos.Filename != path {
			return nil, e.h.HandleError(fmt.Errorf("search result for %q returned tokens for %q", path, tok.Pos.Filename))
		}
		return e.c.ParserOptions.ParseTokens(path, sr.Tokens, e.h)
	case sr.Source != nil:
		return e.c.ParserOptions.Parse(path, sr.Source, e.h)
	default:
		return nil, e.h.HandleError(fmt.Errorf("search result for %q is empty", path))
	}
}

// File is the result of compiling one source unit.
type File struct {
	path string
	ast  *ast.CompositeNode
}

// Path returns the path the unit was compiled from.
func (f *File) Path() string {
	return f.path
}

// AST returns the unit's parse tree, rooted at a node tagged ast.Class.
func (f *File) AST() *ast.CompositeNode {
	return f.ast
}

// Tokens returns the unit's tokens, in source order.
func (f *File) Tokens() token.Stream {
	return f.ast.Tokens()
}

// Files is the result of a Compile, in the order the paths were given.
type Files []*File

// FindFileByPath returns the file with the given path, or nil if there is
// none.
func (f Files) FindFileByPath(path string) *File {
	for _, file := range f {
		if file.Path() == path {
			return file
		}
	}
	return nil
}
