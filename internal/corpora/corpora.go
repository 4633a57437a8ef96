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

// Package corpora runs golden-file tests: each source unit under a testdata
// directory is one test case, and the files next to it named after it hold
// the outputs the case is expected to produce.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// RefreshEnv is the environment variable that puts a corpus into refresh
// mode. Its value is a glob; matching test cases have their golden files
// rewritten from the actual outputs instead of compared against them.
//
//	JACKCOMPILE_REFRESH='**' go test ./parser
const RefreshEnv = "JACKCOMPILE_REFRESH"

// Corpus is a table-driven test whose table lives in the file system.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// The environment variable consulted for refresh mode. Defaults to
	// RefreshEnv.
	Refresh string

	// The file extension (without a dot) of files that define a test case,
	// e.g. "jack".
	Extension string

	// The outputs each case produces. A missing golden file is the same as
	// an empty one, and refreshing an empty output deletes its file.
	Outputs []Output

	// Test runs one case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one product of a test case.
type Output struct {
	// The suffix added to the case's file name to find the golden file; for
	// "Main.jack" and "xml" that is "Main.jack.xml".
	Extension string

	// Compares actual and golden output. Nil means byte-for-byte.
	Compare Compare
}

// Compare returns the empty string if got matches want, and otherwise a
// message describing the difference.
type Compare func(got, want string) string

// Run executes every case under c.Root as a subtest.
func (c Corpus) Run(t *testing.T) {
	t.Helper()
	_, caller, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatal("corpora: cannot locate the calling test file; the binary may be stripped")
	}
	root := filepath.Join(filepath.Dir(caller), c.Root)

	cases, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: listing %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	envVar := c.Refresh
	if envVar == "" {
		envVar = RefreshEnv
	}
	refresh := os.Getenv(envVar)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", envVar, refresh)
		}
		t.Logf("corpora: refreshing test data because %s=%s", envVar, refresh)
	}

	for _, name := range cases {
		path := filepath.Join(root, filepath.FromSlash(name))
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: loading %q: %v", path, err)
			}
			results := c.Test(t, name, string(data))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				golden := fmt.Sprint(path, ".", output.Extension)
				if rewrite {
					if err := write(golden, results[i]); err != nil {
						t.Errorf("corpora: refreshing %q: %v", golden, err)
					}
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: loading %q: %v", golden, err)
					continue
				}
				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", golden, diff)
				}
			}
		})
	}
}

func write(path, contents string) error {
	if contents == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize lines that were added or removed.
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}
