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

package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the column multiple that a tab advances to.
const TabstopWidth = 8

// File contains the contents of a source unit and the offsets at which its
// lines begin. A lexer accumulates line offsets as it scans the contents.
type File struct {
	// The name of the source unit.
	name string
	// The raw contents.
	data []byte
	// The zero-based byte offset of each line, indexed by line number minus
	// one. The first line always starts at offset zero.
	lines []int
}

// NewFile creates a new File for the given contents. No line information is
// known beyond the first line until AddLine is called.
func NewFile(name string, contents []byte) *File {
	return &File{
		name:  name,
		data:  contents,
		lines: []int{0},
	}
}

// Name returns the name of the source unit.
func (f *File) Name() string {
	return f.name
}

// Text returns the contents of the source unit.
func (f *File) Text() string {
	return string(f.data)
}

// Len returns the size of the contents in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// LineCount returns the number of lines observed so far.
func (f *File) LineCount() int {
	return len(f.lines)
}

// AddLine adds the offset representing the beginning of the "next" line. The
// first line always starts at offset 0, the second starts at
// offset-of-newline+1, and so on.
func (f *File) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is greater than file size %d", offset, len(f.data)))
	}
	if last := f.lines[len(f.lines)-1]; offset <= last {
		panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, last))
	}
	f.lines = append(f.lines, offset)
}

// Pos converts a byte offset into a position.
//
// The column is the display width of the text preceding offset on its line,
// plus one. Wide runes count as two cells, combining sequences as one, and
// tabs advance to the next multiple of TabstopWidth.
func (f *File) Pos(offset int) Pos {
	if offset < 0 || offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is outside of file of size %d", offset, len(f.data)))
	}
	line := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})
	prefix := string(f.data[f.lines[line-1]:offset])

	col := 0
	for {
		chunk, rest, tab := strings.Cut(prefix, "\t")
		col += uniseg.StringWidth(chunk)
		if !tab {
			break
		}
		col += TabstopWidth - col%TabstopWidth
		prefix = rest
	}

	return Pos{
		Filename: f.name,
		Offset:   offset,
		Line:     line,
		Col:      col + 1,
	}
}
