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

import "fmt"

// Pos identifies a location in a source unit. Line and Col are 1-based.
// A Pos with a non-positive line or column is "unknown" and renders as just
// the file name.
type Pos struct {
	Filename  string
	Line, Col int
	Offset    int
}

// UnknownPos returns a position for the given file that carries no line or
// column information.
func UnknownPos(filename string) Pos {
	return Pos{Filename: filename}
}

// IsKnown reports whether pos carries line and column information.
func (pos Pos) IsKnown() bool {
	return pos.Line > 0 && pos.Col > 0
}

func (pos Pos) String() string {
	if !pos.IsKnown() {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}
