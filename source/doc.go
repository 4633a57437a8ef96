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

// Package source provides position information for Jack source units.
//
// A [File] holds the full contents of one source unit along with the
// offsets at which each line begins. The lexer records line starts as it
// scans, which allows tokens to carry only a byte offset until a
// human-readable [Pos] is needed for a diagnostic.
package source
