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
	"errors"

	"github.com/bufbuild/jackcompile/reporter"
)

// ErrEmptySource is a sentinel error that may be passed to a warning
// reporter. The warning the reporter receives will be wrapped with the
// position of the source unit that contained no tokens.
var ErrEmptySource = errors.New("source unit contains no tokens")

// handle passes err to h and returns the error the caller should fail with:
// whatever the reporter returned, or ErrInvalidSource if it swallowed err.
func handle(h *reporter.Handler, err reporter.ErrorWithPos) error {
	if rerr := h.HandleError(err); rerr != nil {
		return rerr
	}
	return reporter.ErrInvalidSource
}
