// Copyright 2025 Buf Technologies, Inc.
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

package dynpb

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is the sentinel wrapped by every [TextError].
var ErrInvalidUTF8 = errors.New("invalid UTF-8 in string")

// TextError is the error returned by the validating [Text] constructors,
// [TextFromBytes] and [Text.CheckedByteSlice].
type TextError struct {
	offset int
}

// Offset returns the byte offset of the first invalid UTF-8 sequence.
func (e *TextError) Offset() int {
	return e.offset
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *TextError) Unwrap() error {
	return ErrInvalidUTF8
}

// Error implements [error].
func (e *TextError) Error() string {
	return fmt.Sprintf("dynpb: invalid UTF-8 at offset %d/%#x", e.offset, e.offset)
}
