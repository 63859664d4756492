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
	"fmt"
	"strings"
	"unicode/utf8"

	"buf.build/go/dynpb/internal/xunsafe"
)

// Text is an immutable view of a byte buffer that is guaranteed to contain
// valid UTF-8.
//
// The invariant is established once, at construction, and never re-checked:
// either by the O(n) scan in [TextFromBytes], or by the caller's attestation
// in [TextFromBytesUnchecked]. Every text-level read (such as [Text.String])
// relies on it.
//
// The underlying bytes may be shared by any number of views; sub-slicing
// with [Text.ByteSlice] does not copy. No operation on Text mutates shared
// bytes: [Text.Clear] replaces the view's own handle with an empty one.
// A Text is therefore safe to share across concurrent readers.
//
// The zero value is an empty view.
type Text struct {
	raw []byte
}

// NewText returns an empty view. It does not allocate.
func NewText() Text {
	return Text{}
}

// TextFromBytes validates that b is valid UTF-8 and wraps it.
//
// On failure the returned [*TextError] reports the offset of the first
// invalid sequence, and nothing is consumed.
//
// The view aliases b; the caller must not mutate b afterwards.
func TextFromBytes(b []byte) (Text, error) {
	if i := invalidUTF8(b); i >= 0 {
		return Text{}, &TextError{offset: i}
	}
	return Text{raw: b}, nil
}

// TextFromBytesUnchecked wraps b without validating it.
//
// The caller attests that b is valid UTF-8; skipping the scan is the whole
// point. This is the hot path for data already proven valid, such as
// re-slicing an already-validated view. If the attestation is violated,
// every consumer that treats the content as text misbehaves in unspecified
// ways; use [TextFromBytes] for untrusted input.
func TextFromBytesUnchecked(b []byte) Text {
	return Text{raw: b}
}

// TextFromString wraps the contents of s, sharing its storage.
func TextFromString(s string) Text {
	// Strings are immutable, so the invariant cannot be violated through the
	// original; no copy is needed.
	return Text{raw: xunsafe.StringToSlice(s)}
}

// Len returns the length of the view in bytes.
func (t Text) Len() int {
	return len(t.raw)
}

// IsEmpty reports whether the view is empty.
func (t Text) IsEmpty() bool {
	return len(t.raw) == 0
}

// Clear resets this view to empty. Bytes shared with other views are
// untouched.
func (t *Text) Clear() {
	t.raw = nil
}

// Bytes returns the underlying bytes. The caller must not mutate them.
func (t Text) Bytes() []byte {
	return t.raw
}

// ByteSlice returns the zero-copy sub-view t[i:j].
//
// The range is not re-validated: the caller must guarantee that both bounds
// lie on character boundaries, otherwise the result is a view whose
// text-level reads are garbage. Use [Text.CheckedByteSlice] when the bounds
// are not known to be aligned.
//
// Panics if the range is out of bounds, matching slice semantics.
func (t Text) ByteSlice(i, j int) Text {
	return Text{raw: t.raw[i:j]}
}

// CheckedByteSlice is like [Text.ByteSlice], but re-validates the sub-view
// and fails with a [*TextError] if the range split a multi-byte character.
//
// Panics if the range is out of bounds, matching slice semantics.
func (t Text) CheckedByteSlice(i, j int) (Text, error) {
	return TextFromBytes(t.raw[i:j])
}

// String returns the text content of the view.
//
// The conversion does not copy or validate; it is sound only because of the
// type's invariant.
//
// String implements [fmt.Stringer].
func (t Text) String() string {
	return xunsafe.SliceToString(t.raw)
}

// Equal reports whether two views have the same content.
func (t Text) Equal(u Text) bool {
	return t.String() == u.String()
}

// Compare compares the content of two views lexicographically, with the
// usual -1/0/+1 result.
func (t Text) Compare(u Text) int {
	return strings.Compare(t.String(), u.String())
}

// Format implements [fmt.Formatter].
func (t Text) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), t.String())
}

// invalidUTF8 returns the offset of the first invalid UTF-8 sequence in b,
// or -1 if b is valid.
func invalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}

	// Slow path only on failure: walk to the offending sequence.
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return -1
}
