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

package dynpb_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"buf.build/go/dynpb"
)

func TestTextFromBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		ok    bool
	}{
		{"empty", nil, true},
		{"ascii", []byte("hello"), true},
		{"multibyte", []byte("héllo, 世界"), true},
		{"lone continuation", []byte{0xFF}, false},
		{"truncated rune", []byte("héllo")[:2], false},
		{"overlong", []byte{0xC0, 0x80}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := dynpb.TextFromBytes(tt.input)
			if !tt.ok {
				var terr *dynpb.TextError
				require.ErrorAs(t, err, &terr)
				require.ErrorIs(t, err, dynpb.ErrInvalidUTF8)
				return
			}
			require.NoError(t, err)
			require.Equal(t, string(tt.input), text.String())
			require.Equal(t, len(tt.input), text.Len())
		})
	}
}

func TestTextErrorOffset(t *testing.T) {
	t.Parallel()

	_, err := dynpb.TextFromBytes([]byte{'a', 'b', 0xFF, 'c'})
	var terr *dynpb.TextError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, 2, terr.Offset())
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "héllo", "世界", "\x00x"} {
		require.Equal(t, s, dynpb.TextFromString(s).String())
	}
}

func TestTextByteSlice(t *testing.T) {
	t.Parallel()

	text := dynpb.TextFromString("héllo")

	// h is one byte, é is two.
	unchecked := text.ByteSlice(0, 3)
	checked, err := text.CheckedByteSlice(0, 3)
	require.NoError(t, err)
	require.Equal(t, "hé", unchecked.String())
	require.Equal(t, unchecked.String(), checked.String())

	// Splitting é is caught only by the checked variant.
	_, err = text.CheckedByteSlice(0, 2)
	require.ErrorIs(t, err, dynpb.ErrInvalidUTF8)
}

func TestTextClear(t *testing.T) {
	t.Parallel()

	text := dynpb.TextFromString("hello")
	view := text.ByteSlice(0, 5)

	text.Clear()
	require.True(t, text.IsEmpty())
	require.Zero(t, text.Len())

	// Clearing one view must not disturb bytes another view still reads.
	require.Equal(t, "hello", view.String())
}

func TestTextUnchecked(t *testing.T) {
	t.Parallel()

	// The unchecked constructor accepts [0xFF] without complaint; reading
	// such a view as text is undefined, so this test asserts nothing about
	// its content. The checked constructor is the one that rejects it.
	_ = dynpb.TextFromBytesUnchecked([]byte{0xFF})
	_, err := dynpb.TextFromBytes([]byte{0xFF})
	require.ErrorIs(t, err, dynpb.ErrInvalidUTF8)
}

func TestTextCompare(t *testing.T) {
	t.Parallel()

	a := dynpb.TextFromString("a")
	b := dynpb.TextFromString("b")
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(dynpb.TextFromString("a")))
	require.True(t, a.Equal(dynpb.TextFromString("a")))
	require.False(t, a.Equal(b))
}

func TestTextFormat(t *testing.T) {
	t.Parallel()

	text := dynpb.TextFromString("test")
	require.Equal(t, fmt.Sprintf("%s", "test"), fmt.Sprintf("%s", text))
	require.Equal(t, fmt.Sprintf("%q", "test"), fmt.Sprintf("%q", text))
}
