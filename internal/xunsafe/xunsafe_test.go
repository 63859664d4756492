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

package xunsafe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"buf.build/go/dynpb/internal/xunsafe"
)

func TestSliceToString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", xunsafe.SliceToString(nil))
	require.Equal(t, "", xunsafe.SliceToString([]byte{}))
	require.Equal(t, "abc", xunsafe.SliceToString([]byte("abc")))
}

func TestStringToSlice(t *testing.T) {
	t.Parallel()

	require.Nil(t, xunsafe.StringToSlice(""))
	require.Equal(t, []byte("abc"), xunsafe.StringToSlice("abc"))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	s := "round trip"
	require.Equal(t, s, xunsafe.SliceToString(xunsafe.StringToSlice(s)))
}
