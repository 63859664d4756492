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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"buf.build/go/dynpb"
)

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	require.Equal(t, int32(-7), dynpb.ValueOfInt32(-7).Int32())
	require.Equal(t, int64(math.MinInt64), dynpb.ValueOfInt64(math.MinInt64).Int64())
	require.Equal(t, uint32(math.MaxUint32), dynpb.ValueOfUint32(math.MaxUint32).Uint32())
	require.Equal(t, uint64(math.MaxUint64), dynpb.ValueOfUint64(math.MaxUint64).Uint64())
	require.Equal(t, float32(1.5), dynpb.ValueOfFloat32(1.5).Float32())
	require.Equal(t, 2.5, dynpb.ValueOfFloat64(2.5).Float64())
	require.True(t, dynpb.ValueOfBool(true).Bool())
	require.Equal(t, "hi", dynpb.ValueOfString("hi").Text().String())
	require.Equal(t, []byte{1, 2}, dynpb.ValueOfBytes([]byte{1, 2}).Bytes())

	require.Equal(t, dynpb.KindInt32, dynpb.ValueOfInt32(-7).Kind())
	require.Equal(t, dynpb.Int32Type, dynpb.ValueOfInt32(-7).Type())
}

func TestValueAccessorPanics(t *testing.T) {
	t.Parallel()

	v := dynpb.ValueOfInt32(1)
	require.Panics(t, func() { v.Uint32() })
	require.Panics(t, func() { v.Text() })
	require.Panics(t, func() { dynpb.Value{}.Int32() })
}

func TestValueOwnsBytes(t *testing.T) {
	t.Parallel()

	src := []byte{1, 2, 3}
	v := dynpb.ValueOfBytes(src)
	src[0] = 9
	require.Equal(t, []byte{1, 2, 3}, v.Bytes())

	// A Ref, by contrast, aliases its source.
	r := dynpb.RefOfBytes(src)
	src[1] = 9
	require.Equal(t, []byte{9, 9, 3}, r.Bytes())
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	// Different kinds are unequal, never an error, even when the bit
	// patterns coincide.
	require.False(t, dynpb.ValueOfInt32(1).Equal(dynpb.ValueOfUint32(1)))
	require.False(t, dynpb.ValueOfInt32(1).Equal(dynpb.ValueOfInt64(1)))
	require.False(t, dynpb.ValueOfString("1").Equal(dynpb.ValueOfBytes([]byte("1"))))

	require.True(t, dynpb.ValueOfInt32(-1).Equal(dynpb.ValueOfInt32(-1)))
	require.True(t, dynpb.ValueOfString("x").Equal(dynpb.ValueOfString("x")))
	require.True(t, dynpb.ValueOfBytes([]byte{1}).Equal(dynpb.ValueOfBytes([]byte{1})))

	// Floats compare by value.
	nan := dynpb.ValueOfFloat64(math.NaN())
	require.False(t, nan.Equal(nan))
	require.True(t, dynpb.ValueOfFloat64(0.0).Equal(dynpb.ValueOfFloat64(math.Copysign(0, -1))))
}

func TestValueEqualMessages(t *testing.T) {
	t.Parallel()

	md := (&descriptorpb.FileDescriptorProto{}).ProtoReflect().Descriptor()
	m1 := dynpb.ValueOfMessage(dynamicpb.NewMessage(md))
	m2 := dynpb.ValueOfMessage(dynamicpb.NewMessage(md))
	require.True(t, m1.Equal(m2))
	require.Equal(t, dynpb.MessageType(md), m1.Type())
}

func TestValueAsRef(t *testing.T) {
	t.Parallel()

	v := dynpb.ValueOfString("borrowed")
	r := v.AsRef()
	require.Equal(t, dynpb.KindString, r.Kind())
	require.Equal(t, "borrowed", r.Text().String())
	require.True(t, r.Equal(dynpb.RefOfString("borrowed")))

	// Round trip back to an owned value.
	require.True(t, r.ToValue().Equal(v))
}

func TestValueMapKey(t *testing.T) {
	t.Parallel()

	for _, v := range []dynpb.Value{
		dynpb.ValueOfInt32(1),
		dynpb.ValueOfInt64(1),
		dynpb.ValueOfUint32(1),
		dynpb.ValueOfUint64(1),
		dynpb.ValueOfBool(true),
		dynpb.ValueOfString("k"),
	} {
		k, err := v.MapKey()
		require.NoError(t, err, "%v", v.Kind())
		require.Equal(t, v.Kind(), k.Kind())
		require.True(t, k.AsRef().Equal(v.AsRef()))
	}

	md := (&descriptorpb.FileDescriptorProto{}).ProtoReflect().Descriptor()
	for _, v := range []dynpb.Value{
		dynpb.ValueOfFloat32(1),
		dynpb.ValueOfFloat64(1),
		dynpb.ValueOfBytes([]byte{1}),
		dynpb.ValueOfEnum(1),
		dynpb.ValueOfMessage(dynamicpb.NewMessage(md)),
	} {
		_, err := v.MapKey()
		require.Error(t, err, "%v", v.Kind())
	}
}

func TestValueZero(t *testing.T) {
	t.Parallel()

	var v dynpb.Value
	require.False(t, v.IsValid())
	require.False(t, v.Equal(dynpb.ValueOfInt32(0)))
}
