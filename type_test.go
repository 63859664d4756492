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
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"

	"buf.build/go/dynpb"
)

func TestKindHashable(t *testing.T) {
	t.Parallel()

	hashable := []dynpb.Kind{
		dynpb.KindInt32, dynpb.KindInt64,
		dynpb.KindUint32, dynpb.KindUint64,
		dynpb.KindBool, dynpb.KindString,
	}
	for _, k := range hashable {
		require.True(t, k.IsHashable(), "%v", k)
	}

	unhashable := []dynpb.Kind{
		dynpb.KindFloat32, dynpb.KindFloat64,
		dynpb.KindBytes, dynpb.KindEnum, dynpb.KindMessage,
	}
	for _, k := range unhashable {
		require.False(t, k.IsHashable(), "%v", k)
	}
}

func TestTypeEqual(t *testing.T) {
	t.Parallel()

	require.True(t, dynpb.Int32Type.Equal(dynpb.Int32Type))
	require.False(t, dynpb.Int32Type.Equal(dynpb.Uint32Type))

	md1 := (&descriptorpb.FileDescriptorProto{}).ProtoReflect().Descriptor()
	md2 := (&descriptorpb.DescriptorProto{}).ProtoReflect().Descriptor()

	require.True(t, dynpb.MessageType(md1).Equal(dynpb.MessageType(md1)))
	require.False(t, dynpb.MessageType(md1).Equal(dynpb.MessageType(md2)))
	require.False(t, dynpb.MessageType(md1).Equal(dynpb.StringType))

	require.Equal(t, dynpb.KindMessage, dynpb.MessageType(md1).Kind())
	require.Equal(t, md1, dynpb.MessageType(md1).Descriptor())
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "uint32", dynpb.Uint32Type.String())
	require.Equal(t, "string", dynpb.StringType.String())

	md := (&descriptorpb.FileDescriptorProto{}).ProtoReflect().Descriptor()
	require.Equal(t, "google.protobuf.FileDescriptorProto", dynpb.MessageType(md).String())
}

func TestMessageTypeNilDescriptor(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { dynpb.MessageType(nil) })
}
