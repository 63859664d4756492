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

// Package zigzag implements the zigzag transform used by the sint Protobuf
// scalar types.
package zigzag

import (
	"unsafe"

	"google.golang.org/protobuf/encoding/protowire"
)

// Int is any integer type this package can transform.
type Int interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Decode decodes a zigzag-encoded value of any width.
//
// The input is masked to the width of T first, so callers may pass raw
// varint bits without worrying about sign extension.
func Decode[T Int](raw uint64) T {
	raw &= 1<<(unsafe.Sizeof(T(0))*8) - 1
	return T(protowire.DecodeZigZag(raw))
}

// Encode zigzag-encodes v. The result of encoding a 32-bit value always
// fits in 32 bits.
func Encode[T Int](v T) uint64 {
	return protowire.EncodeZigZag(int64(v))
}
