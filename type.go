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

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Kind is the runtime tag identifying which payload a dynamic value holds.
//
// It is a closed enumeration: generic code may exhaustively switch on it.
// The zero Kind is invalid, so that the zero [Value] is distinguishable from
// a value holding anything.
type Kind byte

const (
	kindInvalid Kind = iota

	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindBytes
	KindEnum
	KindMessage
)

// IsHashable reports whether values of this kind may be used as map keys.
//
// Floating point, bytes, enums and messages are excluded; see [MapKey].
func (k Kind) IsHashable() bool {
	switch k {
	case KindInt32, KindInt64, KindUint32, KindUint64, KindBool, KindString:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindEnum:
		return "enum"
	case KindMessage:
		return "message"
	default:
		return fmt.Sprintf("<invalid kind %d>", byte(k))
	}
}

// Type is a runtime type: a [Kind], plus the message descriptor for
// message-kinded types.
//
// Types are immutable. Scalar types are the predeclared package values
// ([Int32Type] and friends); message types come from [MessageType].
type Type struct {
	kind Kind
	desc protoreflect.MessageDescriptor
}

// The scalar types.
var (
	Int32Type   = Type{kind: KindInt32}
	Int64Type   = Type{kind: KindInt64}
	Uint32Type  = Type{kind: KindUint32}
	Uint64Type  = Type{kind: KindUint64}
	Float32Type = Type{kind: KindFloat32}
	Float64Type = Type{kind: KindFloat64}
	BoolType    = Type{kind: KindBool}
	StringType  = Type{kind: KindString}
	BytesType   = Type{kind: KindBytes}
	EnumType    = Type{kind: KindEnum}
)

// MessageType returns the type of messages with the given descriptor.
func MessageType(md protoreflect.MessageDescriptor) Type {
	if md == nil {
		panic("dynpb: MessageType called with a nil descriptor")
	}
	return Type{kind: KindMessage, desc: md}
}

// Kind returns this type's runtime tag.
func (t Type) Kind() Kind {
	return t.kind
}

// Descriptor returns the message descriptor, or nil for non-message types.
func (t Type) Descriptor() protoreflect.MessageDescriptor {
	return t.desc
}

// Equal reports whether two types are the same type. Message types compare
// by descriptor identity.
func (t Type) Equal(u Type) bool {
	return t.kind == u.kind && t.desc == u.desc
}

// String implements [fmt.Stringer].
func (t Type) String() string {
	if t.kind == KindMessage {
		return string(t.desc.FullName())
	}
	return t.kind.String()
}
