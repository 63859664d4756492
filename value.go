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
	"bytes"
	"fmt"
	"math"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Value is an owned dynamic value: one payload of any [Kind], discovered at
// runtime through [Value.Kind].
//
// The typed accessors panic when called for the wrong kind; generic code
// should switch on the kind first. [Value.Equal] never panics: values of
// different kinds are simply unequal.
//
// The zero Value holds nothing; its kind is not any of the [Kind] constants.
type Value struct {
	ty Type

	// Scalar payloads live in bits; int32/int64/enum are sign-extended,
	// floats are stored as their IEEE bit patterns.
	bits uint64
	text Text
	raw  []byte
	msg  protoreflect.Message
}

// ValueOfInt32 returns a new int32 value.
func ValueOfInt32(v int32) Value {
	return Value{ty: Int32Type, bits: uint64(int64(v))}
}

// ValueOfInt64 returns a new int64 value.
func ValueOfInt64(v int64) Value {
	return Value{ty: Int64Type, bits: uint64(v)}
}

// ValueOfUint32 returns a new uint32 value.
func ValueOfUint32(v uint32) Value {
	return Value{ty: Uint32Type, bits: uint64(v)}
}

// ValueOfUint64 returns a new uint64 value.
func ValueOfUint64(v uint64) Value {
	return Value{ty: Uint64Type, bits: v}
}

// ValueOfFloat32 returns a new float32 value.
func ValueOfFloat32(v float32) Value {
	return Value{ty: Float32Type, bits: uint64(math.Float32bits(v))}
}

// ValueOfFloat64 returns a new float64 value.
func ValueOfFloat64(v float64) Value {
	return Value{ty: Float64Type, bits: math.Float64bits(v)}
}

// ValueOfBool returns a new bool value.
func ValueOfBool(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}
	return Value{ty: BoolType, bits: bits}
}

// ValueOfText returns a new string value sharing t's storage.
func ValueOfText(t Text) Value {
	return Value{ty: StringType, text: t}
}

// ValueOfString returns a new string value.
func ValueOfString(s string) Value {
	return ValueOfText(TextFromString(s))
}

// ValueOfBytes returns a new bytes value. The contents are copied, so that
// the value owns its payload.
func ValueOfBytes(b []byte) Value {
	return Value{ty: BytesType, raw: slices.Clone(b)}
}

// ValueOfEnum returns a new enum value.
func ValueOfEnum(n protoreflect.EnumNumber) Value {
	return Value{ty: EnumType, bits: uint64(int64(n))}
}

// ValueOfMessage returns a new message value. The message's type becomes
// part of the value's [Type].
func ValueOfMessage(m protoreflect.Message) Value {
	return Value{ty: MessageType(m.Descriptor()), msg: m}
}

// Type returns this value's runtime type.
func (v Value) Type() Type {
	return v.ty
}

// Kind returns this value's runtime tag.
func (v Value) Kind() Kind {
	return v.ty.kind
}

// IsValid reports whether this value holds a payload.
func (v Value) IsValid() bool {
	return v.ty.kind != kindInvalid
}

// Int32 returns the int32 payload. Panics for other kinds.
func (v Value) Int32() int32 {
	v.mustBe(KindInt32)
	return int32(v.bits)
}

// Int64 returns the int64 payload. Panics for other kinds.
func (v Value) Int64() int64 {
	v.mustBe(KindInt64)
	return int64(v.bits)
}

// Uint32 returns the uint32 payload. Panics for other kinds.
func (v Value) Uint32() uint32 {
	v.mustBe(KindUint32)
	return uint32(v.bits)
}

// Uint64 returns the uint64 payload. Panics for other kinds.
func (v Value) Uint64() uint64 {
	v.mustBe(KindUint64)
	return v.bits
}

// Float32 returns the float32 payload. Panics for other kinds.
func (v Value) Float32() float32 {
	v.mustBe(KindFloat32)
	return math.Float32frombits(uint32(v.bits))
}

// Float64 returns the float64 payload. Panics for other kinds.
func (v Value) Float64() float64 {
	v.mustBe(KindFloat64)
	return math.Float64frombits(v.bits)
}

// Bool returns the bool payload. Panics for other kinds.
func (v Value) Bool() bool {
	v.mustBe(KindBool)
	return v.bits != 0
}

// Text returns the string payload as a view. Panics for other kinds.
func (v Value) Text() Text {
	v.mustBe(KindString)
	return v.text
}

// Bytes returns the bytes payload. The caller must not mutate it.
// Panics for other kinds.
func (v Value) Bytes() []byte {
	v.mustBe(KindBytes)
	return v.raw
}

// Enum returns the enum payload. Panics for other kinds.
func (v Value) Enum() protoreflect.EnumNumber {
	v.mustBe(KindEnum)
	return protoreflect.EnumNumber(v.bits)
}

// Message returns the message payload. Panics for other kinds.
func (v Value) Message() protoreflect.Message {
	v.mustBe(KindMessage)
	return v.msg
}

// AsRef returns a borrowed view of this value. It never copies and never
// fails.
func (v Value) AsRef() Ref {
	return Ref{ty: v.ty, bits: v.bits, text: v.text, raw: v.raw, msg: v.msg}
}

// MapKey converts this value into a map key.
//
// Fails for kinds outside the hashable subset; see [Kind.IsHashable].
func (v Value) MapKey() (MapKey, error) {
	if !v.ty.kind.IsHashable() {
		return MapKey{}, fmt.Errorf("dynpb: %v cannot be a map key", v.ty)
	}
	return MapKey{kind: v.ty.kind, bits: v.bits, text: v.text}, nil
}

// Equal reports whether two values hold the same payload.
//
// Values of different kinds are unequal, never an error. Floats compare by
// value, so NaN is unequal to itself. Messages compare by contents, viz
// [proto.Equal].
func (v Value) Equal(u Value) bool {
	return v.AsRef().Equal(u.AsRef())
}

// Format implements [fmt.Formatter].
func (v Value) Format(s fmt.State, verb rune) {
	v.AsRef().Format(s, verb)
}

func (v Value) mustBe(k Kind) {
	if v.ty.kind != k {
		panic(fmt.Sprintf("dynpb: type mismatch: cannot convert %v to %v", v.ty, k))
	}
}

// equalMessages compares two message payloads by contents.
func equalMessages(m1, m2 protoreflect.Message) bool {
	return proto.Equal(m1.Interface(), m2.Interface())
}

// equalFloatBits compares two IEEE bit patterns by float value.
func equalFloatBits(kind Kind, b1, b2 uint64) bool {
	if kind == KindFloat32 {
		return math.Float32frombits(uint32(b1)) == math.Float32frombits(uint32(b2))
	}
	return math.Float64frombits(b1) == math.Float64frombits(b2)
}

// equalBytes compares two bytes payloads.
func equalBytes(b1, b2 []byte) bool {
	return bytes.Equal(b1, b2)
}
