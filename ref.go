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
	"math"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Ref is a borrowed view of a dynamic value: it mirrors [Value]'s arms, but
// its variable-length payloads alias their source rather than owning a copy.
//
// A Ref must not outlive the value (or buffer) it was taken from, and is
// never mutated independently of it. Use a Ref wherever inspection is all
// that is needed; convert through [Value]'s constructors when ownership is.
//
// The zero Ref holds nothing.
type Ref struct {
	ty   Type
	bits uint64
	text Text
	raw  []byte
	msg  protoreflect.Message
}

// RefOfInt32 returns a view of an int32.
func RefOfInt32(v int32) Ref {
	return Ref{ty: Int32Type, bits: uint64(int64(v))}
}

// RefOfInt64 returns a view of an int64.
func RefOfInt64(v int64) Ref {
	return Ref{ty: Int64Type, bits: uint64(v)}
}

// RefOfUint32 returns a view of a uint32.
func RefOfUint32(v uint32) Ref {
	return Ref{ty: Uint32Type, bits: uint64(v)}
}

// RefOfUint64 returns a view of a uint64.
func RefOfUint64(v uint64) Ref {
	return Ref{ty: Uint64Type, bits: v}
}

// RefOfFloat32 returns a view of a float32.
func RefOfFloat32(v float32) Ref {
	return Ref{ty: Float32Type, bits: uint64(math.Float32bits(v))}
}

// RefOfFloat64 returns a view of a float64.
func RefOfFloat64(v float64) Ref {
	return Ref{ty: Float64Type, bits: math.Float64bits(v)}
}

// RefOfBool returns a view of a bool.
func RefOfBool(v bool) Ref {
	var bits uint64
	if v {
		bits = 1
	}
	return Ref{ty: BoolType, bits: bits}
}

// RefOfText returns a view of a string, sharing t's storage.
func RefOfText(t Text) Ref {
	return Ref{ty: StringType, text: t}
}

// RefOfString returns a view of a string.
func RefOfString(s string) Ref {
	return RefOfText(TextFromString(s))
}

// RefOfBytes returns a view of a bytes payload. The view aliases b; it does
// not copy.
func RefOfBytes(b []byte) Ref {
	return Ref{ty: BytesType, raw: b}
}

// RefOfEnum returns a view of an enum number.
func RefOfEnum(n protoreflect.EnumNumber) Ref {
	return Ref{ty: EnumType, bits: uint64(int64(n))}
}

// RefOfMessage returns a view of a message.
func RefOfMessage(m protoreflect.Message) Ref {
	return Ref{ty: MessageType(m.Descriptor()), msg: m}
}

// Type returns the viewed value's runtime type.
func (r Ref) Type() Type {
	return r.ty
}

// Kind returns the viewed value's runtime tag.
func (r Ref) Kind() Kind {
	return r.ty.kind
}

// IsValid reports whether this view holds a payload.
func (r Ref) IsValid() bool {
	return r.ty.kind != kindInvalid
}

// Int32 returns the int32 payload. Panics for other kinds.
func (r Ref) Int32() int32 {
	r.mustBe(KindInt32)
	return int32(r.bits)
}

// Int64 returns the int64 payload. Panics for other kinds.
func (r Ref) Int64() int64 {
	r.mustBe(KindInt64)
	return int64(r.bits)
}

// Uint32 returns the uint32 payload. Panics for other kinds.
func (r Ref) Uint32() uint32 {
	r.mustBe(KindUint32)
	return uint32(r.bits)
}

// Uint64 returns the uint64 payload. Panics for other kinds.
func (r Ref) Uint64() uint64 {
	r.mustBe(KindUint64)
	return r.bits
}

// Float32 returns the float32 payload. Panics for other kinds.
func (r Ref) Float32() float32 {
	r.mustBe(KindFloat32)
	return math.Float32frombits(uint32(r.bits))
}

// Float64 returns the float64 payload. Panics for other kinds.
func (r Ref) Float64() float64 {
	r.mustBe(KindFloat64)
	return math.Float64frombits(r.bits)
}

// Bool returns the bool payload. Panics for other kinds.
func (r Ref) Bool() bool {
	r.mustBe(KindBool)
	return r.bits != 0
}

// Text returns the string payload as a view. Panics for other kinds.
func (r Ref) Text() Text {
	r.mustBe(KindString)
	return r.text
}

// Bytes returns the bytes payload, aliasing the source. The caller must not
// mutate it. Panics for other kinds.
func (r Ref) Bytes() []byte {
	r.mustBe(KindBytes)
	return r.raw
}

// Enum returns the enum payload. Panics for other kinds.
func (r Ref) Enum() protoreflect.EnumNumber {
	r.mustBe(KindEnum)
	return protoreflect.EnumNumber(r.bits)
}

// Message returns the message payload. Panics for other kinds.
func (r Ref) Message() protoreflect.Message {
	r.mustBe(KindMessage)
	return r.msg
}

// ToValue converts this view into an owned [Value], copying variable-length
// payloads as needed.
func (r Ref) ToValue() Value {
	if r.ty.kind == KindBytes {
		return ValueOfBytes(r.raw)
	}
	return Value{ty: r.ty, bits: r.bits, text: r.text, msg: r.msg}
}

// Equal reports whether two views see the same payload, with the same
// semantics as [Value.Equal]: different kinds are unequal, never an error.
func (r Ref) Equal(u Ref) bool {
	if !r.ty.Equal(u.ty) {
		return false
	}
	switch r.ty.kind {
	case KindFloat32, KindFloat64:
		return equalFloatBits(r.ty.kind, r.bits, u.bits)
	case KindString:
		return r.text.Equal(u.text)
	case KindBytes:
		return equalBytes(r.raw, u.raw)
	case KindMessage:
		return equalMessages(r.msg, u.msg)
	default:
		return r.bits == u.bits
	}
}

// Format implements [fmt.Formatter].
func (r Ref) Format(s fmt.State, verb rune) {
	switch r.ty.kind {
	case kindInvalid:
		fmt.Fprint(s, "<invalid>")
	case KindInt32, KindEnum:
		fmt.Fprintf(s, fmt.FormatString(s, verb), int32(r.bits))
	case KindInt64:
		fmt.Fprintf(s, fmt.FormatString(s, verb), int64(r.bits))
	case KindUint32:
		fmt.Fprintf(s, fmt.FormatString(s, verb), uint32(r.bits))
	case KindUint64:
		fmt.Fprintf(s, fmt.FormatString(s, verb), r.bits)
	case KindFloat32:
		fmt.Fprintf(s, fmt.FormatString(s, verb), math.Float32frombits(uint32(r.bits)))
	case KindFloat64:
		fmt.Fprintf(s, fmt.FormatString(s, verb), math.Float64frombits(r.bits))
	case KindBool:
		fmt.Fprintf(s, fmt.FormatString(s, verb), r.bits != 0)
	case KindString:
		r.text.Format(s, verb)
	case KindBytes:
		fmt.Fprintf(s, fmt.FormatString(s, verb), r.raw)
	case KindMessage:
		fmt.Fprintf(s, fmt.FormatString(s, verb), r.msg.Interface())
	}
}

func (r Ref) mustBe(k Kind) {
	if r.ty.kind != k {
		panic(fmt.Sprintf("dynpb: type mismatch: cannot convert %v to %v", r.ty, k))
	}
}
