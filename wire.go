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

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"buf.build/go/dynpb/internal/zigzag"
)

// A map field's entries are encoded on the wire as repeated length-delimited
// messages with the key in field 1 and the value in field 2. EntryCodec
// translates one such payload to and from a [Map]'s entries.
//
// Runtime tags do not capture wire presentation: int32, sint32 and sfixed32
// all share [KindInt32]. The codec therefore carries the schema-level
// [protoreflect.Kind] of both fields, resolved by the caller from the map
// entry's descriptor.
type EntryCodec struct {
	m          *Map
	key, value protoreflect.Kind
}

// NewEntryCodec returns a codec for m's entries with the given wire kinds.
//
// Fails if either kind's runtime type does not match the corresponding type
// declared by m; this is schema data, so a mismatch is reported as an error
// rather than asserted.
func NewEntryCodec(m *Map, key, value protoreflect.Kind) (*EntryCodec, error) {
	if rk := runtimeKind(key); rk != m.KeyType().Kind() {
		return nil, fmt.Errorf("dynpb: wire kind %v does not encode map key type %v", key, m.KeyType())
	}
	if rk := runtimeKind(value); rk != m.ValueType().Kind() {
		return nil, fmt.Errorf("dynpb: wire kind %v does not encode map value type %v", value, m.ValueType())
	}
	return &EntryCodec{m: m, key: key, value: value}, nil
}

// DecodeEntry decodes one map-entry payload and inserts it into the map,
// replacing any existing entry for the same key.
//
// Fields other than 1 and 2 are skipped, as are fields of an unexpected
// wire type; a schema-conformant encoder never emits them, and decoders
// tolerate unknown data rather than reject it. A missing key or value
// yields the type's zero value, per standard map-entry semantics.
//
// String and bytes payloads share raw's storage; raw must not be mutated
// while the map is alive.
func (c *EntryCodec) DecodeEntry(raw []byte) error {
	key := zeroKey(c.m.KeyType().Kind())
	var value Value

	for off := 0; off < len(raw); {
		num, typ, n := protowire.ConsumeTag(raw[off:])
		if n < 0 {
			return decodeErr(off, protowire.ParseError(n))
		}
		off += n

		switch {
		case num == 1 && typ == wireType(c.key):
			k, n, err := c.decodeKey(raw[off:])
			if err != nil {
				return decodeErr(off, err)
			}
			key = k
			off += n
		case num == 2 && typ == wireType(c.value):
			v, n, err := c.decodeValue(raw[off:])
			if err != nil {
				return decodeErr(off, err)
			}
			value = v
			off += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, raw[off:])
			if n < 0 {
				return decodeErr(off, protowire.ParseError(n))
			}
			off += n
		}
	}

	if !value.IsValid() {
		// The value field was absent; default it, per map-entry semantics.
		v, err := zeroValue(c.m.ValueType())
		if err != nil {
			return err
		}
		value = v
	}

	c.m.Insert(key, value)
	return nil
}

// AppendEntry appends one map-entry payload (without the field's own tag and
// length prefix) to dst.
//
// The entry's views must match the map's types; as with [Map.Insert], a
// mismatch is a programming error. Marshaling errors from message values
// are returned.
func (c *EntryCodec) AppendEntry(dst []byte, key, value Ref) ([]byte, error) {
	if key.Kind() != c.m.KeyType().Kind() {
		panic(fmt.Sprintf("dynpb: wrong key type for map<%v, %v>: %v", c.m.KeyType(), c.m.ValueType(), key.Kind()))
	}
	if !value.Type().Equal(c.m.ValueType()) {
		panic(fmt.Sprintf("dynpb: wrong value type for map<%v, %v>: %v", c.m.KeyType(), c.m.ValueType(), value.Type()))
	}

	dst = protowire.AppendTag(dst, 1, wireType(c.key))
	if c.key == protoreflect.StringKind {
		dst = protowire.AppendBytes(dst, key.text.Bytes())
	} else {
		dst = appendScalar(dst, c.key, key.bits)
	}

	dst = protowire.AppendTag(dst, 2, wireType(c.value))
	switch c.value {
	case protoreflect.StringKind:
		return protowire.AppendBytes(dst, value.text.Bytes()), nil
	case protoreflect.BytesKind:
		return protowire.AppendBytes(dst, value.raw), nil
	case protoreflect.MessageKind:
		b, err := proto.Marshal(value.msg.Interface())
		if err != nil {
			return dst, err
		}
		return protowire.AppendBytes(dst, b), nil
	default:
		return appendScalar(dst, c.value, value.bits), nil
	}
}

// decodeKey decodes the key field per the codec's key wire kind.
func (c *EntryCodec) decodeKey(raw []byte) (MapKey, int, error) {
	bits, n, err := consumeScalar(raw, c.key)
	if err != nil {
		return MapKey{}, 0, err
	}

	if c.key == protoreflect.StringKind {
		t, err := TextFromBytes(raw[varintLen(raw):n])
		if err != nil {
			return MapKey{}, 0, err
		}
		return KeyOfText(t), n, nil
	}
	return MapKey{kind: c.m.KeyType().Kind(), bits: bits}, n, nil
}

// decodeValue decodes the value field per the codec's value wire kind.
func (c *EntryCodec) decodeValue(raw []byte) (Value, int, error) {
	switch c.value {
	case protoreflect.StringKind:
		b, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return Value{}, 0, protowire.ParseError(n)
		}
		t, err := TextFromBytes(b)
		if err != nil {
			return Value{}, 0, err
		}
		return ValueOfText(t), n, nil

	case protoreflect.BytesKind:
		b, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return Value{}, 0, protowire.ParseError(n)
		}
		// Aliases raw rather than copying; see DecodeEntry.
		return Value{ty: BytesType, raw: b}, n, nil

	case protoreflect.MessageKind:
		b, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return Value{}, 0, protowire.ParseError(n)
		}
		msg := dynamicpb.NewMessage(c.m.ValueType().Descriptor())
		if err := proto.Unmarshal(b, msg); err != nil {
			return Value{}, 0, err
		}
		return ValueOfMessage(msg), n, nil

	default:
		bits, n, err := consumeScalar(raw, c.value)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{ty: c.m.ValueType(), bits: bits}, n, nil
	}
}

// consumeScalar consumes one non-length-delimited scalar, returning its
// payload in the bit pattern [Value] stores. For string kinds it consumes
// the length-delimited field and returns no bits.
func consumeScalar(raw []byte, kind protoreflect.Kind) (bits uint64, n int, err error) {
	switch kind {
	case protoreflect.Int32Kind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(int64(int32(v))), n, nil
	case protoreflect.Int64Kind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return v, n, nil
	case protoreflect.Uint32Kind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(uint32(v)), n, nil
	case protoreflect.Uint64Kind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return v, n, nil
	case protoreflect.Sint32Kind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(int64(zigzag.Decode[int32](v))), n, nil
	case protoreflect.Sint64Kind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(zigzag.Decode[int64](v)), n, nil
	case protoreflect.BoolKind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		if v != 0 {
			v = 1 // Normalize so that equality over bit patterns holds.
		}
		return v, n, nil
	case protoreflect.EnumKind:
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(int64(int32(v))), n, nil
	case protoreflect.Fixed32Kind:
		v, n := protowire.ConsumeFixed32(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(v), n, nil
	case protoreflect.Sfixed32Kind:
		v, n := protowire.ConsumeFixed32(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(int64(int32(v))), n, nil
	case protoreflect.FloatKind:
		v, n := protowire.ConsumeFixed32(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return uint64(v), n, nil
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		v, n := protowire.ConsumeFixed64(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return v, n, nil
	case protoreflect.StringKind:
		_, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return 0, 0, protowire.ParseError(n)
		}
		return 0, n, nil
	default:
		panic(fmt.Sprintf("dynpb: kind is not a scalar: %v", kind))
	}
}

// appendScalar appends one non-length-delimited scalar from its stored bit
// pattern, with the presentation the wire kind calls for.
func appendScalar(dst []byte, kind protoreflect.Kind, bits uint64) []byte {
	switch kind {
	case protoreflect.Int32Kind, protoreflect.Int64Kind,
		protoreflect.Uint32Kind, protoreflect.Uint64Kind,
		protoreflect.BoolKind, protoreflect.EnumKind:
		return protowire.AppendVarint(dst, bits)
	case protoreflect.Sint32Kind:
		return protowire.AppendVarint(dst, zigzag.Encode(int32(bits)))
	case protoreflect.Sint64Kind:
		return protowire.AppendVarint(dst, zigzag.Encode(int64(bits)))
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return protowire.AppendFixed32(dst, uint32(bits))
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return protowire.AppendFixed64(dst, bits)
	case protoreflect.StringKind:
		// Handled by the caller; strings do not live in bits.
		panic("dynpb: string scalar has no bit pattern")
	default:
		panic(fmt.Sprintf("dynpb: kind is not a scalar: %v", kind))
	}
}

// runtimeKind maps a schema-level wire kind to the runtime tag of the values
// it decodes to. Unsupported kinds (such as groups) map to the invalid kind
// and fail [NewEntryCodec]'s compatibility check.
func runtimeKind(kind protoreflect.Kind) Kind {
	switch kind {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return KindInt32
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return KindInt64
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return KindUint32
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return KindUint64
	case protoreflect.FloatKind:
		return KindFloat32
	case protoreflect.DoubleKind:
		return KindFloat64
	case protoreflect.BoolKind:
		return KindBool
	case protoreflect.StringKind:
		return KindString
	case protoreflect.BytesKind:
		return KindBytes
	case protoreflect.EnumKind:
		return KindEnum
	case protoreflect.MessageKind:
		return KindMessage
	default:
		return kindInvalid
	}
}

// wireType returns the wire type a kind is encoded with.
func wireType(kind protoreflect.Kind) protowire.Type {
	switch kind {
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return protowire.Fixed32Type
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return protowire.Fixed64Type
	case protoreflect.StringKind, protoreflect.BytesKind, protoreflect.MessageKind:
		return protowire.BytesType
	default:
		return protowire.VarintType
	}
}

// zeroKey returns the default key for a hashable kind.
func zeroKey(kind Kind) MapKey {
	if kind == KindString {
		return KeyOfText(NewText())
	}
	return MapKey{kind: kind}
}

// zeroValue returns the default value of a type.
func zeroValue(t Type) (Value, error) {
	if t.Kind() == KindMessage {
		return ValueOfMessage(dynamicpb.NewMessage(t.Descriptor())), nil
	}
	if t.Kind() == kindInvalid {
		return Value{}, fmt.Errorf("dynpb: invalid value type: %v", t)
	}
	if t.Kind() == KindString {
		return ValueOfText(NewText()), nil
	}
	return Value{ty: t}, nil
}

// varintLen returns the length of the varint at the start of raw. raw must
// begin with the already-validated length prefix of a length-delimited
// field.
func varintLen(raw []byte) int {
	_, n := protowire.ConsumeVarint(raw)
	if n < 0 {
		panic("dynpb: unreachable: length prefix already validated")
	}
	return n
}

// decodeErr wraps a decoding failure with the offset it occurred at.
func decodeErr(offset int, err error) error {
	return fmt.Errorf("dynpb: malformed map entry at offset %d/%#x: %w", offset, offset, err)
}
