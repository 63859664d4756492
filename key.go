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

import "fmt"

// MapKey is the subset of dynamic values that may key a [Map]: the 32- and
// 64-bit signed and unsigned integers, bool, and string.
//
// The typed constructors below cannot fail; generic code converts through
// [Value.MapKey], which rejects every other kind at the boundary rather
// than coercing it.
//
// The zero MapKey holds nothing and is not accepted by any [Map].
type MapKey struct {
	kind Kind
	bits uint64
	text Text
}

// KeyOfInt32 returns an int32 map key.
func KeyOfInt32(v int32) MapKey {
	return MapKey{kind: KindInt32, bits: uint64(int64(v))}
}

// KeyOfInt64 returns an int64 map key.
func KeyOfInt64(v int64) MapKey {
	return MapKey{kind: KindInt64, bits: uint64(v)}
}

// KeyOfUint32 returns a uint32 map key.
func KeyOfUint32(v uint32) MapKey {
	return MapKey{kind: KindUint32, bits: uint64(v)}
}

// KeyOfUint64 returns a uint64 map key.
func KeyOfUint64(v uint64) MapKey {
	return MapKey{kind: KindUint64, bits: v}
}

// KeyOfBool returns a bool map key.
func KeyOfBool(v bool) MapKey {
	var bits uint64
	if v {
		bits = 1
	}
	return MapKey{kind: KindBool, bits: bits}
}

// KeyOfText returns a string map key sharing t's storage.
func KeyOfText(t Text) MapKey {
	return MapKey{kind: KindString, text: t}
}

// KeyOfString returns a string map key.
func KeyOfString(s string) MapKey {
	return KeyOfText(TextFromString(s))
}

// Kind returns this key's runtime tag. It is always in the hashable subset
// for a key built by one of the constructors.
func (k MapKey) Kind() Kind {
	return k.kind
}

// AsRef returns a borrowed view of this key.
func (k MapKey) AsRef() Ref {
	return Ref{ty: Type{kind: k.kind}, bits: k.bits, text: k.text}
}

// Format implements [fmt.Formatter].
func (k MapKey) Format(s fmt.State, verb rune) {
	k.AsRef().Format(s, verb)
}
