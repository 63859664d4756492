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
	"iter"
)

// Map is the variant-keyed container backing a dynamic message's map field.
//
// A Map is created with a fixed (key type, value type) pair. The key type
// selects exactly one concrete homogeneous map at construction; that choice
// never changes. Every stored value's type matches the declared value type,
// checked on insert.
//
// A Map is not safe for concurrent mutation; it has the same external-
// synchronization discipline as the message that owns it.
type Map struct {
	key, value Type
	arm        mapArm
}

// mapArm is one concrete key-variant map. Implementations trust their
// callers: [Map] performs the key- and value-type checks.
type mapArm interface {
	len() int
	clear()

	// get returns the stored value, or false if the key is absent or of the
	// wrong kind.
	get(key Ref) (Value, bool)
	insert(key MapKey, value Value)
	all() iter.Seq2[MapKey, Value]
}

// NewMap returns an empty map with the given key and value types.
//
// Panics if the key type is not in the hashable subset. A schema declaring
// such a map key is invalid and must be rejected at schema-validation time;
// this is a last-resort assertion, not a recoverable error.
func NewMap(key, value Type) *Map {
	m := &Map{key: key, value: value}
	switch key.Kind() {
	case KindInt32:
		m.arm = newIntMap[int32](KindInt32)
	case KindInt64:
		m.arm = newIntMap[int64](KindInt64)
	case KindUint32:
		m.arm = newIntMap[uint32](KindUint32)
	case KindUint64:
		m.arm = newIntMap[uint64](KindUint64)
	case KindBool:
		m.arm = new(boolMap)
	case KindString:
		m.arm = new(stringMap)
	default:
		panic(fmt.Sprintf("dynpb: type cannot be a map key: %v", key))
	}
	return m
}

// KeyType returns the key type fixed at construction.
func (m *Map) KeyType() Type {
	return m.key
}

// ValueType returns the value type fixed at construction.
func (m *Map) ValueType() Type {
	return m.value
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.arm.len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map) IsEmpty() bool {
	return m.arm.len() == 0
}

// Clear removes all entries. The key and value types are unchanged.
func (m *Map) Clear() {
	m.arm.clear()
}

// Get looks up an entry and returns a borrowed view of its value.
//
// A key whose kind does not match the map's key type is simply not found.
// This is the one deliberately lenient path: generic callers comparing
// mismatched schema types degrade gracefully instead of crashing.
func (m *Map) Get(key Ref) (Ref, bool) {
	v, ok := m.arm.get(key)
	if !ok {
		return Ref{}, false
	}
	return v.AsRef(), true
}

// Insert stores an entry, replacing any existing entry for an equal key.
//
// Unlike [Map.Get], Insert is driven by trusted internal code paths that
// already resolved both types from the schema: a key or value of the wrong
// type is a programming error and panics rather than corrupting the map's
// invariants.
func (m *Map) Insert(key MapKey, value Value) {
	if !value.Type().Equal(m.value) {
		panic(fmt.Sprintf("dynpb: wrong value type for map<%v, %v>: %v", m.key, m.value, value.Type()))
	}
	if key.Kind() != m.key.Kind() {
		panic(fmt.Sprintf("dynpb: wrong key type for map<%v, %v>: %v", m.key, m.value, key.Kind()))
	}
	m.arm.insert(key, value)
}

// All is an iterator over the entries of the map, as borrowed key and value
// views. Entries are returned in unspecified order; the iteration is a live
// view, and inserting during it is undefined.
func (m *Map) All() iter.Seq2[Ref, Ref] {
	return func(yield func(Ref, Ref) bool) {
		for k, v := range m.arm.all() {
			if !yield(k.AsRef(), v.AsRef()) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (m *Map) Format(s fmt.State, verb rune) {
	kv := fmt.FormatString(s, verb) + ": " + fmt.FormatString(s, verb)
	first := true

	fmt.Fprint(s, "[")
	for k, v := range m.All() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false
		fmt.Fprintf(s, kv, k, v)
	}
	fmt.Fprint(s, "]")
}
