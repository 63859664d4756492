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

import "iter"

// integer is any type an integer map arm can be keyed by.
type integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// intMap is the map arm for the four integer key kinds. Keys are stored in
// their natural width; the kind disambiguates int32 from uint32 and so on,
// since both share the same storage of bits in a key.
type intMap[K integer] struct {
	kind    Kind
	entries map[K]Value
}

func newIntMap[K integer](kind Kind) *intMap[K] {
	return &intMap[K]{kind: kind, entries: make(map[K]Value)}
}

func (m *intMap[K]) len() int {
	return len(m.entries)
}

func (m *intMap[K]) clear() {
	clear(m.entries)
}

func (m *intMap[K]) get(key Ref) (Value, bool) {
	if key.Kind() != m.kind {
		return Value{}, false
	}
	v, ok := m.entries[K(key.bits)]
	return v, ok
}

func (m *intMap[K]) insert(key MapKey, value Value) {
	m.entries[K(key.bits)] = value
}

func (m *intMap[K]) all() iter.Seq2[MapKey, Value] {
	return func(yield func(MapKey, Value) bool) {
		for k, v := range m.entries {
			// Sign-extending through int64 reproduces the bit pattern the
			// key constructors store for every K.
			key := MapKey{kind: m.kind, bits: uint64(int64(k))}
			if !yield(key, v) {
				return
			}
		}
	}
}
