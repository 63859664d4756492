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

// stringMap is the map arm for string keys. Entries are keyed by the key
// text's zero-copy string view, so hashing uses the built-in string hash
// without copying the key material.
type stringMap struct {
	entries map[string]Value
}

func (m *stringMap) len() int {
	return len(m.entries)
}

func (m *stringMap) clear() {
	clear(m.entries)
}

func (m *stringMap) get(key Ref) (Value, bool) {
	if key.Kind() != KindString {
		return Value{}, false
	}
	v, ok := m.entries[key.text.String()]
	return v, ok
}

func (m *stringMap) insert(key MapKey, value Value) {
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	m.entries[key.text.String()] = value
}

func (m *stringMap) all() iter.Seq2[MapKey, Value] {
	return func(yield func(MapKey, Value) bool) {
		for k, v := range m.entries {
			if !yield(KeyOfString(k), v) {
				return
			}
		}
	}
}
