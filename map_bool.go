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

// boolMap is the map arm for bool keys. It holds at most two entries.
type boolMap struct {
	entries map[bool]Value
}

func (m *boolMap) len() int {
	return len(m.entries)
}

func (m *boolMap) clear() {
	clear(m.entries)
}

func (m *boolMap) get(key Ref) (Value, bool) {
	if key.Kind() != KindBool {
		return Value{}, false
	}
	v, ok := m.entries[key.bits != 0]
	return v, ok
}

func (m *boolMap) insert(key MapKey, value Value) {
	if m.entries == nil {
		m.entries = make(map[bool]Value, 2)
	}
	m.entries[key.bits != 0] = value
}

func (m *boolMap) all() iter.Seq2[MapKey, Value] {
	return func(yield func(MapKey, Value) bool) {
		for k, v := range m.entries {
			if !yield(KeyOfBool(k), v) {
				return
			}
		}
	}
}
