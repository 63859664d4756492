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

package dynpb_test

import (
	"fmt"

	"buf.build/go/dynpb"
)

func Example() {
	// A dynamic message backs its map<uint32, string> field with a Map
	// when no generated map type exists.
	m := dynpb.NewMap(dynpb.Uint32Type, dynpb.StringType)

	// Insertion is driven by trusted code that already resolved both types
	// from the schema, such as the wire-format parser.
	m.Insert(dynpb.KeyOfUint32(7), dynpb.ValueOfString("seven"))
	m.Insert(dynpb.KeyOfUint32(3), dynpb.ValueOfString("three"))

	// Generic lookups hand over a borrowed key and get a borrowed value
	// back; a key of the wrong kind is simply absent.
	if v, ok := m.Get(dynpb.RefOfUint32(7)); ok {
		fmt.Println(v)
	}
	if _, ok := m.Get(dynpb.RefOfString("7")); !ok {
		fmt.Println("string keys do not match a uint32-keyed map")
	}

	fmt.Println(m.Len(), m.KeyType(), m.ValueType())

	// Output:
	// seven
	// string keys do not match a uint32-keyed map
	// 2 uint32 string
}
