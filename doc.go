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

// Package dynpb provides the dynamic value model that backs schema-agnostic
// access to Protobuf message contents: runtime-tagged values, borrowed views
// of those values, and the variant-keyed map container that stores a map
// field's entries when no generated map type exists.
//
// The model is built from a small closed set of runtime tags ([Kind]). An
// owned [Value] holds one payload of any kind; a [Ref] is a borrowed view of
// such a payload; a [MapKey] is the restricted subset of values that may key
// a [Map]. Text payloads are carried by [Text], an immutable byte view whose
// content is guaranteed to be valid UTF-8, so that string reads never
// re-validate.
//
// # Contract violations
//
// Mismatches between a container's declared types and the values handed to
// it indicate an inconsistency between generated code and the schema, not bad
// input. Those paths panic rather than return an error; see [Map.Insert] and
// [NewMap]. The one deliberate exception is [Map.Get], which treats a key of
// the wrong kind as absent so that generic traversal over heterogeneous
// schemas degrades gracefully.
package dynpb
