// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cbor provides the canonical CBOR codec used for ledger entries.
//
// This package wraps github.com/fxamacker/cbor/v2 with a single, fixed set of
// encoding options. Identity hashes and size limits are both derived from the
// output of Encode, so every node must produce identical bytes for identical
// values.
//
// # Key Types
//
//   - StructAsArray: Embed to encode struct fields as CBOR array instead of map
//   - RawMessage: Deferred decoding (like json.RawMessage)
//
// # Encoding Rules
//
//  1. Map keys are sorted using core deterministic ordering
//  2. Nil slices and maps encode as empty containers, never as null
//  3. Indefinite-length items are rejected in both directions
//
// # Decoding Rules
//
//  1. Unknown struct fields are an error
//  2. Duplicate map keys are an error
//  3. DecodeStrict additionally rejects trailing bytes
package cbor
