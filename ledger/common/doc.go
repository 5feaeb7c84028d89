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

// Package common provides shared types, interfaces, and utilities for all ledger entry kinds.
//
// # Key Files by Purpose
//
// Interfaces (start here to understand the API):
//   - state.go: ActivationAuthority, the height-indexed fork authority
//   - tx.go: HasIdentity, HasOutputs, TransactionInput, TransactionOutput
//
// Core Types:
//   - common.go: Blake2b256 hash type and hashing helper
//   - amount.go: Amount and money range helpers
//
// Validation:
//   - validation.go: ValidationState accumulator, RejectCode, DoS levels
//   - errors.go: ValidationError and RejectError
//
// # Common Patterns
//
// Validation rules write at most one rejection onto a *ValidationState and
// return false when they do:
//
//	if !ok {
//		return state.DoS(DoSModerate, err, RejectInvalid, "bad-cert-invalid")
//	}
//
// # Testing
//
// Use the mocks from internal/test/sidechain for collaborator interfaces.
package common
