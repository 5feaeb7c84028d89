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

// Package certificate implements sidechain epoch certificates: the sealed
// entity and its identity hash, the mutable builder, the validation rules and
// the per-block commitment map.
//
// # Key Files by Purpose
//
//   - certificate.go: Certificate, Seal, canonical encoding and accessors
//   - mutable.go: MutableCertificate builder
//   - rules.go: ordered structural rules (StructuralValidationRules)
//   - contextual.go: height-gated ContextualCheck and relay IsStandard
//   - commitment.go: CommitmentMap (sidechain id -> latest certificate hash)
//
// # Lifecycle
//
//	m := certificate.NewMutableCertificate().
//		SetSidechainId(scId).
//		SetEpochNumber(3).
//		AddBackwardTransfer(10*common.Coin, script).
//		SetTotalAmount(10 * common.Coin)
//	cert := m.Seal()
//	var state common.ValidationState
//	if !certificate.CheckCertificate(cert, &state) {
//		return state.Err()
//	}
//	if !certificate.ContextualCheck(cert, authority, height, common.DoSMax, &state) {
//		return state.Err()
//	}
package certificate
