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

package common

// Related files:
//   - ledger/certificate/contextual.go: height-gated checks that consult ActivationAuthority
//   - forks/schedule.go: the Schedule implementation of ActivationAuthority
//   - internal/test/sidechain/mock.go: MockActivationAuthority for testing

// ActivationAuthority is the height-indexed source of truth for which protocol
// features and versions are active. Implementations must be pure functions of
// height, monotonic, and identical across all nodes.
type ActivationAuthority interface {
	// AreSidechainsSupported reports whether the sidechain feature is active at the given height
	AreSidechainsSupported(height int32) bool
	// CertificateVersion returns the certificate version mandated at the given height
	CertificateVersion(height int32) int32
}
