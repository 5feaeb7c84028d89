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

package mempool

import (
	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// RelayPolicy bundles the collaborators needed to screen a relayed certificate
type RelayPolicy struct {
	Authority common.ActivationAuthority
	Outputs   certificate.OutputPolicy
	// ContextualDoS is the penalty for a certificate relayed before sidechains activate
	ContextualDoS int
}

// CheckForRelay runs the structural rules, the contextual check and the
// standardness policy in that order, as a pool does before admission.
// Standardness failures carry no peer penalty.
func CheckForRelay(
	cert *certificate.Certificate,
	policy RelayPolicy,
	height int32,
	state *common.ValidationState,
) bool {
	if !certificate.CheckCertificate(cert, state) {
		return false
	}
	if !certificate.ContextualCheck(
		cert,
		policy.Authority,
		height,
		policy.ContextualDoS,
		state,
	) {
		return false
	}
	if ok, reason := certificate.IsStandard(
		cert,
		policy.Authority,
		policy.Outputs,
		height,
	); !ok {
		return state.Invalid(nil, common.RejectNonstandard, reason)
	}
	return true
}
