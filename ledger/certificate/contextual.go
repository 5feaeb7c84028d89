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

package certificate

import (
	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// OutputPolicy decides whether a set of outputs may be relayed at a given
// height. It returns a reason when they may not.
type OutputPolicy interface {
	OutputsAreStandard(outputs []common.TransactionOutput, height int32) (bool, string)
}

// OutputPolicyFunc adapts a plain function to OutputPolicy
type OutputPolicyFunc func(outputs []common.TransactionOutput, height int32) (bool, string)

func (f OutputPolicyFunc) OutputsAreStandard(
	outputs []common.TransactionOutput,
	height int32,
) (bool, string) {
	return f(outputs, height)
}

// CoinsView answers whether a certificate can be applied on top of the
// current chain state
type CoinsView interface {
	IsCertApplicableToState(
		cert *Certificate,
		height int32,
		state *common.ValidationState,
	) bool
}

// ContextualCheck rejects the certificate if sidechains are not active at
// height. The penalty is chosen by the caller, since a certificate seen in a
// block and one seen in a relay message warrant different severities.
func ContextualCheck(
	cert *Certificate,
	authority common.ActivationAuthority,
	height int32,
	dosLevel int,
	state *common.ValidationState,
) bool {
	if authority == nil {
		return state.Error("no activation authority available")
	}
	if authority.AreSidechainsSupported(height) {
		return true
	}
	return state.DoS(
		dosLevel,
		SidechainsNotSupportedError{Height: height},
		common.RejectInvalid,
		RejectReasonVersion,
	)
}

// IsStandard applies relay policy. A non-standard certificate may still be
// valid in a block, so this never writes to a ValidationState.
func IsStandard(
	cert *Certificate,
	authority common.ActivationAuthority,
	policy OutputPolicy,
	height int32,
) (bool, string) {
	if authority == nil {
		return false, NonStandardReasonNoAuthority
	}
	if policy == nil {
		return false, NonStandardReasonNoOutputPolicy
	}
	if !authority.AreSidechainsSupported(height) {
		return false, NonStandardReasonVersion
	}
	// Only one version is mandated per height
	if authority.CertificateVersion(height) != cert.body.Version {
		return false, NonStandardReasonVersion
	}
	return policy.OutputsAreStandard(cert.Outputs(), height)
}

// IsApplicableToState forwards to the coins view
func IsApplicableToState(
	cert *Certificate,
	view CoinsView,
	height int32,
	state *common.ValidationState,
) bool {
	if view == nil {
		return state.Error("no coins view available")
	}
	return view.IsCertApplicableToState(cert, height, state)
}
