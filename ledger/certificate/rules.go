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

// CertValidationRuleFunc represents a function that validates a certificate
// against a single context-free rule. It returns false after writing exactly
// one rejection onto the state, and true without touching the state otherwise.
type CertValidationRuleFunc func(
	cert *Certificate,
	state *common.ValidationState,
) bool

// StructuralValidationRules is the fixed, ordered structural pipeline every
// certificate must pass. The order determines which reject code a peer sees
// and must not change.
var StructuralValidationRules = []CertValidationRuleFunc{
	CheckVersionBasic,
	CheckInputsAvailability,
	CheckOutputsAvailability,
	CheckSerializedSize,
	checkFeeAmountRule,
}

// CheckCertificate runs the structural rules in order and stops at the first failure
func CheckCertificate(cert *Certificate, state *common.ValidationState) bool {
	return RunRules(cert, state, StructuralValidationRules)
}

// RunRules runs the provided rules in order against a single state and stops
// at the first failure
func RunRules(
	cert *Certificate,
	state *common.ValidationState,
	rules []CertValidationRuleFunc,
) bool {
	for _, rule := range rules {
		if !rule(cert, state) {
			return false
		}
		// A rule must not leave a rejection behind while reporting success
		if !state.IsValid() {
			return false
		}
	}
	return true
}

// VerifyCertificate runs the provided validation rules in order and wraps
// the first rejection encountered into a ValidationError.
func VerifyCertificate(
	cert *Certificate,
	validationRules []CertValidationRuleFunc,
) error {
	for i, rule := range validationRules {
		var state common.ValidationState
		if rule(cert, &state) && state.IsValid() {
			continue
		}
		details := map[string]any{
			"rule_index":    i,
			"reject_code":   state.RejectCode().String(),
			"reject_reason": state.RejectReason(),
			"dos_level":     state.DoSLevel(),
		}
		if cert != nil {
			details["cert_hash"] = cert.Hash().String()
		}
		return common.NewValidationError(
			common.ValidationErrorTypeCertificate,
			"certificate validation failed",
			details,
			state.Err(),
		)
	}
	return nil
}

// CheckVersionBasic validates the version shape independently of chain height.
// No format constraints exist yet, so every version passes.
func CheckVersionBasic(
	cert *Certificate,
	state *common.ValidationState,
) bool {
	return true
}

// CheckInputsAvailability rejects certificates that spend transparent inputs
func CheckInputsAvailability(
	cert *Certificate,
	state *common.ValidationState,
) bool {
	if len(cert.body.Inputs) == 0 {
		return true
	}
	return state.DoS(
		common.DoSModerate,
		InputsNotEmptyError{Count: len(cert.body.Inputs)},
		common.RejectInvalid,
		RejectReasonInvalid,
	)
}

// CheckOutputsAvailability allows a certificate with no payouts, but only if
// it declares a zero total amount
func CheckOutputsAvailability(
	cert *Certificate,
	state *common.ValidationState,
) bool {
	if cert.NumBackwardTransfers() != 0 || cert.body.TotalAmount == 0 {
		return true
	}
	return state.DoS(
		common.DoSModerate,
		TotalAmountWithoutBackwardTransfersError{
			TotalAmount: cert.body.TotalAmount,
		},
		common.RejectInvalid,
		RejectReasonInvalid,
	)
}

// CheckSerializedSize rejects certificates whose canonical encoding exceeds MaxCertSize
func CheckSerializedSize(
	cert *Certificate,
	state *common.ValidationState,
) bool {
	size := cert.SerializedSize()
	if size <= MaxCertSize {
		return true
	}
	return state.DoS(
		common.DoSMax,
		OversizeError{Size: size, MaxSize: MaxCertSize},
		common.RejectInvalid,
		RejectReasonOversize,
	)
}

// CheckFeeAmount validates the declared fee against the value spent by the
// certificate. Certificates are not funded by inputs yet, so every fee passes.
func CheckFeeAmount(
	cert *Certificate,
	totalInputAmount common.Amount,
	state *common.ValidationState,
) bool {
	return true
}

func checkFeeAmountRule(
	cert *Certificate,
	state *common.ValidationState,
) bool {
	// No inputs can be spent, so the input total is always zero
	return CheckFeeAmount(cert, 0, state)
}
