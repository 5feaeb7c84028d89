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
package test_sidechain

import (
	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/blinklabs-io/gosidechain/mempool"
)

// Compile-time checks that the mocks implement their interfaces
var (
	_ common.ActivationAuthority = (*MockActivationAuthority)(nil)
	_ certificate.OutputPolicy   = (*MockOutputPolicy)(nil)
	_ certificate.CoinsView      = (*MockCoinsView)(nil)
	_ mempool.Pool               = (*MockPool)(nil)
)

// MockActivationAuthority activates sidechains from ForkHeight and mandates
// VersionVal from then on. Either behavior can be overridden with a Func field.
type MockActivationAuthority struct {
	ForkHeight int32
	VersionVal int32
	// AreSidechainsSupportedFunc optionally overrides the fork height comparison
	AreSidechainsSupportedFunc func(int32) bool
	// CertificateVersionFunc optionally overrides the returned version
	CertificateVersionFunc func(int32) int32
}

func (m *MockActivationAuthority) AreSidechainsSupported(height int32) bool {
	if m.AreSidechainsSupportedFunc != nil {
		return m.AreSidechainsSupportedFunc(height)
	}
	return height >= m.ForkHeight
}

func (m *MockActivationAuthority) CertificateVersion(height int32) int32 {
	if m.CertificateVersionFunc != nil {
		return m.CertificateVersionFunc(height)
	}
	return m.VersionVal
}

// MockOutputPolicy accepts every output set unless RejectReason is set
type MockOutputPolicy struct {
	RejectReason string
	// OutputsAreStandardFunc optionally overrides the fixed answer
	OutputsAreStandardFunc func([]common.TransactionOutput, int32) (bool, string)
}

func (m *MockOutputPolicy) OutputsAreStandard(
	outputs []common.TransactionOutput,
	height int32,
) (bool, string) {
	if m.OutputsAreStandardFunc != nil {
		return m.OutputsAreStandardFunc(outputs, height)
	}
	if m.RejectReason != "" {
		return false, m.RejectReason
	}
	return true, ""
}

// MockCoinsView reports every certificate as applicable unless Rejected is set
type MockCoinsView struct {
	Rejected                    bool
	IsCertApplicableToStateFunc func(*certificate.Certificate, int32, *common.ValidationState) bool
}

func (m *MockCoinsView) IsCertApplicableToState(
	cert *certificate.Certificate,
	height int32,
	state *common.ValidationState,
) bool {
	if m.IsCertApplicableToStateFunc != nil {
		return m.IsCertApplicableToStateFunc(cert, height, state)
	}
	if m.Rejected {
		return state.DoS(
			common.DoSNone,
			nil,
			common.RejectInvalid,
			"bad-cert-not-applicable",
		)
	}
	return true
}

// MockPool records every certificate offered to it. It accepts them unless
// AcceptCertificateFunc says otherwise.
type MockPool struct {
	Offered               []*certificate.Certificate
	LastLimitFree         bool
	LastRejectAbsurdFee   bool
	AcceptCertificateFunc func(*common.ValidationState, *certificate.Certificate) bool
}

func (m *MockPool) AcceptCertificate(
	state *common.ValidationState,
	cert *certificate.Certificate,
	limitFree bool,
	rejectAbsurdFee bool,
) bool {
	m.Offered = append(m.Offered, cert)
	m.LastLimitFree = limitFree
	m.LastRejectAbsurdFee = rejectAbsurdFee
	if m.AcceptCertificateFunc != nil {
		return m.AcceptCertificateFunc(state, cert)
	}
	return true
}
