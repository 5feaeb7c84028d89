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
package certificate_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gosidechain/forks"
	"github.com/blinklabs-io/gosidechain/internal/test/sidechain"
	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextualCheck(t *testing.T) {
	authority := &test_sidechain.MockActivationAuthority{ForkHeight: 100, VersionVal: -5}
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	testDefs := []struct {
		name     string
		height   int32
		dosLevel int
		valid    bool
	}{
		{name: "before fork in block", height: 99, dosLevel: common.DoSMax},
		{name: "before fork relayed", height: 0, dosLevel: common.DoSModerate},
		{name: "at fork", height: 100, dosLevel: common.DoSMax, valid: true},
		{name: "after fork", height: 5000, dosLevel: common.DoSMax, valid: true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var state common.ValidationState
			ok := certificate.ContextualCheck(cert, authority, testDef.height, testDef.dosLevel, &state)
			assert.Equal(t, testDef.valid, ok)
			if testDef.valid {
				assert.True(t, state.IsValid())
				return
			}
			assert.Equal(t, testDef.dosLevel, state.DoSLevel())
			assert.Equal(t, common.RejectInvalid, state.RejectCode())
			assert.Equal(t, certificate.RejectReasonVersion, state.RejectReason())
			var cause certificate.SidechainsNotSupportedError
			require.True(t, errors.As(state.Cause(), &cause))
			assert.Equal(t, testDef.height, cause.Height)
		})
	}
}

func TestContextualCheckWithSchedule(t *testing.T) {
	schedule, ok := forks.ScheduleByName("regtest")
	require.True(t, ok)
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	var state common.ValidationState
	assert.False(t, certificate.ContextualCheck(cert, schedule, 0, common.DoSMax, &state))
	state = common.ValidationState{}
	assert.True(t, certificate.ContextualCheck(cert, schedule, 1, common.DoSMax, &state))
}

func TestIsStandard(t *testing.T) {
	authority := &test_sidechain.MockActivationAuthority{ForkHeight: 100, VersionVal: 2}
	policy := &test_sidechain.MockOutputPolicy{}
	v2 := test_sidechain.NewValidMutableCertificate(test_sidechain.Hash(0x01)).SetVersion(2).Seal()
	v1 := certificate.NewMutableCertificateFrom(v2).SetVersion(1).Seal()

	ok, reason := certificate.IsStandard(v2, authority, policy, 100)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = certificate.IsStandard(v1, authority, policy, 100)
	assert.False(t, ok)
	assert.Equal(t, certificate.NonStandardReasonVersion, reason)

	ok, reason = certificate.IsStandard(v2, authority, policy, 99)
	assert.False(t, ok)
	assert.Equal(t, certificate.NonStandardReasonVersion, reason)

	rejecting := &test_sidechain.MockOutputPolicy{RejectReason: "scriptpubkey"}
	ok, reason = certificate.IsStandard(v2, authority, rejecting, 100)
	assert.False(t, ok)
	assert.Equal(t, "scriptpubkey", reason)
}

func TestIsStandardPassesOutputsAndHeight(t *testing.T) {
	authority := &test_sidechain.MockActivationAuthority{ForkHeight: 0, VersionVal: -5}
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	var gotHeight int32
	var gotOutputs []common.TransactionOutput
	policy := certificate.OutputPolicyFunc(
		func(outputs []common.TransactionOutput, height int32) (bool, string) {
			gotOutputs = outputs
			gotHeight = height
			return true, ""
		},
	)
	ok, _ := certificate.IsStandard(cert, authority, policy, 42)
	assert.True(t, ok)
	assert.Equal(t, int32(42), gotHeight)
	assert.Equal(t, cert.Outputs(), gotOutputs)
}

func TestIsApplicableToState(t *testing.T) {
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	var state common.ValidationState
	assert.True(t, certificate.IsApplicableToState(cert, &test_sidechain.MockCoinsView{}, 10, &state))
	assert.True(t, state.IsValid())

	state = common.ValidationState{}
	assert.False(t, certificate.IsApplicableToState(cert, &test_sidechain.MockCoinsView{Rejected: true}, 10, &state))
	assert.True(t, state.IsInvalid())

	state = common.ValidationState{}
	assert.False(t, certificate.IsApplicableToState(cert, nil, 10, &state))
	assert.True(t, state.IsError())
}

func TestMissingCollaborators(t *testing.T) {
	authority := &test_sidechain.MockActivationAuthority{ForkHeight: 0, VersionVal: -5}
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))

	ok, reason := certificate.IsStandard(cert, authority, nil, 10)
	assert.False(t, ok)
	assert.Equal(t, certificate.NonStandardReasonNoOutputPolicy, reason)

	ok, reason = certificate.IsStandard(cert, nil, &test_sidechain.MockOutputPolicy{}, 10)
	assert.False(t, ok)
	assert.Equal(t, certificate.NonStandardReasonNoAuthority, reason)

	var state common.ValidationState
	assert.False(t, certificate.ContextualCheck(cert, nil, 10, common.DoSMax, &state))
	assert.True(t, state.IsError())
}
