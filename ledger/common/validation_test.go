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

package common_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationStateDefaultValid(t *testing.T) {
	var state common.ValidationState
	assert.True(t, state.IsValid())
	assert.False(t, state.IsInvalid())
	assert.False(t, state.IsError())
	assert.NoError(t, state.Err())
}

func TestValidationStateDoS(t *testing.T) {
	var state common.ValidationState
	cause := errors.New("vin not empty")
	ret := state.DoS(
		common.DoSModerate,
		cause,
		common.RejectInvalid,
		"bad-cert-invalid",
	)
	assert.False(t, ret)
	assert.True(t, state.IsInvalid())
	assert.Equal(t, common.DoSModerate, state.DoSLevel())
	assert.Equal(t, common.RejectInvalid, state.RejectCode())
	assert.Equal(t, "bad-cert-invalid", state.RejectReason())
	assert.Equal(t, cause, state.Cause())

	err := state.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRejected)
	assert.ErrorIs(t, err, cause)
	var rejectErr *common.RejectError
	require.ErrorAs(t, err, &rejectErr)
	assert.Equal(t, common.RejectInvalid, rejectErr.Code)
	assert.Equal(t, common.DoSModerate, rejectErr.DoSLevel)
	assert.False(t, rejectErr.Internal)
}

func TestValidationStateFirstRejectionWins(t *testing.T) {
	var state common.ValidationState
	state.DoS(common.DoSModerate, nil, common.RejectInvalid, "first")
	state.DoS(common.DoSMax, nil, common.RejectNonstandard, "second")
	state.Error("third")
	assert.True(t, state.IsInvalid())
	assert.Equal(t, common.DoSModerate, state.DoSLevel())
	assert.Equal(t, common.RejectInvalid, state.RejectCode())
	assert.Equal(t, "first", state.RejectReason())
}

func TestValidationStateInvalidHasNoPenalty(t *testing.T) {
	var state common.ValidationState
	state.Invalid(nil, common.RejectDuplicate, "txn-already-in-mempool")
	assert.True(t, state.IsInvalid())
	assert.Equal(t, common.DoSNone, state.DoSLevel())
}

func TestValidationStateError(t *testing.T) {
	var state common.ValidationState
	state.Error("coins view unavailable")
	assert.True(t, state.IsError())
	assert.False(t, state.IsInvalid())
	var rejectErr *common.RejectError
	require.ErrorAs(t, state.Err(), &rejectErr)
	assert.True(t, rejectErr.Internal)
	assert.Equal(t, "internal error: coins view unavailable", rejectErr.Error())
}

func TestRejectCodeString(t *testing.T) {
	assert.Equal(t, "invalid", common.RejectInvalid.String())
	assert.Equal(t, "nonstandard", common.RejectNonstandard.String())
	assert.Equal(t, "unknown(0x7f)", common.RejectCode(0x7f).String())
}
