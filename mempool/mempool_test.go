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
package mempool_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/blinklabs-io/gosidechain/internal/test/sidechain"
	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/blinklabs-io/gosidechain/mempool"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTryAdmitAccepted(t *testing.T) {
	pool := &test_sidechain.MockPool{}
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	ok := mempool.TryAdmit(
		pool,
		cert,
		mempool.AdmitFlags{LimitFree: true, RejectAbsurdFee: false},
		slogt.New(t),
	)
	assert.True(t, ok)
	require.Len(t, pool.Offered, 1)
	assert.Same(t, cert, pool.Offered[0])
	assert.True(t, pool.LastLimitFree)
	assert.False(t, pool.LastRejectAbsurdFee)
}

func TestTryAdmitRejected(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pool := &test_sidechain.MockPool{
		AcceptCertificateFunc: func(state *common.ValidationState, _ *certificate.Certificate) bool {
			return state.DoS(0, nil, common.RejectDuplicate, "txn-already-in-mempool")
		},
	}
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	assert.False(t, mempool.TryAdmit(pool, cert, mempool.AdmitFlags{}, logger))
	out := buf.String()
	assert.Contains(t, out, "pushing certificate to mempool")
	assert.Contains(t, out, "certificate rejected by mempool")
	assert.Contains(t, out, "txn-already-in-mempool")
	assert.Contains(t, out, cert.Hash().String())
}

func TestTryAdmitInconsistentPool(t *testing.T) {
	pool := &test_sidechain.MockPool{
		AcceptCertificateFunc: func(state *common.ValidationState, _ *certificate.Certificate) bool {
			state.Invalid(nil, common.RejectInvalid, "left-behind")
			return true
		},
	}
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	assert.False(t, mempool.TryAdmit(pool, cert, mempool.AdmitFlags{}, slogt.New(t)))
}

func TestTryAdmitRecoversFromPanic(t *testing.T) {
	pool := mempool.PoolFunc(
		func(*common.ValidationState, *certificate.Certificate, bool, bool) bool {
			panic("pool exploded")
		},
	)
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	assert.NotPanics(t, func() {
		assert.False(t, mempool.TryAdmit(pool, cert, mempool.AdmitFlags{}, slogt.New(t)))
	})
}

func TestTryAdmitMissingArguments(t *testing.T) {
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	assert.False(t, mempool.TryAdmit(nil, cert, mempool.AdmitFlags{}, slogt.New(t)))
	pool := &test_sidechain.MockPool{}
	assert.False(t, mempool.TryAdmit(pool, nil, mempool.AdmitFlags{}, nil))
	assert.Empty(t, pool.Offered)
}
