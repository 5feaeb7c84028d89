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
package miner_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gosidechain/cbor"
	"github.com/blinklabs-io/gosidechain/internal/test/sidechain"
	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/blinklabs-io/gosidechain/miner"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCertificateKeepsListsAligned(t *testing.T) {
	tmpl := miner.NewBlockTemplate(10, slogt.New(t))
	require.NoError(t, tmpl.CheckAlignment())
	for i := 0; i < 5; i++ {
		cert := test_sidechain.NewValidMutableCertificate(test_sidechain.Hash(byte(i))).Seal()
		tmpl.AppendCertificate(cert, common.Amount(i*100), uint32(i))
		assert.Equal(t, i+1, tmpl.Len())
		assert.Len(t, tmpl.CertFees, i+1)
		assert.Len(t, tmpl.CertSigOps, i+1)
		assert.Same(t, cert, tmpl.Block.Certificates[i])
		assert.Equal(t, common.Amount(i*100), tmpl.CertFees[i])
		assert.Equal(t, uint32(i), tmpl.CertSigOps[i])
	}
	assert.NoError(t, tmpl.CheckAlignment())
	assert.Equal(t, common.Amount(1000), tmpl.TotalCertFees())
	assert.Equal(t, uint64(10), tmpl.TotalCertSigOps())
}

func TestCheckAlignmentDetectsMismatch(t *testing.T) {
	tmpl := miner.NewBlockTemplate(10, nil)
	tmpl.AppendCertificate(test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01)), 0, 0)
	tmpl.CertFees = append(tmpl.CertFees, 1)
	err := tmpl.CheckAlignment()
	var target miner.MisalignedTemplateError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 1, target.Certificates)
	assert.Equal(t, 2, target.Fees)
	assert.Equal(t, 1, target.SigOps)
}

func TestBlockScCommitment(t *testing.T) {
	scId := test_sidechain.Hash(0x07)
	c1 := test_sidechain.NewValidMutableCertificate(scId).SetEpochNumber(1).Seal()
	c2 := test_sidechain.NewValidMutableCertificate(scId).SetEpochNumber(2).Seal()
	other := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x08))
	block := &miner.Block{}
	block.AddCertificate(c1)
	block.AddCertificate(other)
	block.AddCertificate(c2)
	m := block.ScCommitment()
	hash, ok := m.Lookup(scId)
	require.True(t, ok)
	assert.Equal(t, c2.Hash(), hash)
	assert.Equal(t, 2, m.Len())
}

func TestBlockCheckCertificates(t *testing.T) {
	authority := &test_sidechain.MockActivationAuthority{ForkHeight: 5}
	good := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	bad := certificate.NewMutableCertificate().SetTotalAmount(1).Seal()

	block := &miner.Block{Height: 5, Certificates: []*certificate.Certificate{good, good}}
	var state common.ValidationState
	assert.Equal(t, -1, block.CheckCertificates(authority, &state))
	assert.True(t, state.IsValid())

	block.AddCertificate(bad)
	assert.Equal(t, 2, block.CheckCertificates(authority, &state))
	assert.Equal(t, certificate.RejectReasonInvalid, state.RejectReason())

	// Inside a block, an early certificate costs the full penalty
	early := &miner.Block{Height: 4, Certificates: []*certificate.Certificate{good}}
	state = common.ValidationState{}
	assert.Equal(t, 0, early.CheckCertificates(authority, &state))
	assert.Equal(t, common.DoSMax, state.DoSLevel())
	assert.Equal(t, certificate.RejectReasonVersion, state.RejectReason())
}

func TestBlockCertificatesCborRoundTrip(t *testing.T) {
	block := &miner.Block{}
	block.AddCertificate(test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01)))
	block.AddCertificate(test_sidechain.NewValidCertificate(test_sidechain.Hash(0x02)))
	data, err := block.CertificatesCbor()
	require.NoError(t, err)
	n, err := cbor.ListLength(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	decoded := &miner.Block{}
	require.NoError(t, decoded.DecodeCertificates(data))
	require.Len(t, decoded.Certificates, 2)
	for i := range block.Certificates {
		assert.Equal(t, block.Certificates[i].Hash(), decoded.Certificates[i].Hash())
	}
	assert.Error(t, decoded.DecodeCertificates([]byte{0x81, 0x00}))
}

func TestBlockTemplateLiteral(t *testing.T) {
	cert := test_sidechain.NewValidCertificate(test_sidechain.Hash(0x01))
	tmpl := &miner.BlockTemplate{Block: &miner.Block{Height: 1}}
	assert.NotPanics(t, func() {
		tmpl.AppendCertificate(cert, 7, 2)
	})
	assert.Equal(t, 1, tmpl.Len())
	assert.NoError(t, tmpl.CheckAlignment())
	assert.Equal(t, common.Amount(7), tmpl.TotalCertFees())

	var empty miner.BlockTemplate
	assert.Equal(t, 0, empty.Len())
	assert.NoError(t, empty.CheckAlignment())
	empty.AppendCertificate(cert, 0, 0)
	require.NotNil(t, empty.Block)
	assert.Same(t, cert, empty.Block.Certificates[0])
}
