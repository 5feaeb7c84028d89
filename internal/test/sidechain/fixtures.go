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
)

// Hash returns a hash with every byte set to b
func Hash(b byte) common.Blake2b256 {
	var ret common.Blake2b256
	for i := range ret {
		ret[i] = b
	}
	return ret
}

// NewValidMutableCertificate returns a builder for a certificate that passes
// every structural rule: two backward transfers whose sum is the total amount
func NewValidMutableCertificate(scId common.Blake2b256) *certificate.MutableCertificate {
	return certificate.NewMutableCertificate().
		SetVersion(-5).
		SetSidechainId(scId).
		SetEpochNumber(3).
		SetEndEpochBlockHash(Hash(0xEE)).
		SetNonce(Hash(0x01)).
		AddBackwardTransfer(10*common.Coin, []byte{0x76, 0xa9, 0x14}).
		AddBackwardTransfer(5*common.Coin, []byte{0x76, 0xa9, 0x15}).
		SetTotalAmount(15 * common.Coin)
}

// NewValidCertificate seals NewValidMutableCertificate
func NewValidCertificate(scId common.Blake2b256) *certificate.Certificate {
	return NewValidMutableCertificate(scId).Seal()
}
