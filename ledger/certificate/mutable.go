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
	"fmt"

	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// MutableCertificate is the staging form of a Certificate. Fields may be
// changed freely and are not validated until the sealed certificate goes
// through the validation rules. It is not safe for concurrent use.
type MutableCertificate struct {
	CertificateBody
}

func NewMutableCertificate() *MutableCertificate {
	return &MutableCertificate{
		CertificateBody: CertificateBody{
			EpochNumber: EpochNull,
		},
	}
}

// NewMutableCertificateFrom returns a builder holding a deep copy of the
// certificate's fields
func NewMutableCertificateFrom(c *Certificate) *MutableCertificate {
	m := &MutableCertificate{}
	if err := copyBody(&m.CertificateBody, &c.body); err != nil {
		panic(fmt.Sprintf("unexpected error copying certificate body: %s", err))
	}
	return m
}

// Hash computes the identity hash of the current field values. Nothing is cached.
func (m *MutableCertificate) Hash() common.Blake2b256 {
	cborData, err := m.Cbor()
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding certificate body: %s", err),
		)
	}
	return common.Blake2b256Hash(cborData)
}

// Cbor returns the canonical encoding of the current field values
func (m *MutableCertificate) Cbor() ([]byte, error) {
	return m.encode()
}

func (m *MutableCertificate) Seal() *Certificate {
	return Seal(m)
}

func (m *MutableCertificate) SetVersion(version int32) *MutableCertificate {
	m.Version = version
	return m
}

func (m *MutableCertificate) SetSidechainId(
	scId common.Blake2b256,
) *MutableCertificate {
	m.SidechainId = scId
	return m
}

func (m *MutableCertificate) SetEpochNumber(epoch int32) *MutableCertificate {
	m.EpochNumber = epoch
	return m
}

func (m *MutableCertificate) SetEndEpochBlockHash(
	hash common.Blake2b256,
) *MutableCertificate {
	m.EndEpochBlockHash = hash
	return m
}

func (m *MutableCertificate) SetTotalAmount(
	amount common.Amount,
) *MutableCertificate {
	m.TotalAmount = amount
	return m
}

func (m *MutableCertificate) SetFee(fee common.Amount) *MutableCertificate {
	m.Fee = fee
	return m
}

func (m *MutableCertificate) SetNonce(
	nonce common.Blake2b256,
) *MutableCertificate {
	m.Nonce = nonce
	return m
}

func (m *MutableCertificate) AddInput(
	input common.TransactionInput,
) *MutableCertificate {
	m.Inputs = append(m.Inputs, input)
	return m
}

func (m *MutableCertificate) AddOutput(
	output common.TransactionOutput,
) *MutableCertificate {
	m.Outputs = append(m.Outputs, output)
	return m
}

// AddBackwardTransfer appends a backward transfer output paying value to script
func (m *MutableCertificate) AddBackwardTransfer(
	value common.Amount,
	script []byte,
) *MutableCertificate {
	return m.AddOutput(
		common.TransactionOutput{
			Value:                  value,
			Script:                 script,
			IsFromBackwardTransfer: true,
		},
	)
}
