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

// Package miner attaches certificates to candidate blocks and block templates
package miner

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gosidechain/cbor"
	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// Block is the certificate-carrying part of a candidate or connected block
type Block struct {
	Height       int32
	Certificates []*certificate.Certificate
}

// AddCertificate appends cert to the block's certificate list
func (b *Block) AddCertificate(cert *certificate.Certificate) {
	b.Certificates = append(b.Certificates, cert)
}

// ScCommitment builds the commitment map for the block by recording every
// certificate in block order
func (b *Block) ScCommitment() *certificate.CommitmentMap {
	ret := certificate.NewCommitmentMap()
	ret.RecordAll(b.Certificates)
	return ret
}

// CheckCertificates runs the structural rules and the contextual check on
// every certificate in block order. It stops at the first failure and
// returns the index of the failing certificate, or -1.
func (b *Block) CheckCertificates(
	authority common.ActivationAuthority,
	state *common.ValidationState,
) int {
	for idx, cert := range b.Certificates {
		if !certificate.CheckCertificate(cert, state) {
			return idx
		}
		if !certificate.ContextualCheck(
			cert,
			authority,
			b.Height,
			common.DoSMax,
			state,
		) {
			return idx
		}
	}
	return -1
}

// CertificatesCbor encodes the certificate list as a CBOR array
func (b *Block) CertificatesCbor() ([]byte, error) {
	tmp := make([]cbor.RawMessage, len(b.Certificates))
	for idx, cert := range b.Certificates {
		tmp[idx] = cert.Cbor()
	}
	return cbor.Encode(tmp)
}

// DecodeCertificates decodes a CBOR array of certificates into the block,
// replacing any existing list
func (b *Block) DecodeCertificates(cborData []byte) error {
	var tmp []cbor.RawMessage
	if err := cbor.DecodeStrict(cborData, &tmp); err != nil {
		return fmt.Errorf("decode certificate list: %w", err)
	}
	certs := make([]*certificate.Certificate, 0, len(tmp))
	for idx, raw := range tmp {
		cert, err := certificate.NewCertificateFromCbor(raw)
		if err != nil {
			return fmt.Errorf("decode certificate %d: %w", idx, err)
		}
		certs = append(certs, cert)
	}
	b.Certificates = certs
	return nil
}

// BlockTemplate is a block under construction plus per-certificate fee and
// signature operation accounting. Index i of Block.Certificates, CertFees and
// CertSigOps always describes the same certificate.
type BlockTemplate struct {
	Block      *Block
	CertFees   []common.Amount
	CertSigOps []uint32
	logger     *slog.Logger
}

func NewBlockTemplate(height int32, logger *slog.Logger) *BlockTemplate {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlockTemplate{
		Block:  &Block{Height: height},
		logger: logger,
	}
}

// AppendCertificate adds cert with its fee and sigop count in one step
func (t *BlockTemplate) AppendCertificate(
	cert *certificate.Certificate,
	fee common.Amount,
	sigOps uint32,
) {
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	if t.Block == nil {
		t.Block = &Block{}
	}
	logger.Debug(
		"adding certificate to block template",
		"cert", cert.Hash().String(),
		"fee", fee.String(),
		"sigops", sigOps,
	)
	t.Block.AddCertificate(cert)
	t.CertFees = append(t.CertFees, fee)
	t.CertSigOps = append(t.CertSigOps, sigOps)
}

func (t *BlockTemplate) Len() int {
	if t.Block == nil {
		return 0
	}
	return len(t.Block.Certificates)
}

// CheckAlignment verifies the three certificate lists have the same length
func (t *BlockTemplate) CheckAlignment() error {
	certs := t.Len()
	if len(t.CertFees) == certs && len(t.CertSigOps) == certs {
		return nil
	}
	return MisalignedTemplateError{
		Certificates: certs,
		Fees:         len(t.CertFees),
		SigOps:       len(t.CertSigOps),
	}
}

// TotalCertFees sums the certificate fees
func (t *BlockTemplate) TotalCertFees() common.Amount {
	var ret common.Amount
	for _, fee := range t.CertFees {
		ret += fee
	}
	return ret
}

// TotalCertSigOps sums the certificate signature operations
func (t *BlockTemplate) TotalCertSigOps() uint64 {
	var ret uint64
	for _, sigOps := range t.CertSigOps {
		ret += uint64(sigOps)
	}
	return ret
}

type MisalignedTemplateError struct {
	Certificates int
	Fees         int
	SigOps       int
}

func (e MisalignedTemplateError) Error() string {
	return fmt.Sprintf(
		"block template lists misaligned: %d certificate(s), %d fee(s), %d sigop count(s)",
		e.Certificates,
		e.Fees,
		e.SigOps,
	)
}
