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
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gosidechain/cbor"
	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/jinzhu/copier"
)

const (
	// EpochNull marks an unset epoch number
	EpochNull int32 = -1

	MaxBlockSize = 2_000_000
	MaxCertSize  = 150_000

	// MaxPriority is the priority assigned to every certificate, matching shielded transfers
	MaxPriority float64 = 1e16

	// SidechainIdBech32Prefix is used when rendering sidechain ids for humans
	SidechainIdBech32Prefix = "sc"
)

// Fails to compile unless MaxCertSize < MaxBlockSize
const _ = uint(MaxBlockSize - MaxCertSize - 1)

// Compile-time checks that Certificate implements the shared ledger entry capabilities
var (
	_ common.LedgerEntry = (*Certificate)(nil)
	_ common.HasIdentity = (*MutableCertificate)(nil)
)

// CertificateBody is the field layout shared by Certificate and
// MutableCertificate. Its canonical CBOR encoding is the input to the
// identity hash and the size limit.
type CertificateBody struct {
	cbor.StructAsArray
	Version           int32
	SidechainId       common.Blake2b256
	EpochNumber       int32
	EndEpochBlockHash common.Blake2b256
	TotalAmount       common.Amount
	Fee               common.Amount
	Nonce             common.Blake2b256
	// Inputs must always be empty; it exists so that an input set can be
	// represented and rejected
	Inputs  []common.TransactionInput
	Outputs []common.TransactionOutput
}

func (b *CertificateBody) encode() ([]byte, error) {
	return cbor.Encode(b)
}

// Certificate is a sealed sidechain epoch certificate. It has no mutation
// path; use NewMutableCertificateFrom to derive a modified copy. A
// Certificate is safe for concurrent readers.
type Certificate struct {
	body     CertificateBody
	hash     common.Blake2b256
	cborData []byte
}

// Seal copies every field from the builder and computes the identity hash.
// The builder may be reused or discarded afterwards without affecting the
// returned certificate.
func Seal(m *MutableCertificate) *Certificate {
	c := &Certificate{}
	if err := copyBody(&c.body, &m.CertificateBody); err != nil {
		panic(fmt.Sprintf("unexpected error copying certificate body: %s", err))
	}
	cborData, err := c.body.encode()
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding certificate body: %s", err),
		)
	}
	c.cborData = cborData
	c.hash = common.Blake2b256Hash(cborData)
	return c
}

// NewCertificateFromCbor decodes a certificate and seals it. The identity
// hash is computed over the canonical re-encoding, so non-canonical input
// is rejected.
func NewCertificateFromCbor(cborData []byte) (*Certificate, error) {
	m := &MutableCertificate{}
	if err := cbor.DecodeStrict(cborData, &m.CertificateBody); err != nil {
		return nil, fmt.Errorf("decode certificate: %w", err)
	}
	c := Seal(m)
	if !bytes.Equal(c.cborData, cborData) {
		return nil, NonCanonicalEncodingError{Hash: c.hash}
	}
	return c, nil
}

// NewCertificateFromHex decodes a hex-encoded certificate
func NewCertificateFromHex(hexStr string) (*Certificate, error) {
	cborData, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return nil, fmt.Errorf("decode certificate hex: %w", err)
	}
	return NewCertificateFromCbor(cborData)
}

func copyBody(dst *CertificateBody, src *CertificateBody) error {
	return copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
}

// Hash returns the identity hash computed at seal time
func (c *Certificate) Hash() common.Blake2b256 {
	return c.hash
}

func (c *Certificate) Version() int32 {
	return c.body.Version
}

func (c *Certificate) SidechainId() common.Blake2b256 {
	return c.body.SidechainId
}

func (c *Certificate) EpochNumber() int32 {
	return c.body.EpochNumber
}

func (c *Certificate) EndEpochBlockHash() common.Blake2b256 {
	return c.body.EndEpochBlockHash
}

func (c *Certificate) TotalAmount() common.Amount {
	return c.body.TotalAmount
}

func (c *Certificate) Fee() common.Amount {
	return c.body.Fee
}

func (c *Certificate) Nonce() common.Blake2b256 {
	return c.body.Nonce
}

// Inputs returns a copy of the input set
func (c *Certificate) Inputs() []common.TransactionInput {
	ret := make([]common.TransactionInput, len(c.body.Inputs))
	copy(ret, c.body.Inputs)
	return ret
}

// Outputs returns a deep copy of the outputs
func (c *Certificate) Outputs() []common.TransactionOutput {
	ret := make([]common.TransactionOutput, len(c.body.Outputs))
	for idx, out := range c.body.Outputs {
		ret[idx] = out.Clone()
	}
	return ret
}

// Cbor returns a copy of the canonical encoding
func (c *Certificate) Cbor() []byte {
	ret := make([]byte, len(c.cborData))
	copy(ret, c.cborData)
	return ret
}

func (c *Certificate) MarshalCBOR() ([]byte, error) {
	return c.Cbor(), nil
}

// SerializedSize returns the length of the canonical encoding
func (c *Certificate) SerializedSize() int {
	return len(c.cborData)
}

// ModifiedSize returns the size used for priority calculations. Certificates
// have no inputs to discount, so this is the serialized size.
func (c *Certificate) ModifiedSize(_ int) int {
	return c.SerializedSize()
}

// ValueOfBackwardTransfers sums the value of all backward transfer outputs
func (c *Certificate) ValueOfBackwardTransfers() common.Amount {
	var ret common.Amount
	for _, out := range c.body.Outputs {
		if out.IsFromBackwardTransfer {
			ret += out.Value
		}
	}
	return ret
}

// NumBackwardTransfers counts the backward transfer outputs
func (c *Certificate) NumBackwardTransfers() int {
	ret := 0
	for _, out := range c.body.Outputs {
		if out.IsFromBackwardTransfer {
			ret++
		}
	}
	return ret
}

// FeeAmount returns the fee paid for inclusion. Certificates are not funded
// by inputs yet, so this is always zero regardless of the declared fee.
func (c *Certificate) FeeAmount(_ common.Amount) common.Amount {
	return 0
}

// CheckFinal reports whether the certificate is final. Certificates have no
// lock time, so they always are.
func (c *Certificate) CheckFinal(_ int) bool {
	return true
}

// Priority returns the mempool priority of the certificate
func (c *Certificate) Priority(_ int32) float64 {
	return MaxPriority
}

// EncodeHex returns the hex form of the canonical encoding
func (c *Certificate) EncodeHex() string {
	return hex.EncodeToString(c.cborData)
}

func (c *Certificate) String() string {
	var sb strings.Builder
	fmt.Fprintf(
		&sb,
		"Certificate(hash=%s, ver=%d, scId=%s, epoch=%d, vout.size=%d, totAmount=%s, fee=%s)\n",
		c.hash.String()[:10],
		c.body.Version,
		c.body.SidechainId.Bech32(SidechainIdBech32Prefix),
		c.body.EpochNumber,
		len(c.body.Outputs),
		c.body.TotalAmount.String(),
		c.body.Fee.String(),
	)
	for _, out := range c.body.Outputs {
		sb.WriteString("    " + out.String() + "\n")
	}
	return sb.String()
}
