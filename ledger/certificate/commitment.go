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
	"slices"

	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// CommitmentMap collects the latest certificate hash per sidechain for a
// single block construction or validation pass. It feeds the cross-chain
// commitment digest. The zero value is an empty map ready for use. It is not
// safe for concurrent use; each pass must own its own instance.
type CommitmentMap struct {
	Hashes  map[common.Blake2b256]common.Blake2b256
	Touched map[common.Blake2b256]struct{}
}

func NewCommitmentMap() *CommitmentMap {
	return &CommitmentMap{
		Hashes:  make(map[common.Blake2b256]common.Blake2b256),
		Touched: make(map[common.Blake2b256]struct{}),
	}
}

// Record stores the certificate hash for its sidechain, overwriting any
// earlier entry. The result depends on call order: callers must record
// certificates in block order so every node ends with the same map.
func (m *CommitmentMap) Record(cert *Certificate) {
	if m.Hashes == nil {
		m.Hashes = make(map[common.Blake2b256]common.Blake2b256)
	}
	if m.Touched == nil {
		m.Touched = make(map[common.Blake2b256]struct{})
	}
	AddToScCommitment(m.Hashes, m.Touched, cert)
}

// RecordAll records the certificates in slice order
func (m *CommitmentMap) RecordAll(certs []*Certificate) {
	for _, cert := range certs {
		m.Record(cert)
	}
}

// Lookup returns the recorded hash for a sidechain
func (m *CommitmentMap) Lookup(
	scId common.Blake2b256,
) (common.Blake2b256, bool) {
	hash, ok := m.Hashes[scId]
	return hash, ok
}

func (m *CommitmentMap) Len() int {
	return len(m.Hashes)
}

// SortedSidechainIds returns the touched sidechain ids in ascending byte order
func (m *CommitmentMap) SortedSidechainIds() []common.Blake2b256 {
	ret := make([]common.Blake2b256, 0, len(m.Touched))
	for scId := range m.Touched {
		ret = append(ret, scId)
	}
	slices.SortFunc(ret, func(a, b common.Blake2b256) int {
		return bytes.Compare(a[:], b[:])
	})
	return ret
}

// AddToScCommitment records cert into caller-owned maps, with the same
// last-write-wins behavior as CommitmentMap.Record
func AddToScCommitment(
	hashes map[common.Blake2b256]common.Blake2b256,
	touched map[common.Blake2b256]struct{},
	cert *Certificate,
) {
	touched[cert.SidechainId()] = struct{}{}
	hashes[cert.SidechainId()] = cert.Hash()
}
