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

// Reject reasons relayed to peers
const (
	RejectReasonInvalid  = "bad-cert-invalid"
	RejectReasonOversize = "bad-cert-oversize"
	RejectReasonVersion  = "bad-cert-version"

	// Standardness reason for both an inactive feature and a version mismatch
	NonStandardReasonVersion = "version"
	// Standardness reasons when a relay collaborator is missing
	NonStandardReasonNoAuthority    = "no activation authority"
	NonStandardReasonNoOutputPolicy = "no output policy"
)

type InputsNotEmptyError struct {
	Count int
}

func (e InputsNotEmptyError) Error() string {
	return fmt.Sprintf("vin not empty: found %d input(s)", e.Count)
}

type TotalAmountWithoutBackwardTransfersError struct {
	TotalAmount common.Amount
}

func (e TotalAmountWithoutBackwardTransfersError) Error() string {
	return fmt.Sprintf(
		"no backward transfers but total amount is %s",
		e.TotalAmount.String(),
	)
}

type OversizeError struct {
	Size    int
	MaxSize int
}

func (e OversizeError) Error() string {
	return fmt.Sprintf(
		"size limits failed: size %d, maximum %d",
		e.Size,
		e.MaxSize,
	)
}

// EpochNotSetError reports a certificate still carrying EpochNull
type EpochNotSetError struct{}

func (EpochNotSetError) Error() string {
	return "certificate epoch number is not set"
}

type SidechainsNotSupportedError struct {
	Height int32
}

func (e SidechainsNotSupportedError) Error() string {
	return fmt.Sprintf("sidechains are not supported at height %d", e.Height)
}

type NonCanonicalEncodingError struct {
	Hash common.Blake2b256
}

func (e NonCanonicalEncodingError) Error() string {
	return fmt.Sprintf(
		"certificate %s is not canonically encoded",
		e.Hash.String(),
	)
}
