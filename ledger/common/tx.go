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

package common

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gosidechain/cbor"
)

// HasIdentity is implemented by every ledger entry with a content-derived hash
type HasIdentity interface {
	Hash() Blake2b256
}

// HasOutputs is implemented by every ledger entry that creates value-bearing outputs
type HasOutputs interface {
	Outputs() []TransactionOutput
}

// LedgerEntry is the capability set shared by ordinary transfers and certificates
type LedgerEntry interface {
	HasIdentity
	HasOutputs
	Cbor() []byte
}

type TransactionInput struct {
	cbor.StructAsArray
	TxId        Blake2b256
	OutputIndex uint32
}

func NewTransactionInput(txId Blake2b256, index uint32) TransactionInput {
	return TransactionInput{
		TxId:        txId,
		OutputIndex: index,
	}
}

func (i TransactionInput) Id() Blake2b256 {
	return i.TxId
}

func (i TransactionInput) Index() uint32 {
	return i.OutputIndex
}

func (i TransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId.String(), i.OutputIndex)
}

type TransactionOutput struct {
	cbor.StructAsArray
	Value  Amount
	Script []byte
	// IsFromBackwardTransfer marks a payout from the sidechain back to this chain
	IsFromBackwardTransfer bool
}

func (o TransactionOutput) Amount() Amount {
	return o.Value
}

func (o TransactionOutput) Clone() TransactionOutput {
	ret := o
	if o.Script != nil {
		ret.Script = make([]byte, len(o.Script))
		copy(ret.Script, o.Script)
	}
	return ret
}

func (o TransactionOutput) String() string {
	return fmt.Sprintf(
		"TxOut(nValue=%s, script=%s, isFromBackwardTransfer=%t)",
		o.Value.String(),
		hex.EncodeToString(o.Script),
		o.IsFromBackwardTransfer,
	)
}
