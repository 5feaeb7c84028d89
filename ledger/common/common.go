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
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gosidechain/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const Blake2b256Size = 32

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

// NewBlake2b256FromHex parses a hex-encoded hash, which must be exactly Blake2b256Size bytes
func NewBlake2b256FromHex(hexStr string) (Blake2b256, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return Blake2b256{}, fmt.Errorf("invalid hash hex: %w", err)
	}
	if len(data) != Blake2b256Size {
		return Blake2b256{}, fmt.Errorf(
			"invalid hash length: expected %d bytes, got %d",
			Blake2b256Size,
			len(data),
		)
	}
	return NewBlake2b256(data), nil
}

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) IsZero() bool {
	return b == Blake2b256{}
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b Blake2b256) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the hash is zero-valued
	hashBytes := make([]byte, Blake2b256Size)
	copy(hashBytes, b[:])
	return cbor.Encode(hashBytes)
}

func (b *Blake2b256) UnmarshalCBOR(cborData []byte) error {
	var tmpData []byte
	if _, err := cbor.Decode(cborData, &tmpData); err != nil {
		return err
	}
	if len(tmpData) != Blake2b256Size {
		return fmt.Errorf(
			"invalid hash length: expected %d bytes, got %d",
			Blake2b256Size,
			len(tmpData),
		)
	}
	copy(b[:], tmpData)
	return nil
}

func (b Blake2b256) Bech32(prefix string) string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(b[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	tmpHash, err := blake2b.New(Blake2b256Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return Blake2b256(tmpHash.Sum(nil))
}
