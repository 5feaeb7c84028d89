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
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
	"github.com/spf13/cobra"
)

func newBuildCmd(logger *slog.Logger) *cobra.Command {
	var (
		version           int32
		scId              string
		epoch             int32
		endEpochBlockHash string
		fee               int64
		nonce             string
		transfers         []string
		totalAmount       int64
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a certificate from flags and print its hex encoding",
		Long: `build assembles a certificate from flags. Each --bt flag adds a backward
transfer in the form VALUE:SCRIPT_HEX. When --total-amount is not given it is
set to the sum of the backward transfers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := certificate.NewMutableCertificate().
				SetVersion(version).
				SetEpochNumber(epoch).
				SetFee(common.Amount(fee))
			for _, h := range []struct {
				flag  string
				value string
				set   func(common.Blake2b256) *certificate.MutableCertificate
			}{
				{"sidechain-id", scId, m.SetSidechainId},
				{"end-epoch-block-hash", endEpochBlockHash, m.SetEndEpochBlockHash},
				{"nonce", nonce, m.SetNonce},
			} {
				if h.value == "" {
					continue
				}
				hash, err := common.NewBlake2b256FromHex(h.value)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", h.flag, err)
				}
				h.set(hash)
			}
			var sum common.Amount
			for _, bt := range transfers {
				value, script, err := parseBackwardTransfer(bt)
				if err != nil {
					return err
				}
				m.AddBackwardTransfer(value, script)
				sum += value
			}
			if cmd.Flags().Changed("total-amount") {
				m.SetTotalAmount(common.Amount(totalAmount))
			} else {
				m.SetTotalAmount(sum)
			}
			cert := m.Seal()
			logger.Debug(
				"built certificate",
				"cert", cert.Hash().String(),
				"size", cert.SerializedSize(),
			)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cert.EncodeHex())
			return err
		},
	}
	flags := cmd.Flags()
	flags.Int32Var(&version, "version", -5, "certificate version")
	flags.StringVar(&scId, "sidechain-id", "", "sidechain id as 64 hex characters")
	flags.Int32Var(&epoch, "epoch", certificate.EpochNull, "epoch number (required)")
	flags.StringVar(&endEpochBlockHash, "end-epoch-block-hash", "", "hash of the last block of the epoch")
	flags.Int64Var(&fee, "fee", 0, "declared fee in base units")
	flags.StringVar(&nonce, "nonce", "", "certificate nonce as 64 hex characters")
	flags.StringArrayVar(&transfers, "bt", nil, "backward transfer as VALUE:SCRIPT_HEX (repeatable)")
	flags.Int64Var(&totalAmount, "total-amount", 0, "declared total amount in base units")
	_ = cmd.MarkFlagRequired("epoch")
	return cmd
}

func parseBackwardTransfer(s string) (common.Amount, []byte, error) {
	valueStr, scriptHex, ok := strings.Cut(s, ":")
	if !ok {
		return 0, nil, fmt.Errorf("backward transfer %q: expected VALUE:SCRIPT_HEX", s)
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("backward transfer %q: %w", s, err)
	}
	if !common.MoneyRange(common.Amount(value)) {
		return 0, nil, fmt.Errorf("backward transfer %q: value out of range", s)
	}
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return 0, nil, fmt.Errorf("backward transfer %q: %w", s, err)
	}
	return common.Amount(value), script, nil
}
