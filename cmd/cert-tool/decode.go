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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gosidechain/cbor"
	"github.com/spf13/cobra"
)

func newDecodeCmd(logger *slog.Logger) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "decode [HEX|-]",
		Short: "Print a certificate in human-readable form",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cert, err := readCertificate(cmd, args)
			if err != nil {
				return err
			}
			logger.Debug("decoded certificate", "cert", cert.Hash().String())
			out := cmd.OutOrStdout()
			if raw {
				dump, err := cbor.DumpStructure(cert.Cbor())
				if err != nil {
					return fmt.Errorf("dump certificate structure: %w", err)
				}
				_, err = fmt.Fprintln(out, dump)
				return err
			}
			_, err = fmt.Fprint(out, cert.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw CBOR structure instead")
	return cmd
}

func newHashCmd(logger *slog.Logger) *cobra.Command {
	var bech32 bool
	cmd := &cobra.Command{
		Use:   "hash [HEX|-]",
		Short: "Print the identity hash of a certificate",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cert, err := readCertificate(cmd, args)
			if err != nil {
				return err
			}
			hash := cert.Hash().String()
			if bech32 {
				hash = cert.Hash().Bech32("cert")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	cmd.Flags().BoolVar(&bech32, "bech32", false, "print the hash in bech32 form")
	return cmd
}
