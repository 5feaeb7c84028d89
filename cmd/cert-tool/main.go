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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/spf13/cobra"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

func NewRootCmd(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cert-tool SUBCOMMAND",
		Short: "Inspect, build and validate sidechain certificates",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,

		Long: `cert-tool works on hex-encoded canonical certificate CBOR.

Commands that take a certificate read it from the first argument, or from
stdin when the argument is "-" or missing.
`,
	}

	rootCmd.AddCommand(
		newDecodeCmd(logger),
		newHashCmd(logger),
		newValidateCmd(logger),
		newBuildCmd(logger),
	)

	return rootCmd
}

// readCertificate loads a certificate from args[0] or stdin
func readCertificate(
	cmd *cobra.Command,
	args []string,
) (*certificate.Certificate, error) {
	var hexStr string
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		hexStr = string(data)
	} else {
		hexStr = args[0]
	}
	hexStr = strings.TrimSpace(hexStr)
	if hexStr == "" {
		return nil, errors.New("no certificate given")
	}
	return certificate.NewCertificateFromHex(hexStr)
}
