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

// Package mempool hands validated certificates to the pending-entry pool
package mempool

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gosidechain/ledger/certificate"
	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// Pool is the pending-entry pool. Its fee and replacement policy is its own.
type Pool interface {
	AcceptCertificate(
		state *common.ValidationState,
		cert *certificate.Certificate,
		limitFree bool,
		rejectAbsurdFee bool,
	) bool
}

// PoolFunc adapts a plain function to Pool
type PoolFunc func(
	state *common.ValidationState,
	cert *certificate.Certificate,
	limitFree bool,
	rejectAbsurdFee bool,
) bool

func (f PoolFunc) AcceptCertificate(
	state *common.ValidationState,
	cert *certificate.Certificate,
	limitFree bool,
	rejectAbsurdFee bool,
) bool {
	return f(state, cert, limitFree, rejectAbsurdFee)
}

// AdmitFlags carries the pool policy toggles for a single admission
type AdmitFlags struct {
	// LimitFree applies the free-relay rate limiter
	LimitFree bool
	// RejectAbsurdFee refuses entries paying an absurdly high fee
	RejectAbsurdFee bool
}

// TryAdmit hands cert to pool and reports whether it was accepted. It never
// panics, even if the pool does.
func TryAdmit(
	pool Pool,
	cert *certificate.Certificate,
	flags AdmitFlags,
	logger *slog.Logger,
) (accepted bool) {
	if logger == nil {
		logger = slog.Default()
	}
	if pool == nil || cert == nil {
		logger.Warn("cannot admit certificate without a pool and a certificate")
		return false
	}
	hash := cert.Hash().String()
	var state common.ValidationState
	defer func() {
		if r := recover(); r != nil {
			logger.Error(
				"pool panicked while admitting certificate",
				"cert", hash,
				"panic", fmt.Sprint(r),
			)
			accepted = false
		}
	}()
	logger.Debug(
		"pushing certificate to mempool",
		"cert", hash,
		"limit_free", flags.LimitFree,
		"reject_absurd_fee", flags.RejectAbsurdFee,
	)
	if !pool.AcceptCertificate(&state, cert, flags.LimitFree, flags.RejectAbsurdFee) {
		logger.Warn(
			"certificate rejected by mempool",
			"cert", hash,
			"reject_code", state.RejectCode().String(),
			"reason", state.RejectReason(),
			"dos", state.DoSLevel(),
		)
		return false
	}
	if !state.IsValid() {
		// The pool reported success but left a rejection behind
		logger.Warn(
			"mempool accepted certificate with rejected state",
			"cert", hash,
			"reason", state.RejectReason(),
		)
		return false
	}
	return true
}
