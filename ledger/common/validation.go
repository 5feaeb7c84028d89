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

import "fmt"

// RejectCode is the machine-readable rejection category relayed to peers
type RejectCode uint8

const (
	RejectNone            RejectCode = 0x00
	RejectMalformed       RejectCode = 0x01
	RejectInvalid         RejectCode = 0x10
	RejectObsolete        RejectCode = 0x11
	RejectDuplicate       RejectCode = 0x12
	RejectNonstandard     RejectCode = 0x40
	RejectDust            RejectCode = 0x41
	RejectInsufficientFee RejectCode = 0x42
	RejectCheckpoint      RejectCode = 0x43
)

func (c RejectCode) String() string {
	switch c {
	case RejectNone:
		return "none"
	case RejectMalformed:
		return "malformed"
	case RejectInvalid:
		return "invalid"
	case RejectObsolete:
		return "obsolete"
	case RejectDuplicate:
		return "duplicate"
	case RejectNonstandard:
		return "nonstandard"
	case RejectDust:
		return "dust"
	case RejectInsufficientFee:
		return "insufficientfee"
	case RejectCheckpoint:
		return "checkpoint"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(c))
	}
}

// Peer penalty levels used by the validation rules
const (
	DoSNone     = 0
	DoSModerate = 10
	DoSMax      = 100
)

type validationMode uint8

const (
	validationModeValid validationMode = iota
	validationModeInvalid
	validationModeError
)

// ValidationState accumulates the outcome of a validation pass over a single
// ledger entry. The first rejection written wins: once the state is no longer
// valid, further rejections are ignored. A ValidationState must not be shared
// between concurrent validations.
type ValidationState struct {
	mode         validationMode
	dosLevel     int
	rejectCode   RejectCode
	rejectReason string
	cause        error
}

// DoS marks the state invalid with the given peer penalty. It always returns
// false so rule functions can return its result directly.
func (s *ValidationState) DoS(
	level int,
	cause error,
	code RejectCode,
	reason string,
) bool {
	if s.mode != validationModeValid {
		return false
	}
	s.mode = validationModeInvalid
	s.dosLevel = level
	s.cause = cause
	s.rejectCode = code
	s.rejectReason = reason
	return false
}

// Invalid marks the state invalid without a peer penalty
func (s *ValidationState) Invalid(
	cause error,
	code RejectCode,
	reason string,
) bool {
	return s.DoS(DoSNone, cause, code, reason)
}

// Error records an internal failure that says nothing about the entry itself
func (s *ValidationState) Error(reason string) bool {
	if s.mode != validationModeValid {
		return false
	}
	s.mode = validationModeError
	s.rejectReason = reason
	return false
}

func (s *ValidationState) IsValid() bool {
	return s.mode == validationModeValid
}

func (s *ValidationState) IsInvalid() bool {
	return s.mode == validationModeInvalid
}

func (s *ValidationState) IsError() bool {
	return s.mode == validationModeError
}

// DoSLevel returns the peer penalty written by the failing rule
func (s *ValidationState) DoSLevel() int {
	return s.dosLevel
}

func (s *ValidationState) RejectCode() RejectCode {
	return s.rejectCode
}

func (s *ValidationState) RejectReason() string {
	return s.rejectReason
}

// Cause returns the debug error attached to the rejection, if any
func (s *ValidationState) Cause() error {
	return s.cause
}

// Err returns nil for a valid state and a *RejectError otherwise
func (s *ValidationState) Err() error {
	if s.mode == validationModeValid {
		return nil
	}
	return &RejectError{
		Code:     s.rejectCode,
		Reason:   s.rejectReason,
		DoSLevel: s.dosLevel,
		Internal: s.mode == validationModeError,
		Cause:    s.cause,
	}
}
