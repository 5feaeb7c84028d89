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
	"errors"
	"fmt"
)

// ValidationError represents a structured validation error with additional context
type ValidationError struct {
	Type    ValidationErrorType
	Message string
	Details map[string]any
	Cause   error
}

type ValidationErrorType string

const (
	ValidationErrorTypeCertificate   ValidationErrorType = "certificate"
	ValidationErrorTypeContextual    ValidationErrorType = "contextual"
	ValidationErrorTypeBlock         ValidationErrorType = "block"
	ValidationErrorTypeConfiguration ValidationErrorType = "configuration"
)

func (e ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new structured validation error
func NewValidationError(
	errType ValidationErrorType,
	message string,
	details map[string]any,
	cause error,
) *ValidationError {
	return &ValidationError{
		Type:    errType,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// RejectError is the error form of a failed ValidationState
type RejectError struct {
	Code     RejectCode
	Reason   string
	DoSLevel int
	// Internal is set when the failure came from a collaborator rather than the entry
	Internal bool
	Cause    error
}

func (e *RejectError) Error() string {
	if e.Internal {
		return "internal error: " + e.Reason
	}
	if e.Cause != nil {
		return fmt.Sprintf(
			"rejected (%s, dos=%d): %s: %v",
			e.Code.String(),
			e.DoSLevel,
			e.Reason,
			e.Cause,
		)
	}
	return fmt.Sprintf(
		"rejected (%s, dos=%d): %s",
		e.Code.String(),
		e.DoSLevel,
		e.Reason,
	)
}

func (e *RejectError) Unwrap() error {
	return e.Cause
}

// Sentinel error so callers can use errors.Is on any rejection
var ErrRejected = errors.New("ledger entry rejected")

func (e *RejectError) Is(target error) bool {
	return target == ErrRejected
}
