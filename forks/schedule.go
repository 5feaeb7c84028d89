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

// Package forks provides the height-indexed fork schedule that decides when
// sidechain features activate and which certificate version is mandated.
package forks

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gosidechain/ledger/common"
)

// Compile-time check that Schedule is an activation authority
var _ common.ActivationAuthority = (*Schedule)(nil)

// VersionNone is returned by CertificateVersion before any activation
const VersionNone int32 = -1

// VersionActivation mandates a certificate version from Height onwards
type VersionActivation struct {
	Height  int32 `yaml:"height"`
	Version int32 `yaml:"version"`
}

// Schedule is a static fork schedule. Lookups are pure functions of height,
// so a Schedule is safe for concurrent use once built.
type Schedule struct {
	Name                string              `yaml:"name"`
	SidechainForkHeight int32               `yaml:"sidechainForkHeight"`
	CertificateVersions []VersionActivation `yaml:"certificateVersions"`
}

var ErrEmptyScheduleName = errors.New("fork schedule has no name")

type InvalidHeightError struct {
	Field  string
	Height int32
}

func (e InvalidHeightError) Error() string {
	return fmt.Sprintf("%s: height %d must not be negative", e.Field, e.Height)
}

type UnorderedActivationError struct {
	Index    int
	Height   int32
	Previous int32
}

func (e UnorderedActivationError) Error() string {
	return fmt.Sprintf(
		"certificate version activation %d at height %d does not follow height %d",
		e.Index,
		e.Height,
		e.Previous,
	)
}

// NewSchedule builds and validates a schedule. Sidechains are inactive unless
// a fork height option is given.
func NewSchedule(name string, opts ...ScheduleOptionFunc) (*Schedule, error) {
	s := &Schedule{
		Name:                name,
		SidechainForkHeight: maxHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Validate(); err != nil {
		return nil, validationError(name, err)
	}
	return s, nil
}

// maxHeight keeps sidechains inactive at every reachable height
const maxHeight int32 = 1<<31 - 1

// AreSidechainsSupported reports whether height is at or past the sidechain fork
func (s *Schedule) AreSidechainsSupported(height int32) bool {
	return height >= s.SidechainForkHeight
}

// CertificateVersion returns the version of the latest activation at or
// below height, or VersionNone
func (s *Schedule) CertificateVersion(height int32) int32 {
	ret := VersionNone
	for _, act := range s.CertificateVersions {
		if act.Height > height {
			break
		}
		ret = act.Version
	}
	return ret
}

// Validate checks that heights are non-negative and activations strictly increase
func (s *Schedule) Validate() error {
	if s.Name == "" {
		return ErrEmptyScheduleName
	}
	if s.SidechainForkHeight < 0 {
		return InvalidHeightError{
			Field:  "sidechainForkHeight",
			Height: s.SidechainForkHeight,
		}
	}
	for idx, act := range s.CertificateVersions {
		if act.Height < 0 {
			return InvalidHeightError{
				Field:  fmt.Sprintf("certificateVersions[%d]", idx),
				Height: act.Height,
			}
		}
		if idx > 0 && act.Height <= s.CertificateVersions[idx-1].Height {
			return UnorderedActivationError{
				Index:    idx,
				Height:   act.Height,
				Previous: s.CertificateVersions[idx-1].Height,
			}
		}
	}
	return nil
}

// validationError wraps a schedule problem the way the ledger reports configuration errors
func validationError(name string, err error) error {
	return common.NewValidationError(
		common.ValidationErrorTypeConfiguration,
		"invalid fork schedule",
		map[string]any{"schedule": name},
		err,
	)
}
