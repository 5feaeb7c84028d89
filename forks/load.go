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
package forks

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSchedule decodes and validates a YAML fork schedule. Unknown keys are
// rejected. A schedule without sidechainForkHeight never activates sidechains,
// as with NewSchedule.
func ParseSchedule(data []byte) (*Schedule, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	s := &Schedule{
		SidechainForkHeight: maxHeight,
	}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("parse fork schedule: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, validationError(s.Name, err)
	}
	return s, nil
}

// LoadSchedule reads a YAML fork schedule from a file
func LoadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fork schedule: %w", err)
	}
	return ParseSchedule(data)
}
