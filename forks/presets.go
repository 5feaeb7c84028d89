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

import "slices"

// CertificateVersionSidechain is the certificate version introduced with sidechains.
// It is the 32-bit pattern 0xFFFFFFFB read as a signed integer.
const CertificateVersionSidechain int32 = -5

// ScheduleRegtest activates sidechains right after genesis
var ScheduleRegtest = Schedule{
	Name:                "regtest",
	SidechainForkHeight: 1,
	CertificateVersions: []VersionActivation{
		{Height: 1, Version: CertificateVersionSidechain},
	},
}

var presets = []Schedule{
	ScheduleRegtest,
}

// ScheduleByName returns a copy of a built-in schedule
func ScheduleByName(name string) (*Schedule, bool) {
	for _, s := range presets {
		if s.Name == name {
			ret := s
			ret.CertificateVersions = slices.Clone(s.CertificateVersions)
			return &ret, true
		}
	}
	return nil, false
}
