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

// ScheduleOptionFunc is a type that represents functions that modify a Schedule
type ScheduleOptionFunc func(*Schedule)

// WithSidechainForkHeight sets the first height at which sidechains are supported
func WithSidechainForkHeight(height int32) ScheduleOptionFunc {
	return func(s *Schedule) {
		s.SidechainForkHeight = height
	}
}

// WithCertificateVersion mandates version from height onwards. Activations
// must be given in increasing height order.
func WithCertificateVersion(height int32, version int32) ScheduleOptionFunc {
	return func(s *Schedule) {
		s.CertificateVersions = append(
			s.CertificateVersions,
			VersionActivation{Height: height, Version: version},
		)
	}
}
