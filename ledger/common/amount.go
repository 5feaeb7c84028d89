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

// Amount is a signed value denominated in the smallest currency unit
type Amount int64

const (
	// Coin is the number of minor units in one whole coin
	Coin Amount = 100_000_000
	// MaxMoney is the largest amount that can ever exist on the chain
	MaxMoney Amount = 21_000_000 * Coin
)

// MoneyRange reports whether the amount is within [0, MaxMoney]
func MoneyRange(a Amount) bool {
	return a >= 0 && a <= MaxMoney
}

// String formats the amount as whole coins with eight decimals
func (a Amount) String() string {
	sign := ""
	abs := uint64(a) //nolint:gosec
	if a < 0 {
		sign = "-"
		abs = uint64(-(a + 1)) + 1 //nolint:gosec
	}
	return fmt.Sprintf(
		"%s%d.%08d",
		sign,
		abs/uint64(Coin),
		abs%uint64(Coin),
	)
}
