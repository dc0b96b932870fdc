// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"math"
	"time"
)

// yearCycle is the 30-character model-year alphabet: 'A' stands for
// 1980, 'Y' for 2000, '1' for 2001, '9' for 2009, then the cycle
// repeats ('A' is also 2010, and so on). I, O, Q, U, Z and 0 are never
// used as model-year characters.
const yearCycle = "ABCDEFGHJKLMNPRSTVWXY123456789"

// yearBase is the year immediately before the first cycle position.
const yearBase = 1979

// yearAdvance is how far past the current calendar year a model year
// may plausibly reach, since vehicles are sold ahead of their model
// year.
const yearAdvance = 2

// Years returns the candidate model years encoded by the VIN's
// position-10 character, in ascending order. The cycle repeats every 30
// years, so within the bounded range a character maps to one or two
// years. The upper bound follows the wall clock, so the result can
// change across calendar years; it is computed fresh on every call.
//
// The sequence is empty when the character never appears in the model
// year alphabet (U, Z or 0).
func (v *VIN) Years() []int { return v.yearsAt(time.Now()) }

// yearsAt is Years with the clock injected, so tests can pin it.
func (v *VIN) yearsAt(now time.Time) []int {
	target := v.Number[yearPos]

	// Calendar year from the epoch offset, then the advance window.
	ceiling := int(math.Round(float64(now.Unix())/86400/365.25+1970)) + yearAdvance

	var years []int
	year := yearBase
	for i := 0; ; i = (i + 1) % len(yearCycle) {
		year++
		if yearCycle[i] == target {
			years = append(years, year)
		}
		if year >= ceiling {
			break
		}
	}
	return years
}
