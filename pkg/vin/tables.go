// SPDX-License-Identifier: MPL-2.0

package vin

// alphabet lists the 33 legal VIN characters: digits and uppercase
// letters except I, O and Q, which ISO 3779 bans to avoid confusion
// with 1 and 0.
const alphabet = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"

// charValues holds the ISO 3779 transliteration value of every allowed
// character. Digits map to themselves; letters repeat 1-9 with the
// banned letters skipped (so P is 7 with no 6 in its run, and S starts
// its run at 2).
var charValues = map[rune]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// weights is the positional weight of each of the 17 VIN characters in
// the check-digit sum. Position 9 (index 8) is the check digit itself
// and carries weight 0, so it never contributes to its own value.
var weights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// allowedChars is the alphabet as a set for O(1) membership tests.
var allowedChars = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(alphabet))
	for _, c := range alphabet {
		set[c] = struct{}{}
	}
	return set
}()
