// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Length is the exact number of characters in a VIN.
const Length = 17

// Fixed positional slices of the canonical VIN string.
const (
	wmiEnd   = 3 // [0..3) World Manufacturer Identifier
	vdsEnd   = 9 // [3..9) Vehicle Descriptor Section; [9..17) is the VIS
	checkPos = 8 // 0-based index of the check digit (position 9)
	yearPos  = 9 // 0-based index of the model-year character
)

// VIN is the immutable result of decoding a validated number. It is
// constructed by Decode and never mutated afterwards.
type VIN struct {
	// Number is the canonical uppercase 17-character VIN.
	Number string

	// Country is the display name resolved from the first two
	// characters, or "" when the code is unassigned.
	Country string

	// Manufacturer is the display name resolved from the full WMI, or
	// "" when the WMI is unregistered.
	Manufacturer string

	// Region is the display name resolved from the first character, or
	// "" when the character is unassigned.
	Region string

	// Checksum is nil when the check digit matches, else it carries the
	// expected and received characters. Only North American VINs are
	// required to carry a valid check digit, so a non-nil value is
	// informational for other regions.
	Checksum *ChecksumError
}

// Validate checks that the input is a structurally well-formed VIN:
// exactly 17 characters, all drawn from the VIN alphabet. Input is
// accepted case-insensitively. It does not verify the check digit.
func Validate(number string) error {
	number = strings.ToUpper(number)

	if n := utf8.RuneCountInString(number); n != Length {
		return &IncorrectLengthError{Length: n}
	}

	var odd []rune
	seen := make(map[rune]struct{})
	for _, c := range number {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := allowedChars[c]; !ok {
			odd = append(odd, c)
		}
	}
	if len(odd) > 0 {
		sort.Slice(odd, func(i, j int) bool { return odd[i] < odd[j] })
		return &InvalidCharactersError{Chars: odd}
	}

	return nil
}

// VerifyChecksum validates the input structurally and then verifies the
// ISO 3779 check digit: each character's transliteration value is
// multiplied by its positional weight, the products are summed and
// reduced modulo 11, with remainder 10 written as 'X'. The result must
// equal the character at position 9.
//
// Only North American VINs are required to pass this check; a mismatch
// on a VIN issued elsewhere carries no defect implication.
func VerifyChecksum(number string) error {
	number = strings.ToUpper(number)
	if err := Validate(number); err != nil {
		return err
	}

	sum := 0
	for i, c := range number {
		sum += charValues[c] * weights[i]
	}

	expected := 'X'
	if r := sum % 11; r < 10 {
		expected = rune('0' + r)
	}

	received := rune(number[checkPos])
	if received != expected {
		return &ChecksumError{Expected: expected, Received: received}
	}
	return nil
}

// Decode validates the input structurally and assembles a VIN record
// with region, country and manufacturer resolved from the WMI.
// Unassigned codes resolve to "" rather than failing. The check digit
// is verified as well, but a mismatch is recorded in the Checksum field
// instead of failing the decode.
func Decode(number string) (*VIN, error) {
	number = strings.ToUpper(number)
	if err := Validate(number); err != nil {
		return nil, err
	}

	v := &VIN{
		Number:       number,
		Country:      countryName(number[:2]),
		Manufacturer: manufacturerName(number[:wmiEnd]),
		Region:       regionName(number[:1]),
	}

	if err := VerifyChecksum(number); err != nil {
		var cerr *ChecksumError
		if !errors.As(err, &cerr) {
			// Validate passed above, so only a checksum mismatch can
			// reach this point.
			panic(fmt.Sprintf("vin: unexpected error class from checksum verification: %v", err))
		}
		v.Checksum = cerr
	}

	return v, nil
}

// WMI returns the World Manufacturer Identifier, characters 1-3.
func (v *VIN) WMI() string { return v.Number[:wmiEnd] }

// VDS returns the Vehicle Descriptor Section, characters 4-9.
func (v *VIN) VDS() string { return v.Number[wmiEnd:vdsEnd] }

// VIS returns the Vehicle Identifier Section, characters 10-17.
func (v *VIN) VIS() string { return v.Number[vdsEnd:] }

// SmallManufacturer reports whether the WMI's third character is '9',
// which marks a manufacturer too small to hold a dedicated WMI.
func (v *VIN) SmallManufacturer() bool { return v.Number[wmiEnd-1] == '9' }

// RegionCode returns the region character, the first of the WMI.
func (v *VIN) RegionCode() string { return v.Number[:1] }

// CountryCode returns the country code, the second and third WMI
// characters.
func (v *VIN) CountryCode() string { return v.Number[1:wmiEnd] }
