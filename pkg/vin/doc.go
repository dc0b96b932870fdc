// SPDX-License-Identifier: MPL-2.0

// Package vin parses and validates Vehicle Identification Numbers.
//
// A VIN is a 17-character identifier drawn from digits 0-9 and the
// uppercase letters A-Z excluding I, O and Q. The package offers three
// entry points:
//
//   - Validate checks length and alphabet membership only.
//   - VerifyChecksum additionally verifies the ISO 3779 check digit
//     (position 9). Only North American VINs are required to carry a
//     valid check digit; for other regions a mismatch is informational.
//   - Decode resolves region, country and manufacturer names from the
//     WMI and assembles an immutable VIN record.
//
// All input is accepted case-insensitively and canonicalized to
// uppercase. Every function is a pure computation over in-memory
// tables: no I/O, no logging, safe for concurrent use.
//
//	record, err := vin.Decode("wp0zzz998ts392124")
//	if err != nil {
//		// the input was not 17 chars or used illegal characters
//	}
//	record.Country      // "Germany/West Germany"
//	record.Manufacturer // "Porsche car"
//	record.Region       // "Europe"
//	record.Years()      // candidate model years for the position-10 character
package vin
