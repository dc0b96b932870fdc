// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the typed error values below. Callers use
// errors.Is against these for programmatic detection and errors.As to
// recover the per-kind payload.
var (
	// ErrIncorrectLength is the sentinel wrapped by IncorrectLengthError.
	ErrIncorrectLength = errors.New("incorrect VIN length")

	// ErrInvalidCharacters is the sentinel wrapped by InvalidCharactersError.
	ErrInvalidCharacters = errors.New("invalid VIN characters")

	// ErrChecksum is the sentinel wrapped by ChecksumError.
	ErrChecksum = errors.New("VIN checksum mismatch")
)

type (
	// IncorrectLengthError is returned when the canonicalized input does
	// not contain exactly 17 characters.
	IncorrectLengthError struct {
		// Length is the rune count of the rejected input.
		Length int
	}

	// InvalidCharactersError is returned when the input contains
	// characters outside the 33-character VIN alphabet.
	InvalidCharactersError struct {
		// Chars holds the distinct offending characters in sorted
		// order. Order carries no meaning; it is fixed only so the
		// message is deterministic.
		Chars []rune
	}

	// ChecksumError is returned when the character at position 9 does
	// not equal the computed check digit.
	ChecksumError struct {
		// Expected is the check character computed from the other 16
		// positions.
		Expected rune
		// Received is the character actually present at position 9.
		Received rune
	}
)

// Error implements the error interface.
func (e *IncorrectLengthError) Error() string {
	return fmt.Sprintf("incorrect length %d: exactly 17 characters expected", e.Length)
}

// Unwrap returns ErrIncorrectLength for errors.Is chains.
func (e *IncorrectLengthError) Unwrap() error { return ErrIncorrectLength }

// Error implements the error interface.
func (e *InvalidCharactersError) Error() string {
	return fmt.Sprintf("invalid characters %q: allowed are 0-9 and A-Z except I, O, Q", string(e.Chars))
}

// Unwrap returns ErrInvalidCharacters for errors.Is chains.
func (e *InvalidCharactersError) Unwrap() error { return ErrInvalidCharacters }

// Error implements the error interface.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("invalid check digit at position 9: %c expected, %c received", e.Expected, e.Received)
}

// Unwrap returns ErrChecksum for errors.Is chains.
func (e *ChecksumError) Unwrap() error { return ErrChecksum }
