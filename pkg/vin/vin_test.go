// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantLen int
	}{
		{"empty", "", 0},
		{"too short", "WP0ZZZ99ZTS39212", 16},
		{"too long", "WP0ZZZ99ZTS3921244", 18},
		{"single char", "W", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.input)
			if !errors.Is(err, ErrIncorrectLength) {
				t.Fatalf("Validate(%q) = %v, want ErrIncorrectLength", tt.input, err)
			}
			var lerr *IncorrectLengthError
			if !errors.As(err, &lerr) {
				t.Fatalf("Validate(%q) error is not *IncorrectLengthError", tt.input)
			}
			if lerr.Length != tt.wantLen {
				t.Errorf("Length = %d, want %d", lerr.Length, tt.wantLen)
			}
		})
	}
}

func TestValidate_Alphabet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantOdd  string // expected distinct offending chars, sorted; "" means valid
	}{
		{"all zeros", "00000000000000000", ""},
		{"lowercase accepted", "0123456789abcdefg", ""},
		{"mixed case", "wp0zzz99zTS392124", ""},
		{"banned letters and symbols", "abcdefghioq_958.!", "!.IOQ_"},
		{"dollar sign", "W$0ZZZ99ZTS392124", "$"},
		{"repeated invalid counted once", "$$0ZZZ99ZTS392124", "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.input)
			if tt.wantOdd == "" {
				if err != nil {
					t.Fatalf("Validate(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidCharacters) {
				t.Fatalf("Validate(%q) = %v, want ErrInvalidCharacters", tt.input, err)
			}
			var cerr *InvalidCharactersError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate(%q) error is not *InvalidCharactersError", tt.input)
			}
			if got := string(cerr.Chars); got != tt.wantOdd {
				t.Errorf("Chars = %q, want %q", got, tt.wantOdd)
			}
		})
	}
}

func TestValidate_CanonicalizationIsStable(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "wp0zzz998ts392124", "W$0zzz99zts392124", "abcdefghioq_958.!"}
	for _, in := range inputs {
		lower, upper := Validate(in), Validate(strings.ToUpper(in))
		if (lower == nil) != (upper == nil) {
			t.Errorf("Validate(%q) = %v, but Validate(upper) = %v", in, lower, upper)
		}
	}
}

func TestVerifyChecksum(t *testing.T) {
	t.Parallel()

	t.Run("valid North American VIN", func(t *testing.T) {
		t.Parallel()
		if err := VerifyChecksum("1M8GDM9AXKP042788"); err != nil {
			t.Fatalf("VerifyChecksum = %v, want nil", err)
		}
	})

	t.Run("mismatched check digit", func(t *testing.T) {
		t.Parallel()
		err := VerifyChecksum("WP0ZZZ99ZTS392124")
		var cerr *ChecksumError
		if !errors.As(err, &cerr) {
			t.Fatalf("VerifyChecksum = %v, want *ChecksumError", err)
		}
		if cerr.Expected != '8' || cerr.Received != 'Z' {
			t.Errorf("got expected %c received %c, want expected 8 received Z", cerr.Expected, cerr.Received)
		}
	})

	t.Run("lowercase input", func(t *testing.T) {
		t.Parallel()
		if err := VerifyChecksum("1m8gdm9axkp042788"); err != nil {
			t.Fatalf("VerifyChecksum = %v, want nil", err)
		}
	})

	t.Run("structural failure propagates", func(t *testing.T) {
		t.Parallel()
		if err := VerifyChecksum("short"); !errors.Is(err, ErrIncorrectLength) {
			t.Fatalf("VerifyChecksum = %v, want ErrIncorrectLength", err)
		}
		if err := VerifyChecksum("W$0ZZZ99ZTS392124"); !errors.Is(err, ErrInvalidCharacters) {
			t.Fatalf("VerifyChecksum = %v, want ErrInvalidCharacters", err)
		}
	})

	t.Run("remainder ten maps to X", func(t *testing.T) {
		t.Parallel()
		// 1M8GDM9AXKP042788 has weighted sum 351, 351 mod 11 = 10.
		err := VerifyChecksum("1M8GDM9A0KP042788")
		var cerr *ChecksumError
		if !errors.As(err, &cerr) {
			t.Fatalf("VerifyChecksum = %v, want *ChecksumError", err)
		}
		if cerr.Expected != 'X' || cerr.Received != '0' {
			t.Errorf("got expected %c received %c, want expected X received 0", cerr.Expected, cerr.Received)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("Porsche with matching check digit", func(t *testing.T) {
		t.Parallel()
		v, err := Decode("wp0zzz998ts392124")
		if err != nil {
			t.Fatalf("Decode = %v, want nil", err)
		}
		if v.Number != "WP0ZZZ998TS392124" {
			t.Errorf("Number = %q, want canonical uppercase form", v.Number)
		}
		if v.Country != "Germany/West Germany" {
			t.Errorf("Country = %q, want %q", v.Country, "Germany/West Germany")
		}
		if v.Manufacturer != "Porsche car" {
			t.Errorf("Manufacturer = %q, want %q", v.Manufacturer, "Porsche car")
		}
		if v.Region != "Europe" {
			t.Errorf("Region = %q, want %q", v.Region, "Europe")
		}
		if v.Checksum != nil {
			t.Errorf("Checksum = %+v, want nil", v.Checksum)
		}
	})

	t.Run("checksum mismatch is recorded, not returned", func(t *testing.T) {
		t.Parallel()
		v, err := Decode("WP0ZZZ99ZTS392124")
		if err != nil {
			t.Fatalf("Decode = %v, want nil", err)
		}
		if v.Checksum == nil {
			t.Fatal("Checksum = nil, want a recorded mismatch")
		}
		if v.Checksum.Expected != '8' || v.Checksum.Received != 'Z' {
			t.Errorf("Checksum = %+v, want expected 8 received Z", v.Checksum)
		}
	})

	t.Run("unknown codes fall back to empty strings", func(t *testing.T) {
		t.Parallel()
		v, err := Decode("00000000000000000")
		if err != nil {
			t.Fatalf("Decode = %v, want nil", err)
		}
		if v.Region != "" || v.Country != "" || v.Manufacturer != "" {
			t.Errorf("got region %q country %q manufacturer %q, want empty fallbacks",
				v.Region, v.Country, v.Manufacturer)
		}
	})

	t.Run("structural failure yields no record", func(t *testing.T) {
		t.Parallel()
		v, err := Decode("")
		if v != nil {
			t.Errorf("record = %+v, want nil on failure", v)
		}
		if !errors.Is(err, ErrIncorrectLength) {
			t.Errorf("Decode = %v, want ErrIncorrectLength", err)
		}
	})
}

func TestVIN_Sections(t *testing.T) {
	t.Parallel()

	v, err := Decode("WP0ZZZ998TS392124")
	if err != nil {
		t.Fatalf("Decode = %v, want nil", err)
	}

	if got := v.WMI(); got != "WP0" {
		t.Errorf("WMI = %q, want %q", got, "WP0")
	}
	if got := v.VDS(); got != "ZZZ998" {
		t.Errorf("VDS = %q, want %q", got, "ZZZ998")
	}
	if got := v.VIS(); got != "TS392124" {
		t.Errorf("VIS = %q, want %q", got, "TS392124")
	}
	if got := v.RegionCode(); got != "W" {
		t.Errorf("RegionCode = %q, want %q", got, "W")
	}
	if got := v.CountryCode(); got != "P0" {
		t.Errorf("CountryCode = %q, want %q", got, "P0")
	}
}

func TestVIN_SmallManufacturer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		number string
		want   bool
	}{
		{"WP0ZZZ998TS392124", false},
		{"WP9ZZZ998TS392124", true},
		{"1M8GDM9AXKP042788", false},
		{"1M9GDM9A1KP042788", true},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			t.Parallel()
			v, err := Decode(tt.number)
			if err != nil {
				t.Fatalf("Decode = %v, want nil", err)
			}
			if got := v.SmallManufacturer(); got != tt.want {
				t.Errorf("SmallManufacturer = %v, want %v", got, tt.want)
			}
		})
	}
}
