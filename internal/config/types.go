// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// FormatText renders decode results as a styled field list.
	FormatText OutputFormat = "text"
	// FormatJSON renders decode results as JSON.
	FormatJSON OutputFormat = "json"
	// FormatTOML renders decode results as TOML.
	FormatTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidOutputFormat is the sentinel error wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

type (
	// OutputFormat selects how the decode command renders its result.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is
	// not recognized. It wraps ErrInvalidOutputFormat for errors.Is().
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is
	// not recognized. It wraps ErrInvalidColorScheme for errors.Is().
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables diagnostic logging on stderr.
		Verbose bool `mapstructure:"verbose"`
		// ColorScheme selects the terminal color scheme.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}

	// OutputConfig holds result rendering settings.
	OutputConfig struct {
		// Format is the default decode output format.
		Format OutputFormat `mapstructure:"format"`
	}

	// Config is the resolved CLI configuration. Flag values take
	// precedence over config file values, which take precedence over
	// the defaults.
	Config struct {
		UI     UIConfig     `mapstructure:"ui"`
		Output OutputConfig `mapstructure:"output"`
	}
)

// Validate returns an error if the OutputFormat is not a known value.
func (f OutputFormat) Validate() error {
	switch f {
	case FormatText, FormatJSON, FormatTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q: must be text, json or toml", string(e.Value))
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// Validate returns an error if the ColorScheme is not a known value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q: must be auto, dark or light", string(e.Value))
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate checks every typed field of the Config.
func (c *Config) Validate() error {
	if err := c.Output.Format.Validate(); err != nil {
		return err
	}
	return c.UI.ColorScheme.Validate()
}

// DefaultConfig returns the built-in defaults used when no config file
// is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}
