// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for vin.
//
// This package implements the Cobra command hierarchy for the vin CLI:
// the root command plus subcommands for structural validation, check
// digit verification and full decoding of Vehicle Identification
// Numbers.
package cmd
