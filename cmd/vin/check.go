// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"vin-cli/internal/issue"
	"vin-cli/pkg/vin"

	"github.com/spf13/cobra"
)

// checkCmd validates the structure of one or more VINs.
var checkCmd = &cobra.Command{
	Use:   "check <number>...",
	Short: "Validate the structure of one or more VINs",
	Long: `Validate that each argument is a structurally well-formed VIN:
exactly 17 characters, drawn from digits and uppercase letters
excluding I, O and Q. Input is accepted case-insensitively.

With --checksum, the ISO 3779 check digit is verified as well. Note
that only North American VINs are required to carry a valid check
digit.

Examples:
  vin check 1M8GDM9AXKP042788
  vin check --checksum 1M8GDM9AXKP042788 WP0ZZZ99ZTS392124`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withChecksum, _ := cmd.Flags().GetBool("checksum")
		return runChecks(cmd, args, withChecksum)
	},
}

func init() {
	checkCmd.Flags().Bool("checksum", false, "also verify the check digit")
}

// runChecks validates every argument and reports one line per input.
// Shared by the check and checksum commands; withChecksum selects
// whether the check digit is verified on top of the structure.
func runChecks(cmd *cobra.Command, args []string, withChecksum bool) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	failed := 0
	for _, raw := range args {
		verify := vin.Validate
		if withChecksum {
			verify = vin.VerifyChecksum
		}

		err := verify(raw)
		if err == nil {
			fmt.Fprintf(stdout, "%s %s\n", okMark, strings.ToUpper(raw))
			continue
		}

		failed++
		fmt.Fprintf(stderr, "%s %s: %s\n", failMark, strings.ToUpper(raw), err)
		renderIssueHelp(stderr, issueFor(err))
	}

	logger.Debug("check finished", "inputs", len(args), "failed", failed, "checksum", withChecksum)

	if failed > 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

// issueFor maps a validation error to its help catalog entry.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, vin.ErrIncorrectLength):
		return issue.IncorrectLengthId
	case errors.Is(err, vin.ErrInvalidCharacters):
		return issue.InvalidCharactersId
	case errors.Is(err, vin.ErrChecksum):
		return issue.ChecksumMismatchId
	default:
		return 0
	}
}
