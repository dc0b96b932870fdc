// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// checksumCmd verifies the check digit of one or more VINs.
var checksumCmd = &cobra.Command{
	Use:   "checksum <number>...",
	Short: "Verify the check digit of one or more VINs",
	Long: `Verify the ISO 3779 check digit at position 9 of each argument.
The structure is validated first; a structural failure is reported the
same way as by 'vin check'.

Only North American VINs are required to carry a valid check digit. A
mismatch on a VIN issued elsewhere carries no defect implication.

Examples:
  vin checksum 1M8GDM9AXKP042788
  vin checksum WP0ZZZ99ZTS392124`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, args, true)
	},
}
