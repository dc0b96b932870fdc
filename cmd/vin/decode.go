// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"vin-cli/internal/config"
	"vin-cli/pkg/vin"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// decodeCmd decodes a single VIN into its registered names and years.
var decodeCmd = &cobra.Command{
	Use:   "decode <number>",
	Short: "Decode region, country, manufacturer and model years",
	Long: `Decode a VIN into the region, country and manufacturer registered for
its World Manufacturer Identifier, plus the candidate model years for
its position-10 character.

Codes without a registration decode to empty values; that is not an
error. The check digit is verified and reported, but a mismatch does
not fail the decode since only North American VINs must carry a valid
one.

The output format defaults to the configured output.format and can be
overridden with --output (text, json or toml).

Examples:
  vin decode wp0zzz998ts392124
  vin decode --output json 1M8GDM9AXKP042788`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		return runDecode(cmd, args[0], config.OutputFormat(format))
	},
}

func init() {
	decodeCmd.Flags().StringP("output", "o", "", "output format: text, json or toml (default from config)")
}

type (
	// checksumOutput is the serialized check digit status.
	checksumOutput struct {
		Valid    bool   `json:"valid" toml:"valid"`
		Expected string `json:"expected,omitempty" toml:"expected,omitempty"`
		Received string `json:"received,omitempty" toml:"received,omitempty"`
	}

	// decodeOutput is the serialized decode result for json/toml output.
	decodeOutput struct {
		Number            string         `json:"number" toml:"number"`
		WMI               string         `json:"wmi" toml:"wmi"`
		VDS               string         `json:"vds" toml:"vds"`
		VIS               string         `json:"vis" toml:"vis"`
		Region            string         `json:"region" toml:"region"`
		RegionCode        string         `json:"region_code" toml:"region_code"`
		Country           string         `json:"country" toml:"country"`
		CountryCode       string         `json:"country_code" toml:"country_code"`
		Manufacturer      string         `json:"manufacturer" toml:"manufacturer"`
		SmallManufacturer bool           `json:"small_manufacturer" toml:"small_manufacturer"`
		Years             []int          `json:"years" toml:"years"`
		Checksum          checksumOutput `json:"checksum" toml:"checksum"`
	}
)

// newDecodeOutput flattens a VIN record and its derived accessors.
func newDecodeOutput(v *vin.VIN) decodeOutput {
	out := decodeOutput{
		Number:            v.Number,
		WMI:               v.WMI(),
		VDS:               v.VDS(),
		VIS:               v.VIS(),
		Region:            v.Region,
		RegionCode:        v.RegionCode(),
		Country:           v.Country,
		CountryCode:       v.CountryCode(),
		Manufacturer:      v.Manufacturer,
		SmallManufacturer: v.SmallManufacturer(),
		Years:             v.Years(),
		Checksum:          checksumOutput{Valid: v.Checksum == nil},
	}
	if v.Checksum != nil {
		out.Checksum.Expected = string(v.Checksum.Expected)
		out.Checksum.Received = string(v.Checksum.Received)
	}
	return out
}

// runDecode decodes one VIN and renders it in the requested format.
func runDecode(cmd *cobra.Command, raw string, format config.OutputFormat) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	if format == "" {
		format = config.FormatText
		if cfg != nil {
			format = cfg.Output.Format
		}
	}
	if err := format.Validate(); err != nil {
		cmd.SilenceUsage = true
		return err
	}

	v, err := vin.Decode(raw)
	if err != nil {
		fmt.Fprintf(stderr, "%s %s\n", failMark, err)
		renderIssueHelp(stderr, issueFor(err))
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("decoded", "number", v.Number, "wmi", v.WMI(), "checksum_ok", v.Checksum == nil)

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newDecodeOutput(v))
	case config.FormatTOML:
		return toml.NewEncoder(stdout).Encode(newDecodeOutput(v))
	default:
		renderDecodeText(stdout, v)
		return nil
	}
}

// renderDecodeText prints the styled field list for the text format.
func renderDecodeText(w io.Writer, v *vin.VIN) {
	field := func(label, value string) {
		if value == "" {
			value = SubtitleStyle.Render("(unregistered)")
		} else {
			value = ValueStyle.Render(value)
		}
		fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(label), value)
	}

	fmt.Fprintln(w, TitleStyle.Render(v.Number))
	field("Region", v.Region)
	field("Country", v.Country)
	field("Manufacturer", v.Manufacturer)
	field("WMI", v.WMI())
	field("VDS", v.VDS())
	field("VIS", v.VIS())

	years := v.Years()
	if len(years) == 0 {
		field("Model years", "")
	} else {
		text := ""
		for i, y := range years {
			if i > 0 {
				text += ", "
			}
			text += fmt.Sprintf("%d", y)
		}
		field("Model years", text)
	}

	if v.SmallManufacturer() {
		fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Note"), WarningStyle.Render("small-volume manufacturer WMI"))
	}

	if v.Checksum == nil {
		fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Checksum"), okMark+" "+SuccessStyle.Render("valid"))
	} else {
		fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Checksum"),
			failMark+" "+WarningStyle.Render(fmt.Sprintf("%c expected, %c received (informational outside North America)",
				v.Checksum.Expected, v.Checksum.Received)))
	}
}
