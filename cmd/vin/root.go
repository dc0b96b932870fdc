// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"vin-cli/internal/config"
	"vin-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables diagnostic logging on stderr
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// explain renders the help catalog entry for validation failures
	explain bool

	// cfg is the resolved configuration, loaded by initRootConfig.
	cfg *config.Config

	// logger emits diagnostic output; level depends on the verbose flag.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "vin",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "vin",
		Short: "Parse and validate Vehicle Identification Numbers",
		Long: TitleStyle.Render("vin") + SubtitleStyle.Render(" - Parse and validate Vehicle Identification Numbers") + `

vin checks the structure of 17-character VINs, verifies the ISO 3779
check digit and decodes the region, country and manufacturer encoded
in the World Manufacturer Identifier, along with candidate model years.

Checksum validity is only mandatory for vehicles sold in North America;
for other regions a mismatch is reported as informational.

` + SubtitleStyle.Render("Examples:") + `
  vin check 1M8GDM9AXKP042788        Validate structure
  vin check --checksum 1M8GDM9A...   Validate structure and check digit
  vin checksum WP0ZZZ99ZTS392124     Verify the check digit only
  vin decode wp0zzz998ts392124       Decode country, maker and years
  vin decode --output json <number>  Machine-readable output`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vin/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&explain, "explain", false, "show remediation help when validation fails")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(checksumCmd)
	rootCmd.AddCommand(decodeCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file and VIN_* env variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// glamourStyle maps the configured color scheme to a glamour style path.
func glamourStyle() string {
	if cfg == nil {
		return "auto"
	}
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// renderIssueHelp prints the catalog entry for the given issue ID when
// the --explain flag is set. Rendering failures only degrade the help
// text, never the command result.
func renderIssueHelp(w io.Writer, id issue.Id) {
	if !explain {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	out, err := entry.Render(glamourStyle())
	if err != nil {
		logger.Debug("failed to render issue help", "id", id, "err", err)
		return
	}
	fmt.Fprintln(w, out)
}
