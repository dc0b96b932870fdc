// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	IncorrectLengthId Id = iota + 1
	InvalidCharactersId
	ChecksumMismatchId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	incorrectLengthIssue = &Issue{
		id: IncorrectLengthId,
		mdMsg: `
# The number is not 17 characters long!

Every VIN issued since 1981 has exactly 17 characters. Shorter inputs
are usually partial transcriptions; longer ones often carry stray
whitespace or a pasted label prefix.

## Things you can try:
- Re-read the number from the vehicle's door jamb or windshield plate
- Remove spaces, dashes and other separators before retrying
- Pre-1981 vehicles used shorter, manufacturer-specific numbers that
  this tool does not parse`,
	}

	invalidCharactersIssue = &Issue{
		id: InvalidCharactersId,
		mdMsg: `
# The number contains characters a VIN can never use!

VINs are drawn from digits and uppercase letters, excluding **I**, **O**
and **Q** so they cannot be confused with 1 and 0.

## Things you can try:
- Replace a transcribed I with 1, and O or Q with 0
- Remove separators such as spaces, dots or dashes
- Check for characters misread from a worn plate (8 vs B, 5 vs S)`,
	}

	checksumMismatchIssue = &Issue{
		id: ChecksumMismatchId,
		mdMsg: `
# The check digit does not match!

Position 9 of a VIN is a check digit computed from the other sixteen
characters. A mismatch usually means a single character was misread.

## Keep in mind:
- Only vehicles sold in North America are required to carry a valid
  check digit; a mismatch on a European or Asian VIN is informational
- Transposing two adjacent characters also breaks the check digit

## Things you can try:
- Compare the number character by character against the vehicle plate
- Decode without checksum enforcement:
~~~
$ vin decode <number>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file could not be read or contains invalid values.

## Things you can try:
- Check the TOML syntax of ~/.config/vin/config.toml
- Valid keys: ui.verbose, ui.color_scheme (auto/dark/light),
  output.format (text/json/toml)
- Remove the file to fall back to the defaults`,
	}

	issues = map[Id]*Issue{
		incorrectLengthIssue.Id():   incorrectLengthIssue,
		invalidCharactersIssue.Id(): invalidCharactersIssue,
		checksumMismatchIssue.Id():  checksumMismatchIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
