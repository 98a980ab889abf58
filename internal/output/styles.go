package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: tags, versions, stage names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for positive verdicts and successful stages.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings such as duplicate version tags.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for failed stages.
	ColorRed = lipgloss.Color("196")

	// ColorGray is used for secondary detail lines.
	ColorGray = lipgloss.Color("245")
)

var (
	tagStyle     = lipgloss.NewStyle().Foreground(ColorCyan)
	okStyle      = lipgloss.NewStyle().Foreground(ColorGreen)
	failStyle    = lipgloss.NewStyle().Foreground(ColorRed)
	detailStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	verdictStyle = lipgloss.NewStyle().Bold(true)
)

// FormatTag renders a tag or version for log output.
func FormatTag(tag string) string {
	return tagStyle.Render(tag)
}

// FormatVerdict renders the highest-semver verdict.
func FormatVerdict(isHighest bool) string {
	if isHighest {
		return verdictStyle.Foreground(ColorGreen).Render("highest")
	}
	return verdictStyle.Foreground(ColorGray).Render("not highest")
}

// FormatStageResult renders a one-line stage outcome.
func FormatStageResult(stage string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s: %v", failStyle.Render("✗"), stage, err)
	}
	return fmt.Sprintf("%s %s", okStyle.Render("✓"), stage)
}

// DecisionSummary renders a short human-readable summary of a release
// decision. Plain key-value lines when not attached to a terminal.
func DecisionSummary(rawTag, unprefixed string, isSemantic, isHighest bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "tag:      %s\n", FormatTag(rawTag))
	if !isSemantic {
		fmt.Fprintf(&b, "semantic: no\n")
		fmt.Fprintf(&b, "%s\n", detailStyle.Render("latest pointers will not be advanced"))
		return b.String()
	}

	fmt.Fprintf(&b, "version:  %s\n", unprefixed)
	fmt.Fprintf(&b, "verdict:  %s\n", FormatVerdict(isHighest))
	return b.String()
}
