package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linyuchen/gantry/internal/tracking"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierStyle returns the lipgloss style for a status tier.
func TierStyle(tier tracking.Tier) lipgloss.Style {
	switch tier {
	case tracking.TierSevere:
		return StyleRed
	case tracking.TierDelayed:
		return StyleOrange
	case tracking.TierWarning:
		return StyleYellow
	case tracking.TierNormal:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TierIndicator returns a colored traffic-light string such as "● SEVERE".
func TierIndicator(tier tracking.Tier) string {
	if tier == tracking.TierUnknown {
		return StyleDim.Render("● -")
	}
	return TierStyle(tier).Render("● " + strings.ToUpper(string(tier)))
}

// Variance renders a signed day count: green when ahead, red when behind,
// dim dash when unknown.
func Variance(v *int) string {
	if v == nil {
		return StyleDim.Render("-")
	}
	if *v < 0 {
		return StyleRed.Render(fmt.Sprintf("%d", *v))
	}
	return StyleGreen.Render(fmt.Sprintf("+%d", *v))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
