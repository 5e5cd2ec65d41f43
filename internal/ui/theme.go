package ui

import "github.com/charmbracelet/lipgloss"

// RAMA theme colors (from sysc family)
var (
	RAMARed        = lipgloss.Color("#ef233c")
	RAMABackground = lipgloss.Color("#2b2d42")
	RAMAForeground = lipgloss.Color("#edf2f4")
	RAMAMuted      = lipgloss.Color("#8d99ae")

	ColorSuccess = lipgloss.Color("#2ecc71")
	ColorWarning = lipgloss.Color("#f39c12")
	ColorError   = RAMARed
	ColorInfo    = lipgloss.Color("#3498db")
)

var (
	// Panel around each half of the screen
	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(RAMAMuted).
			Padding(0, 1)

	// Panel for the item under the cursor
	ActivePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(RAMARed).
				Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RAMAForeground).
			Background(RAMARed).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(RAMAMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RAMARed).
			MarginBottom(1)

	ContentStyle = lipgloss.NewStyle().
			Foreground(RAMAForeground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(RAMAMuted)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(RAMABackground).
			Background(RAMARed).
			Bold(true)

	// Today marker in the calendar
	TodayStyle = lipgloss.NewStyle().
			Foreground(RAMAForeground).
			Background(ColorInfo).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	StatStyle = lipgloss.NewStyle().
			Foreground(RAMARed).
			Bold(true)
)

// FormatHeader formats a header with consistent styling
func FormatHeader(title string, width int) string {
	style := HeaderStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(title)
}

// FormatFooter joins footer sections with consistent spacing
func FormatFooter(sections ...string) string {
	footer := ""
	for i, section := range sections {
		if section == "" {
			continue
		}
		if i > 0 && footer != "" {
			footer += "  "
		}
		footer += section
	}
	return FooterStyle.Render(footer)
}

var (
	OKMarker   = lipgloss.NewStyle().Foreground(ColorSuccess).SetString("[OK]")
	FailMarker = lipgloss.NewStyle().Foreground(ColorError).SetString("[FAIL]")
)

// FormatStatusOK returns an [OK] marker with message
func FormatStatusOK(message string) string {
	return OKMarker.String() + " " + message
}

// FormatStatusFail returns a [FAIL] marker with message
func FormatStatusFail(message string) string {
	return FailMarker.String() + " " + message
}
