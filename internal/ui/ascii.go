package ui

import "github.com/charmbracelet/lipgloss"

const bannerASCII = ` ___  __ _ _ __   __ _  ___ _ __      _ __ ___ _ __   __ _ _ __ ___   ___
/ __|/ _' | '_ \ / _' |/ _ \ '__|____| '__/ _ \ '_ \ / _' | '_ ' _ \ / _ \
\__ \ (_| | | | | (_| |  __/ | |_____| | |  __/ | | | (_| | | | | | |  __/
|___/\__,_|_| |_|\__, |\___|_|       |_|  \___|_| |_|\__,_|_| |_| |_|\___|
                 |___/`

// FormatASCIIHeader renders the banner with the RAMA theme
func FormatASCIIHeader() string {
	return lipgloss.NewStyle().
		Foreground(RAMARed).
		Bold(true).
		Render(bannerASCII)
}
