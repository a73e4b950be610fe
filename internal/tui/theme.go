package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors are adaptive so the UI stays readable when the session theme flips
// between dark and light. Faint styling is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted       lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceBg   lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg   lipgloss.TerminalColor = ac("235", "252")
	colorControlBg   lipgloss.TerminalColor = ac("252", "237")
	colorInputBg     lipgloss.TerminalColor = ac("254", "234")
	colorSelectedBg  lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg  lipgloss.TerminalColor = ac("235", "255")
	colorAccent      lipgloss.TerminalColor = ac("#4f46e5", "#818cf8")
	colorAccentFg    lipgloss.TerminalColor = ac("255", "235")
	colorBorder      lipgloss.TerminalColor = ac("250", "240")
	colorFlashOK     lipgloss.TerminalColor = ac("28", "78")
	colorFlashError  lipgloss.TerminalColor = ac("160", "203")
	colorChartBar    lipgloss.TerminalColor = ac("#6366f1", "#a5b4fc")
	colorChartLine   lipgloss.TerminalColor = ac("#0891b2", "#67e8f9")
	colorTagFg       lipgloss.TerminalColor = ac("#3730a3", "#c7d2fe")
	colorTagBg       lipgloss.TerminalColor = ac("#e0e7ff", "#312e81")
	colorStatChipFg  lipgloss.TerminalColor = ac("236", "252")
	colorStatChipBg  lipgloss.TerminalColor = ac("254", "236")
	colorNavActiveBg lipgloss.TerminalColor = colorAccent
	colorNavActiveFg lipgloss.TerminalColor = colorAccentFg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleCard() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
}

func styleTag() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorTagFg).Background(colorTagBg).Padding(0, 1)
}

func styleChip() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorStatChipFg).Background(colorStatChipBg).Padding(0, 1)
}

// applyColorProfilePreference sets the color profile for the interactive UI.
// Only NO_COLOR is honored; otherwise the terminal's capabilities win.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// resolveDark decides the starting palette. theme is dark|light|auto; auto
// falls back to the COLORFGBG hint and then to the session default.
func resolveDark(theme string, sessionDark bool) bool {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return false
	case "dark":
		return true
	case "auto":
		if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
			parts := strings.Split(v, ";")
			if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
				return bg < 7
			}
		}
	}
	return sessionDark
}

func applyDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
