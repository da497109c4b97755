package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the form uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
)

const labelWidth = 18

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorMuted).
				Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Foreground(colorText).Width(labelWidth)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true).Width(labelWidth)
	requiredMark      = lipgloss.NewStyle().Foreground(colorError).Render("*")

	optionStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	chosenOptionStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	cursorOptionStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorFocus).Padding(0, 1)

	tagStyle       = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 1)
	cursorTagStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorFocus).Padding(0, 1)

	buttonStyle        = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	focusedButtonStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 2)

	hintStyle  = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	noticeErrStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(1, 2)
	noticeOKStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(1, 2)
	noticeErrTitle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	noticeOKTitle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	resultHeaderStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
)
