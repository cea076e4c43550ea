package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases
const (
	colorAccent   = colorMauve
	colorFocus    = colorLavender
	colorPositive = colorGreen
	colorNegative = colorRed
	colorWarning  = colorYellow
	colorInfo     = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	accountNameStyle = lipgloss.NewStyle().Foreground(colorText)
	accountKindStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	balanceStyle     = lipgloss.NewStyle().Foreground(colorPositive)
	balanceNegStyle  = lipgloss.NewStyle().Foreground(colorNegative)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorFocus).
			Background(colorBase).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	dialogLinkStyle  = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	hintStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	hintKeyStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(colorInfo)
	errorStyle   = lipgloss.NewStyle().Foreground(colorNegative)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
