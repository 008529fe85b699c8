package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#e3b341")
	colorSubtle = lipgloss.Color("#8b949e")
	colorBorder = lipgloss.Color("#30363d")
	colorErr    = lipgloss.Color("#F25D94")
	colorOK     = lipgloss.Color("#3fb950")

	Base = lipgloss.NewStyle()

	Title = Base.
		Foreground(colorAccent).
		Bold(true).
		Padding(0, 2).
		MarginBottom(1)

	Subtle = Base.Foreground(colorSubtle)
	Err    = Base.Foreground(colorErr)
	OK     = Base.Foreground(colorOK)

	ItemFocused = Base.
			Foreground(lipgloss.Color("#0d1117")).
			Background(colorAccent).
			Bold(true)
	ItemBlurred = Base.Foreground(lipgloss.Color("#e6edf3"))

	InfoTextFocused = Base.Foreground(lipgloss.Color("#0d1117")).Background(colorAccent)
	InfoTextBlurred = Base.Foreground(colorSubtle)

	SectionTitle = Base.Foreground(colorAccent).Bold(true)
	SectionLine  = Base.Foreground(colorBorder)

	ListContainer = Base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(70)

	PopupBox = Base.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3)
)
