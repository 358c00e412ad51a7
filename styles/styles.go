package styles

import "github.com/charmbracelet/lipgloss"

const (
	// Width of the settings table and the status bar.
	Width = 72
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Color   = lipgloss.AdaptiveColor{Light: "#111222", Dark: "#FAFAFA"}
	Primary = lipgloss.Color("#4636f5")
	Green   = lipgloss.Color("#9dcc3a")
	Red     = lipgloss.Color("#ff0000")
	White   = lipgloss.Color("#ffffff")
	Black   = lipgloss.Color("#000000")
	Orange  = lipgloss.Color("#D3A347")
	Purple  = lipgloss.Color("#7D56F4")

	TextStyle = lipgloss.NewStyle().Foreground(Color)
	BoldStyle = TextStyle.Copy().Bold(true)
	Subtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	// Keyboard.
	keyBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}

	WhiteKey = lipgloss.NewStyle().
			Border(keyBorder, true).
			BorderForeground(lipgloss.Color("240")).
			Background(White).
			Foreground(Black).
			Width(2).
			Height(4).
			Align(lipgloss.Center)
	BlackKey = WhiteKey.Copy().
			Background(Black).
			Foreground(White).
			Height(2).
			Align(lipgloss.Center)

	// Keys of the chord to classify.
	Highlight = Orange
	// Keys of a solved chord, by function.
	PrimeColor = Red
	ThirdColor = Green
	FifthColor = Primary

	// Answer selector.
	Option         = lipgloss.NewStyle().Padding(0, 1)
	SelectedOption = Option.Copy().
			Foreground(White).
			Background(Purple).
			Bold(true)

	// Status Bar.
	StatusNugget = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Padding(0, 1)
	CorrectStyle = StatusNugget.Copy().
			Background(Green)
	WrongStyle = StatusNugget.Copy().
			Background(lipgloss.Color("#FF5F87"))
	TimeStyle = StatusNugget.Copy().
			Background(lipgloss.Color("#e783f2")).
			Align(lipgloss.Right)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	StatusText = lipgloss.NewStyle().Inherit(StatusBarStyle).Padding(0, 1)

	MessageText = lipgloss.NewStyle().Align(lipgloss.Left)

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Center).PaddingTop(1)
	// Page
	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}

// RenderFeedback marks an answer as correct or wrong.
func RenderFeedback(correct bool, msg string) string {
	if correct {
		return CorrectStyle.Render("✓") + StatusText.Render(msg)
	}
	return WrongStyle.Render("✗") + StatusText.Render(msg)
}
