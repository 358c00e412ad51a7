package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	CycleView  key.Binding
	PrevKey    key.Binding
	NextKey    key.Binding
	ToggleMode key.Binding
	Inversion  key.Binding
	Submit     key.Binding
	NextChord  key.Binding
	ResetStats key.Binding
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Toggle     key.Binding
	GoBack     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var DefaultMapping = Mapping{
	CycleView: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "settings / quiz"),
	),
	PrevKey: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "flatter key"),
	),
	NextKey: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "sharper key"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("up", "down", "k", "j", "m"),
		key.WithHelp("↑/↓", "major / minor"),
	),
	Inversion: key.NewBinding(
		key.WithKeys("0", "1", "2"),
		key.WithHelp("0-2", "inversion"),
	),
	Submit: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String()),
		key.WithHelp("enter", "answer"),
	),
	NextChord: key.NewBinding(
		key.WithKeys("n", " ", "space"),
		key.WithHelp("n/space", "next chord"),
	),
	ResetStats: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset stats"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/-", "decrease"),
	),
	Increase: key.NewBinding(
		key.WithKeys("right", "l", "+"),
		key.WithHelp("→/+", "increase"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", tea.KeyEnter.String()),
		key.WithHelp("space", "toggle"),
	),
	GoBack: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String(), "q"),
		key.WithHelp("q", "quit"),
	),
}

// QuizKeys is the help.KeyMap of the quiz screen.
type QuizKeys struct{ Mapping }

func (k QuizKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevKey, k.NextKey, k.ToggleMode, k.Inversion, k.Submit, k.Help}
}

func (k QuizKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevKey, k.NextKey, k.ToggleMode, k.Inversion},
		{k.Submit, k.NextChord, k.ResetStats},
		{k.CycleView, k.Help, k.Quit},
	}
}

// SettingsKeys is the help.KeyMap of the settings screen.
type SettingsKeys struct{ Mapping }

func (k SettingsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Toggle, k.GoBack}
}

func (k SettingsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Decrease, k.Increase, k.Toggle},
		{k.GoBack, k.CycleView, k.Quit},
	}
}
