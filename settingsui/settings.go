package settingsui

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rapidmidiex/rmxchords/keymap"
	"github.com/rapidmidiex/rmxchords/naming"
	"github.com/rapidmidiex/rmxchords/prefs"
	"github.com/rapidmidiex/rmxchords/styles"
	"github.com/rapidmidiex/rmxchords/theory"
)

var (
	docStyle = styles.DocStyle
)

// Rows of the settings table, top to bottom.
const (
	maxFlatsRow = iota
	maxSharpsRow
	majorRow
	minorRow
	rootPositionRow
	firstInversionRow
	secondInversionRow
	languageRow
	numRows
)

// BackMsg asks to return to the quiz.
type BackMsg struct{}

type Model struct {
	state prefs.State
	table table.Model
	help  help.Model
	keys  keymap.SettingsKeys
	log   *log.Logger
}

func New(state prefs.State) Model {
	m := Model{
		state: state,
		help:  help.New(),
		keys:  keymap.SettingsKeys{Mapping: keymap.DefaultMapping},
		log:   log.Default(),
	}
	m.table = makeSettingsTable(m.rows())
	m.table.Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mapping := keymap.DefaultMapping

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width - 10)
		m.help.Width = msg.Width

	case prefs.ChangedMsg:
		m.state = msg.State
		m.table.SetRows(m.rows())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, mapping.GoBack):
			return m, goBack()
		case key.Matches(msg, mapping.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, mapping.Up, mapping.Down):
			// only navigation reaches the table, its keymap pages on space
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case key.Matches(msg, mapping.Decrease):
			return m.change(m.table.Cursor(), -1)
		case key.Matches(msg, mapping.Increase):
			return m.change(m.table.Cursor(), +1)
		case key.Matches(msg, mapping.Toggle):
			return m.change(m.table.Cursor(), 0)
		}
	}

	return m, nil
}

// change applies delta to the setting in row. Toggles ignore the sign of delta.
func (m Model) change(row, delta int) (tea.Model, tea.Cmd) {
	s := m.state
	switch row {
	case maxFlatsRow:
		s.AllowedAccidentals.Flat = clamp(s.AllowedAccidentals.Flat+delta, 0, theory.MaxAccidentals)
	case maxSharpsRow:
		s.AllowedAccidentals.Sharp = clamp(s.AllowedAccidentals.Sharp+delta, 0, theory.MaxAccidentals)
	case majorRow:
		s = s.ToggleMode(theory.Major)
	case minorRow:
		s = s.ToggleMode(theory.Minor)
	case rootPositionRow, firstInversionRow, secondInversionRow:
		s = s.ToggleInversion(row - rootPositionRow)
	case languageRow:
		s.Language = cycle(naming.Languages(), s.Language, delta)
	default:
		return m, nil
	}

	m.log.Printf("settings changed: %+v", s)
	m.state = s
	m.table.SetRows(m.rows())
	return m, changed(s)
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.BoldStyle.Render("Settings") + "\n\n")
	doc.WriteString(styles.BaseStyle.Width(styles.Width).Render(m.table.View()))

	if len(m.state.AllowedModes) == 0 || len(m.state.AllowedInversions) == 0 {
		doc.WriteString("\n" + styles.Subtle.Render("Nothing selected means everything is allowed."))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}

	return docStyle.Render(doc.String())
}

func (m Model) rows() []table.Row {
	tr, err := naming.Lookup(m.state.Language)
	if err != nil {
		tr, _ = naming.Lookup(naming.English)
	}
	s := m.state
	lo, hi := s.Constraints().KeyRange()

	return []table.Row{
		{"Max flats", fmt.Sprintf("%d", s.AllowedAccidentals.Flat), "from " + naming.KeyLabel(tr, lo, theory.Major)},
		{"Max sharps", fmt.Sprintf("%d", s.AllowedAccidentals.Sharp), "up to " + naming.KeyLabel(tr, hi, theory.Major)},
		{"Major", checkbox(s.AllowsMode(theory.Major)), ""},
		{"Minor", checkbox(s.AllowsMode(theory.Minor)), ""},
		{"Inversion 0", checkbox(s.AllowsInversion(0)), tr.InversionLabel(0)},
		{"Inversion 1", checkbox(s.AllowsInversion(1)), tr.InversionLabel(1)},
		{"Inversion 2", checkbox(s.AllowsInversion(2)), tr.InversionLabel(2)},
		{"Language", s.Language, ""},
	}
}

func makeSettingsTable(rows []table.Row) table.Model {
	columns := []table.Column{
		{Title: "Setting", Width: 15},
		{Title: "Value", Width: 10},
		{Title: "", Width: 25},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(numRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cycle returns the entry delta steps away from cur, wrapping around.
// A zero delta moves forward.
func cycle(options []string, cur string, delta int) string {
	if delta == 0 {
		delta = 1
	}
	i := 0
	for j, o := range options {
		if o == cur {
			i = j
		}
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

func changed(s prefs.State) tea.Cmd {
	return func() tea.Msg {
		return prefs.ChangedMsg{State: s}
	}
}

func goBack() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}
