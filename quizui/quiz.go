package quizui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/rapidmidiex/rmxchords/keymap"
	"github.com/rapidmidiex/rmxchords/naming"
	"github.com/rapidmidiex/rmxchords/prefs"
	"github.com/rapidmidiex/rmxchords/quiz"
	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/rtt"
	"github.com/rapidmidiex/rmxchords/styles"
	"github.com/rapidmidiex/rmxchords/theory"
	"github.com/rapidmidiex/rmxchords/vpiano"
)

var docStyle = styles.DocStyle

type (
	// AnsweredMsg is sent after the user submitted an answer.
	AnsweredMsg struct {
		// Round the answer was given in.
		Round   uuid.UUID
		Correct bool
		At      time.Time
	}

	ResetStatsMsg struct{}

	model struct {
		piano vpiano.Notes
		gen   quiz.Generator
		tr    naming.Translator
		state prefs.State

		// Chord to classify, nil until the first one was generated.
		current *quiz.Descriptor
		// Answer being composed by the user.
		answer quiz.Answer
		solved bool
		// Result of the latest submission, empty before the first one.
		feedback string
		correct  bool

		// Current challenge round and when each round with an answer
		// still on its way was shown.
		// { [roundID]: shownAt }
		round   uuid.UUID
		shownAt map[uuid.UUID]time.Time
		// Response times of all submitted answers.
		answerTimes []time.Duration
		timing      rtt.CalcMsg

		help help.Model
		keys keymap.QuizKeys
		err  error
		now  func() time.Time
		log  *log.Logger
	}
)

// New creates the quiz screen with a keyboard of KeyboardOctaves octaves starting at start.
func New(state prefs.State, gen quiz.Generator, start vpiano.Octave) model {
	tr, err := naming.Lookup(state.Language)
	if err != nil {
		tr, _ = naming.Lookup(naming.English)
	}

	m := model{
		piano:   vpiano.MakeKeyboard(start, vpiano.KeyboardOctaves),
		gen:     gen,
		tr:      tr,
		state:   state,
		answer:  blankAnswer(),
		shownAt: make(map[uuid.UUID]time.Time),
		help:    help.New(),
		keys:    keymap.QuizKeys{Mapping: keymap.DefaultMapping},
		now:     time.Now,
		log:     log.Default(),
	}
	return m.nextChord()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnsweredMsg:
		shownAt, ok := m.shownAt[msg.Round]
		if !ok {
			m.log.Printf("no response time for answer of skipped round %s", msg.Round)
			return m, nil
		}
		if msg.Correct {
			delete(m.shownAt, msg.Round)
		}
		elapsed := msg.At.Sub(shownAt)
		m.answerTimes = append(m.answerTimes, elapsed)
		return m, rtt.CalcStats(elapsed, m.answerTimes)

	case rtt.CalcMsg:
		m.timing = msg

	case prefs.ChangedMsg:
		m.state = msg.State
		if tr, err := naming.Lookup(msg.State.Language); err == nil {
			m.tr = tr
		}
		// retry once the preferences allow a chord again
		if m.current == nil || m.err != nil {
			m = m.nextChord()
		}

	case rmxerr.ErrMsg:
		m.err = msg
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mapping := keymap.DefaultMapping

	switch {
	case key.Matches(msg, mapping.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, mapping.ResetStats):
		return m, resetStats()

	case m.solved && key.Matches(msg, mapping.NextChord, mapping.Submit):
		m = m.nextChord()

	case m.solved:
		// wait for the next chord

	case key.Matches(msg, mapping.PrevKey):
		if theory.ValidKey(m.answer.Key - 1) {
			m.answer.Key--
		}
	case key.Matches(msg, mapping.NextKey):
		if theory.ValidKey(m.answer.Key + 1) {
			m.answer.Key++
		}
	case key.Matches(msg, mapping.ToggleMode):
		m.answer.Mode = (m.answer.Mode + 1) % theory.Mode(len(theory.Modes))
	case key.Matches(msg, mapping.Inversion):
		m.answer.Inversion = int(msg.Runes[0] - '0')

	case key.Matches(msg, mapping.Submit):
		return m.submit()

	case key.Matches(msg, mapping.NextChord):
		// skip the chord, showing what it was
		if m.current != nil {
			m.feedback = "skipped: " + m.label(m.current.Answer())
			m.correct = false
		}
		m = m.nextChord()
	}

	return m, nil
}

// submit judges the composed answer. A correct answer reveals the chord,
// a wrong one clears the answer and keeps the chord.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}
	submitted := m.answer
	m.correct = m.current.Matches(submitted)

	if m.correct {
		m.solved = true
		m.feedback = m.label(submitted)
	} else {
		m.feedback = m.label(submitted) + "?"
		m.answer = blankAnswer()
	}
	m.log.Printf("answer %+v for %s correct=%t in round %s", submitted, m.current, m.correct, m.round)

	return m, answered(m.round, m.correct, m.now())
}

func (m model) label(a quiz.Answer) string {
	return naming.KeyLabel(m.tr, a.Key, a.Mode) + ", " + m.tr.InversionLabel(a.Inversion)
}

func (m model) nextChord() model {
	d, err := m.gen.Next(m.current, m.state.Constraints())
	if err != nil {
		m.err = rmxerr.ErrMsg{Op: "next chord", Err: err}
		return m
	}
	m.log.Printf("next chord: %s", d)

	// a solved round keeps its entry until the answer arrives,
	// answers to a skipped round are not timed
	if m.current != nil && !m.solved {
		delete(m.shownAt, m.round)
	}
	m.current = &d
	m.solved = false
	m.err = nil
	m.answer = blankAnswer()
	m.round = uuid.New()
	m.shownAt[m.round] = m.now()
	return m
}

func (m model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}

	doc.WriteString(styles.BoldStyle.Render("Which chord is this?") + "\n\n")
	doc.WriteString(m.keyboardView() + "\n\n")
	doc.WriteString(m.answerView() + "\n\n")

	if m.err != nil {
		doc.WriteString(styles.RenderError(m.err.Error()) + "\n\n")
	} else if m.feedback != "" {
		doc.WriteString(styles.RenderFeedback(m.correct, m.feedback) + "\n\n")
	}

	doc.WriteString(m.statusView())
	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	return docStyle.Render(doc.String())
}

// highlights returns the keyboard positions of the current chord and their colors.
func (m model) highlights() map[int]lipgloss.Color {
	out := make(map[int]lipgloss.Color)
	if m.current == nil {
		return out
	}

	roles := m.current.Roles()
	for i, pos := range m.piano.Place(m.current.KeyIndices()) {
		if !m.solved {
			out[pos] = styles.Highlight
			continue
		}
		switch roles[i] {
		case theory.Prime:
			out[pos] = styles.PrimeColor
		case theory.Third:
			out[pos] = styles.ThirdColor
		case theory.Fifth:
			out[pos] = styles.FifthColor
		}
	}
	return out
}

func (m model) keyboardView() string {
	highlighted := m.highlights()
	keys := make([]string, 0, len(m.piano))
	for pos, n := range m.piano {
		style := styles.WhiteKey
		if n.IsAccidental {
			style = styles.BlackKey
		}
		label := ""
		if c, ok := highlighted[pos]; ok {
			style = style.Copy().Background(c)
			label = "●"
		}
		keys = append(keys, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, keys...)
}

func (m model) answerView() string {
	keyLabel := styles.SelectedOption.Render("◀ " + naming.KeyLabel(m.tr, m.answer.Key, m.answer.Mode) + " ▶")

	inversions := make([]string, 0, 3)
	for n := range quiz.AllInversions {
		style := styles.Option
		if n == m.answer.Inversion {
			style = styles.SelectedOption
		}
		inversions = append(inversions, style.Render(fmt.Sprintf("%d %s", n, m.tr.InversionLabel(n))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, keyLabel, "  ", lipgloss.JoinHorizontal(lipgloss.Top, inversions...))
}

func (m model) statusView() string {
	score := styles.CorrectStyle.Render(fmt.Sprintf("%d / %d", m.state.CorrectAnswers, m.state.TotalAnswers())) +
		styles.StatusText.Render(fmt.Sprintf("%d%%", m.state.Percent()))

	times := ""
	if len(m.answerTimes) > 0 {
		times = styles.TimeStyle.Render(fmt.Sprintf("last %s  avg %s  best %s  worst %s",
			rtt.Round(m.timing.Latest), rtt.Round(m.timing.Avg), rtt.Round(m.timing.Min), rtt.Round(m.timing.Max)))
	}
	return styles.StatusBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, score, times))
}

func blankAnswer() quiz.Answer {
	return quiz.Answer{Key: theory.CenterKey, Mode: theory.Major}
}

func answered(round uuid.UUID, correct bool, at time.Time) tea.Cmd {
	return func() tea.Msg {
		return AnsweredMsg{Round: round, Correct: correct, At: at}
	}
}

func resetStats() tea.Cmd {
	return func() tea.Msg {
		return ResetStatsMsg{}
	}
}
