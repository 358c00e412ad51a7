package rmxchords

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rapidmidiex/rmxchords/config"
	"github.com/rapidmidiex/rmxchords/keymap"
	"github.com/rapidmidiex/rmxchords/prefs"
	"github.com/rapidmidiex/rmxchords/quiz"
	"github.com/rapidmidiex/rmxchords/quizui"
	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/settingsui"
	"github.com/rapidmidiex/rmxchords/styles"
	"github.com/rapidmidiex/rmxchords/vpiano"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type (
	appView int

	mainModel struct {
		curView  appView
		quiz     tea.Model
		settings tea.Model
		// Preferences and statistics, shared by both views.
		state    prefs.State
		saver    *prefs.Saver
		curError string
		log      *log.Logger
	}
)

const (
	quizView appView = iota
	settingsView
)

func NewModel(cfg *config.Config, store prefs.Store, r quiz.Rand) (mainModel, error) {
	if err := cfg.Validate(); err != nil {
		return mainModel{}, err
	}

	defaults := prefs.Default()
	defaults.Language = cfg.Language
	state, err := prefs.LoadWithDefaults(store, defaults)
	if err != nil {
		// corrupt records fall back to the defaults
		log.Printf("using default preferences: %v", err)
	}

	gen := quiz.Generator{Rand: r, MaxAttempts: cfg.MaxAttempts}

	return mainModel{
		curView:  quizView,
		quiz:     quizui.New(state, gen, vpiano.Octave(cfg.StartOctave)),
		settings: settingsui.New(state),
		state:    state,
		saver:    prefs.NewSaver(store),
		log:      log.Default(),
	}, nil
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.quiz.Init(),
		m.settings.Init(),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case rmxerr.ErrMsg:
		m.log.Println(msg)
		m.curError = msg.Error()
		return m, nil

	case tea.KeyMsg:
		m.curError = ""
		switch {
		case key.Matches(msg, keymap.DefaultMapping.Quit):
			return m, tea.Quit
		case key.Matches(msg, keymap.DefaultMapping.CycleView):
			m.curView = (m.curView + 1) % 2
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.quiz, cmd = m.quiz.Update(msg)
		cmds = append(cmds, cmd)
		m.settings, cmd = m.settings.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case settingsui.BackMsg:
		m.curView = quizView
		return m, nil

	case quizui.AnsweredMsg:
		if msg.Correct {
			m, cmd = m.setState(m.state.CorrectAnswerGiven())
		} else {
			m, cmd = m.setState(m.state.WrongAnswerGiven())
		}
		cmds = append(cmds, cmd)
		// response times are tracked by the quiz
		m.quiz, cmd = m.quiz.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case quizui.ResetStatsMsg:
		m, cmd = m.setState(m.state.ResetStats())
		return m, cmd

	case prefs.ChangedMsg:
		m, cmd = m.setState(msg.State)
		return m, cmd
	}

	switch m.curView {
	case quizView:
		m.quiz, cmd = m.quiz.Update(msg)
	case settingsView:
		m.settings, cmd = m.settings.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m mainModel) View() string {
	var view string
	switch m.curView {
	case settingsView:
		view = m.settings.View()
	default:
		view = m.quiz.View()
	}

	if m.curError != "" {
		view += "\n" + styles.DocStyle.Render(styles.RenderError(m.curError))
	}
	return view
}

// setState shares s with both views and persists it.
func (m mainModel) setState(s prefs.State) (mainModel, tea.Cmd) {
	m.state = s
	changed := prefs.ChangedMsg{State: s}
	m.quiz, _ = m.quiz.Update(changed)
	m.settings, _ = m.settings.Update(changed)
	return m, m.persist(s)
}

// persist saves s unless a later state was saved first.
func (m mainModel) persist(s prefs.State) tea.Cmd {
	save := m.saver.Snapshot(s)
	return func() tea.Msg {
		if err := save(); err != nil {
			return rmxerr.ErrMsg{Op: "save preferences", Err: err}
		}
		return nil
	}
}

// Run starts the trainer and blocks until the user quits.
func Run(cfg *config.Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "rmxchords")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := prefs.OpenStore(cfg.StateFile)
	if err != nil {
		// preferences stay in memory
		log.Printf("preferences will not be persisted: %v", err)
	}

	m, err := NewModel(cfg, store, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
