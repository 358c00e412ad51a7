package rmxchords

import (
	"io"
	"log"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxchords/config"
	"github.com/rapidmidiex/rmxchords/prefs"
	"github.com/rapidmidiex/rmxchords/quizui"
	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/settingsui"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, store prefs.Store) mainModel {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(io.Discard) })

	cfg := config.DefaultConfig()
	cfg.StateFile = ""
	m, err := NewModel(cfg, store, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	return m
}

// run executes cmd and feeds the resulting message back into m.
func run(m mainModel, cmd tea.Cmd) mainModel {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	next, _ := m.Update(msg)
	return next.(mainModel)
}

func TestNewModel(t *testing.T) {
	t.Run("uses the configured language without saved preferences", func(t *testing.T) {
		store := prefs.NewMemStore()
		cfg := config.DefaultConfig()
		cfg.Language = "german"
		m, err := NewModel(cfg, store, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Equal(t, "german", m.state.Language)
	})

	t.Run("saved preferences win", func(t *testing.T) {
		store := prefs.NewMemStore()
		require.NoError(t, store.Set(prefs.StateKey, `{"language": "english", "wrongAnswers": 3}`))
		cfg := config.DefaultConfig()
		cfg.Language = "german"
		m, err := NewModel(cfg, store, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Equal(t, "english", m.state.Language)
		require.Equal(t, 3, m.state.WrongAnswers)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.MaxAttempts = 0
		_, err := NewModel(cfg, prefs.NewMemStore(), rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, rmxerr.ErrInvalidConfig)
	})
}

func TestAnswersArePersisted(t *testing.T) {
	store := prefs.NewMemStore()
	m := newTestModel(t, store)

	next, cmd := m.Update(quizui.AnsweredMsg{Correct: true})
	m = next.(mainModel)
	require.Equal(t, 1, m.state.CorrectAnswers)
	require.NotNil(t, cmd)

	next, _ = m.Update(quizui.AnsweredMsg{Correct: false})
	m = next.(mainModel)
	require.Equal(t, 1, m.state.WrongAnswers)
	require.Nil(t, m.persist(m.state)())

	saved, err := prefs.Load(store)
	require.NoError(t, err)
	require.Equal(t, 2, saved.TotalAnswers())

	next, cmd = m.Update(quizui.ResetStatsMsg{})
	m = next.(mainModel)
	require.Equal(t, 0, m.state.TotalAnswers())
	require.Nil(t, cmd())

	saved, err = prefs.Load(store)
	require.NoError(t, err)
	require.Equal(t, m.state, saved)
}

func TestLaterSavesWin(t *testing.T) {
	store := prefs.NewMemStore()
	m := newTestModel(t, store)

	m, saveFirst := m.setState(m.state.CorrectAnswerGiven())
	m, saveSecond := m.setState(m.state.CorrectAnswerGiven())
	require.Equal(t, 2, m.state.CorrectAnswers)

	// commands run concurrently, the older save may finish last
	require.Nil(t, saveSecond())
	require.Nil(t, saveFirst())

	saved, err := prefs.Load(store)
	require.NoError(t, err)
	require.Equal(t, 2, saved.CorrectAnswers)
}

func TestViews(t *testing.T) {
	m := newTestModel(t, prefs.NewMemStore())
	require.Equal(t, quizView, m.curView)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(mainModel)
	require.Equal(t, settingsView, m.curView)
	require.Contains(t, m.View(), "Settings")

	m = run(m, func() tea.Msg { return settingsui.BackMsg{} })
	require.Equal(t, quizView, m.curView)
	require.Contains(t, m.View(), "Which chord is this?")
}

func TestSettingsChangesReachTheQuiz(t *testing.T) {
	store := prefs.NewMemStore()
	m := newTestModel(t, store)

	state := m.state
	state.Language = "german"
	next, cmd := m.Update(prefs.ChangedMsg{State: state})
	m = next.(mainModel)
	require.Nil(t, cmd())

	require.Contains(t, m.quiz.View(), "Grundstellung")
	saved, err := prefs.Load(store)
	require.NoError(t, err)
	require.Equal(t, "german", saved.Language)
}

func TestErrorsAreShown(t *testing.T) {
	m := newTestModel(t, prefs.NewMemStore())
	next, _ := m.Update(rmxerr.ErrMsg{Op: "save preferences", Err: io.ErrShortWrite})
	m = next.(mainModel)
	require.Contains(t, m.View(), "save preferences: short write")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, prefs.NewMemStore())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, tea.Quit(), cmd())
}
