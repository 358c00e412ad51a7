package keymap_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxchords/keymap"
	"github.com/stretchr/testify/require"
)

func TestNextChordHelpListsItsKeys(t *testing.T) {
	next := keymap.DefaultMapping.NextChord
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, next))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, next))
	require.Equal(t, "n/space", next.Help().Key)
}
