package naming_test

import (
	"testing"

	"github.com/rapidmidiex/rmxchords/naming"
	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/theory"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, lang := range naming.Languages() {
		tr, err := naming.Lookup(lang)
		require.NoError(t, err)
		require.NotNil(t, tr)
	}

	_, err := naming.Lookup("klingon")
	require.ErrorIs(t, err, rmxerr.ErrUnknownLanguage)
}

func TestKeyLabel(t *testing.T) {
	en, err := naming.Lookup(naming.English)
	require.NoError(t, err)
	de, err := naming.Lookup(naming.German)
	require.NoError(t, err)

	tt := []struct {
		tr   naming.Translator
		key  int
		mode theory.Mode
		want string
	}{
		{en, 6, theory.Major, "C major"},
		{en, 0, theory.Minor, "E♭ minor"},
		{de, 6, theory.Major, "C-Dur"},
		{de, 6, theory.Minor, "a-Moll"},
		{de, 11, theory.Major, "H-Dur"},
		{de, 4, theory.Major, "B-Dur"},
		{de, 8, theory.Minor, "h-Moll"},
		{de, 1, theory.Minor, "b-Moll"},
	}

	for _, tc := range tt {
		require.Equal(t, tc.want, naming.KeyLabel(tc.tr, tc.key, tc.mode))
	}
}

func TestInversionLabel(t *testing.T) {
	en, _ := naming.Lookup(naming.English)
	de, _ := naming.Lookup(naming.German)

	require.Equal(t, "first inversion", en.InversionLabel(1))
	require.Equal(t, "Quartsextakkord", de.InversionLabel(2))
	require.Equal(t, "inversion 5", en.InversionLabel(5))
}
