package theory_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rapidmidiex/rmxchords/theory"
	"github.com/stretchr/testify/require"
)

func TestApplyAccidental(t *testing.T) {
	t.Run("raises C in A major", func(t *testing.T) {
		require.Equal(t, "C♯", theory.ApplyAccidental(9, 0))
	})

	t.Run("lowers B in F major", func(t *testing.T) {
		require.Equal(t, "B♭", theory.ApplyAccidental(5, 6))
	})

	t.Run("leaves naturals alone in C major", func(t *testing.T) {
		for offset, want := range []string{"C", "D", "E", "F", "G", "A", "B"} {
			require.Equal(t, want, theory.ApplyAccidental(theory.CenterKey, offset))
		}
	})

	t.Run("uses E♯ in F♯ major and C♭ in G♭ major", func(t *testing.T) {
		require.Equal(t, "E♯", theory.ApplyAccidental(theory.MaxKey, 2))
		require.Equal(t, "C♭", theory.ApplyAccidental(theory.MinKey, 0))
	})
}

func TestAddNote(t *testing.T) {
	// third above A in A major
	require.Equal(t, "C♯", theory.AddNote(9, 5, 2))
	// fifth above B wraps around to F♯ in B major
	require.Equal(t, "F♯", theory.AddNote(11, 6, 4))
}

func TestTriad(t *testing.T) {
	tt := []struct {
		key  int
		mode theory.Mode
		want theory.Chord
	}{
		{6, theory.Major, theory.Chord{"C", "E", "G"}},
		{6, theory.Minor, theory.Chord{"A", "C", "E"}},
		{0, theory.Major, theory.Chord{"G♭", "B♭", "D♭"}},
		{12, theory.Major, theory.Chord{"F♯", "A♯", "C♯"}},
		{0, theory.Minor, theory.Chord{"E♭", "G♭", "B♭"}},
		{12, theory.Minor, theory.Chord{"D♯", "F♯", "A♯"}},
		{2, theory.Major, theory.Chord{"A♭", "C", "E♭"}},
		{9, theory.Minor, theory.Chord{"F♯", "A", "C♯"}},
	}

	for _, tc := range tt {
		require.Equal(t, tc.want, theory.Triad(tc.key, tc.mode), "key %d %s", tc.key, tc.mode)
	}

	t.Run("every key yields three distinct letters with at most one accidental", func(t *testing.T) {
		for key := theory.MinKey; key <= theory.MaxKey; key++ {
			for _, mode := range theory.Modes {
				chord := theory.Triad(key, mode)
				letters := map[byte]struct{}{}
				for _, note := range chord {
					require.Contains(t, "ABCDEFG", note[:1])
					rest := note[1:]
					require.True(t, rest == "" || rest == theory.SharpSymbol || rest == theory.FlatSymbol,
						"unexpected spelling %q", note)
					letters[note[0]] = struct{}{}
				}
				require.Len(t, letters, 3)
			}
		}
	})
}

func TestScale(t *testing.T) {
	for key := theory.MinKey; key <= theory.MaxKey; key++ {
		sharps, flats := 0, 0
		for _, note := range theory.Scale(key) {
			if strings.HasSuffix(note, theory.SharpSymbol) {
				sharps++
			}
			if strings.HasSuffix(note, theory.FlatSymbol) {
				flats++
			}
		}
		require.Equal(t, theory.Accidentals(key), sharps+flats, "key %d", key)
		require.Equal(t, theory.SharpCount(key), sharps, "key %d", key)
		require.Equal(t, theory.FlatCount(key), flats, "key %d", key)
		require.False(t, sharps > 0 && flats > 0, "key %d mixes sharps and flats", key)
	}
}

func TestKeyRoot(t *testing.T) {
	require.Equal(t, "E♭", theory.KeyRoot(0, theory.Minor))
	require.Equal(t, "G♭", theory.KeyRoot(0, theory.Major))
	require.Equal(t, "G♯", theory.KeyRoot(11, theory.Minor))
}

func TestInversion(t *testing.T) {
	c := theory.Chord{"C", "E", "G"}

	t.Run("zero is identity", func(t *testing.T) {
		require.Equal(t, c, theory.Chord(theory.Inversion(0, c)))
	})

	t.Run("rotates left", func(t *testing.T) {
		require.Equal(t, theory.Chord{"E", "G", "C"}, theory.Chord(theory.Inversion(1, c)))
		require.Equal(t, theory.Chord{"G", "C", "E"}, theory.Chord(theory.Inversion(2, c)))
	})

	t.Run("has period three", func(t *testing.T) {
		for n := -7; n <= 7; n++ {
			want := theory.Inversion(((n%3)+3)%3, c)
			require.Equal(t, want, theory.Inversion(n, c), "n=%d", n)
		}
		require.Equal(t, c, theory.Chord(theory.Inversion(3, c)))
		require.Equal(t, theory.Chord{"G", "C", "E"}, theory.Chord(theory.Inversion(-1, c)))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		_ = theory.Inversion(1, c)
		require.Equal(t, theory.Chord{"C", "E", "G"}, c)
	})

	t.Run("keeps role labels aligned with notes", func(t *testing.T) {
		notes := theory.Inversion(2, c)
		roles := theory.Inversion(2, theory.Roles)
		require.Equal(t, "G", notes[0])
		require.Equal(t, theory.Fifth, roles[0])
		require.Equal(t, theory.Prime, roles[1])
	})
}

func TestModeJSON(t *testing.T) {
	got, err := json.Marshal(theory.Minor)
	require.NoError(t, err)
	require.Equal(t, `"minor"`, string(got))

	var m theory.Mode
	require.NoError(t, json.Unmarshal([]byte(`"major"`), &m))
	require.Equal(t, theory.Major, m)

	require.Error(t, json.Unmarshal([]byte(`"dorian"`), &m))
}
