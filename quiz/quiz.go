// Package quiz generates random triad challenges and judges answers to them.
package quiz

import (
	"fmt"

	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/theory"
	"github.com/rapidmidiex/rmxchords/vpiano"
)

// DefaultMaxAttempts bounds how often Next retries to avoid repeating the previous chord.
const DefaultMaxAttempts = 50

type (
	// Rand is satisfied by *math/rand.Rand.
	Rand interface {
		Intn(n int) int
	}

	// Descriptor is a generated challenge. Chord is always in root position;
	// the inversion is applied when the chord is shown.
	Descriptor struct {
		// Position on the circle of fifths, 0 (six flats) to 12 (six sharps).
		Key       int          `json:"key"`
		Mode      theory.Mode  `json:"mode"`
		Inversion int          `json:"inversion"`
		Chord     theory.Chord `json:"chord"`
	}

	// Answer is what the user believes the descriptor to be.
	Answer struct {
		Key       int
		Mode      theory.Mode
		Inversion int
	}

	Constraints struct {
		MaxFlats  int
		MaxSharps int
		// Empty means all modes.
		Modes []theory.Mode
		// Empty means all inversions.
		Inversions []int
	}

	Generator struct {
		Rand Rand
		// Values below 1 use DefaultMaxAttempts.
		MaxAttempts int
	}
)

// AllInversions lists root position, first and second inversion.
var AllInversions = []int{0, 1, 2}

func (c Constraints) Validate() error {
	if c.MaxFlats < 0 || c.MaxFlats > theory.MaxAccidentals {
		return fmt.Errorf("%w: max flats %d out of range [0, %d]", rmxerr.ErrInvalidConfig, c.MaxFlats, theory.MaxAccidentals)
	}
	if c.MaxSharps < 0 || c.MaxSharps > theory.MaxAccidentals {
		return fmt.Errorf("%w: max sharps %d out of range [0, %d]", rmxerr.ErrInvalidConfig, c.MaxSharps, theory.MaxAccidentals)
	}
	for _, m := range c.Modes {
		if !m.Valid() {
			return fmt.Errorf("%w: unknown mode %d", rmxerr.ErrInvalidConfig, int(m))
		}
	}
	for _, n := range c.Inversions {
		if !theory.ValidInversion(n) {
			return fmt.Errorf("%w: inversion %d out of range [0, 2]", rmxerr.ErrInvalidConfig, n)
		}
	}
	return nil
}

// KeyRange returns the lowest and highest key position that may be generated.
func (c Constraints) KeyRange() (lo, hi int) {
	return theory.CenterKey - c.MaxFlats, theory.CenterKey + c.MaxSharps
}

func (c Constraints) modes() []theory.Mode {
	if len(c.Modes) == 0 {
		return theory.Modes
	}
	return c.Modes
}

func (c Constraints) inversions() []int {
	if len(c.Inversions) == 0 {
		return AllInversions
	}
	return c.Inversions
}

// RandomTriad picks a key, mode and inversion uniformly within c.
func RandomTriad(r Rand, c Constraints) (Descriptor, error) {
	if err := c.Validate(); err != nil {
		return Descriptor{}, err
	}

	// C + flat keys + sharp keys
	numKeys := 1 + c.MaxFlats + c.MaxSharps
	lowest, _ := c.KeyRange()
	key := lowest + r.Intn(numKeys)

	modes := c.modes()
	mode := modes[r.Intn(len(modes))]

	inversions := c.inversions()
	inv := inversions[r.Intn(len(inversions))]

	return Descriptor{
		Key:       key,
		Mode:      mode,
		Inversion: inv,
		Chord:     theory.Triad(key, mode),
	}, nil
}

// Next generates a descriptor that differs from prev, giving up after
// MaxAttempts tries and returning the last one generated. prev may be nil.
func (g Generator) Next(prev *Descriptor, c Constraints) (Descriptor, error) {
	attempts := g.MaxAttempts
	if attempts < 1 {
		attempts = DefaultMaxAttempts
	}

	var d Descriptor
	for i := 0; i < attempts; i++ {
		var err error
		d, err = RandomTriad(g.Rand, c)
		if err != nil {
			return Descriptor{}, err
		}
		if prev == nil || d != *prev {
			break
		}
	}
	return d, nil
}

// SameKey reports whether two key positions sound the same.
// G♭ (0) and F♯ (12) are indistinguishable on the keyboard.
func SameKey(a, b int) bool {
	return a == b || (a == theory.MinKey && b == theory.MaxKey) || (a == theory.MaxKey && b == theory.MinKey)
}

// Matches reports whether a is a correct classification of d.
func (d Descriptor) Matches(a Answer) bool {
	return d.Mode == a.Mode && d.Inversion == a.Inversion && SameKey(d.Key, a.Key)
}

// Answer returns the correct answer for d.
func (d Descriptor) Answer() Answer {
	return Answer{Key: d.Key, Mode: d.Mode, Inversion: d.Inversion}
}

// Voicing returns the chord notes in the order they are played, lowest first.
func (d Descriptor) Voicing() theory.Chord {
	return theory.Inversion(d.Inversion, d.Chord)
}

// Roles returns the function of each note of Voicing.
func (d Descriptor) Roles() [3]theory.Role {
	return theory.Inversion(d.Inversion, theory.Roles)
}

// KeyIndices returns the keyboard keys of Voicing. A spelling missing from
// the keyboard table is a bug in the theory tables and panics.
func (d Descriptor) KeyIndices() []int {
	v := d.Voicing()
	indices := vpiano.NoteNamesToKeyIndices(v[:])
	if len(indices) != len(v) {
		panic(fmt.Sprintf("quiz: chord %v has spellings missing from the keyboard", v))
	}
	return indices
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s inv=%d key=%d %v", theory.KeyRoot(d.Key, d.Mode), d.Mode, d.Inversion, d.Key, d.Chord)
}
