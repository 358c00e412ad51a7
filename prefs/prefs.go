// Package prefs persists the user's preferences and answer statistics.
package prefs

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rapidmidiex/rmxchords/naming"
	"github.com/rapidmidiex/rmxchords/quiz"
	"github.com/rapidmidiex/rmxchords/theory"
)

// StateKey is the store key the state is saved under.
const StateKey = "chordGameState"

type (
	AllowedAccidentals struct {
		Sharp int `json:"sharp"`
		Flat  int `json:"flat"`
	}

	// ChangedMsg announces new preferences to the UI.
	ChangedMsg struct {
		State State
	}

	State struct {
		Language string `json:"language"`
		// Number of flats/sharps the generated keys may have.
		AllowedAccidentals AllowedAccidentals `json:"allowedAccidentals"`
		AllowedModes       []theory.Mode      `json:"allowedModes"`
		AllowedInversions  []int              `json:"allowedInversions"`
		CorrectAnswers     int                `json:"correctAnswers"`
		WrongAnswers       int                `json:"wrongAnswers"`
	}
)

// Default generates chords in every key, mode and inversion.
func Default() State {
	return State{
		Language:           naming.English,
		AllowedAccidentals: AllowedAccidentals{Sharp: theory.MaxAccidentals, Flat: theory.MaxAccidentals},
		AllowedModes:       []theory.Mode{theory.Major, theory.Minor},
		AllowedInversions:  []int{0, 1, 2},
	}
}

// Load reads the state from s. Fields missing from the stored record keep
// their Default value; a store without a record yields Default.
func Load(s Store) (State, error) {
	return LoadWithDefaults(s, Default())
}

// LoadWithDefaults is Load with a different record to backfill from.
// Stored fields holding values out of range are backfilled as well.
func LoadWithDefaults(s Store, defaults State) (State, error) {
	state := defaults
	// decoding reuses slice backing arrays
	state.AllowedModes = append([]theory.Mode(nil), defaults.AllowedModes...)
	state.AllowedInversions = append([]int(nil), defaults.AllowedInversions...)

	raw, ok, err := s.Get(StateKey)
	if err != nil {
		return defaults, fmt.Errorf("load state: %w", err)
	}
	if !ok {
		return defaults, nil
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return defaults, fmt.Errorf("decode state: %w", err)
	}
	return state.backfill(defaults), nil
}

// backfill replaces the fields of s that are out of range with those of defaults.
func (s State) backfill(defaults State) State {
	if _, err := naming.Lookup(s.Language); err != nil {
		s.Language = defaults.Language
	}
	if !validAccidentals(s.AllowedAccidentals.Sharp) {
		s.AllowedAccidentals.Sharp = defaults.AllowedAccidentals.Sharp
	}
	if !validAccidentals(s.AllowedAccidentals.Flat) {
		s.AllowedAccidentals.Flat = defaults.AllowedAccidentals.Flat
	}
	for _, m := range s.AllowedModes {
		if !m.Valid() {
			s.AllowedModes = append([]theory.Mode(nil), defaults.AllowedModes...)
			break
		}
	}
	for _, n := range s.AllowedInversions {
		if !theory.ValidInversion(n) {
			s.AllowedInversions = append([]int(nil), defaults.AllowedInversions...)
			break
		}
	}
	if s.CorrectAnswers < 0 || s.WrongAnswers < 0 {
		s = s.ResetStats()
	}
	return s
}

func validAccidentals(n int) bool {
	return n >= 0 && n <= theory.MaxAccidentals
}

// Save writes the state to s.
func Save(s Store, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.Set(StateKey, string(data)); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Constraints converts the preferences into generation constraints.
func (s State) Constraints() quiz.Constraints {
	return quiz.Constraints{
		MaxFlats:   s.AllowedAccidentals.Flat,
		MaxSharps:  s.AllowedAccidentals.Sharp,
		Modes:      s.AllowedModes,
		Inversions: s.AllowedInversions,
	}
}

func (s State) CorrectAnswerGiven() State {
	s.CorrectAnswers++
	return s
}

func (s State) WrongAnswerGiven() State {
	s.WrongAnswers++
	return s
}

func (s State) ResetStats() State {
	s.CorrectAnswers = 0
	s.WrongAnswers = 0
	return s
}

func (s State) TotalAnswers() int {
	return s.CorrectAnswers + s.WrongAnswers
}

// Percent returns the rounded share of correct answers, 0 when nothing was answered.
func (s State) Percent() int {
	total := s.TotalAnswers()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.CorrectAnswers) / float64(total)))
}

func (s State) AllowsMode(m theory.Mode) bool {
	for _, allowed := range s.AllowedModes {
		if allowed == m {
			return true
		}
	}
	return false
}

func (s State) AllowsInversion(n int) bool {
	for _, allowed := range s.AllowedInversions {
		if allowed == n {
			return true
		}
	}
	return false
}

// ToggleMode allows m if it is not allowed and disallows it otherwise.
// The result keeps the order of theory.Modes.
func (s State) ToggleMode(m theory.Mode) State {
	on := !s.AllowsMode(m)
	modes := make([]theory.Mode, 0, len(theory.Modes))
	for _, candidate := range theory.Modes {
		if candidate == m && on || candidate != m && s.AllowsMode(candidate) {
			modes = append(modes, candidate)
		}
	}
	s.AllowedModes = modes
	return s
}

// ToggleInversion allows n if it is not allowed and disallows it otherwise.
func (s State) ToggleInversion(n int) State {
	on := !s.AllowsInversion(n)
	inversions := make([]int, 0, len(quiz.AllInversions))
	for _, candidate := range quiz.AllInversions {
		if candidate == n && on || candidate != n && s.AllowsInversion(candidate) {
			inversions = append(inversions, candidate)
		}
	}
	s.AllowedInversions = inversions
	return s
}
