// Package theory maps positions on the circle of fifths to the note names of
// major and minor triads.
package theory

import (
	"encoding/json"
	"fmt"
)

type (
	Mode int

	// Chord holds the note names of a triad in root position: root, third, fifth.
	Chord [3]string

	// Role is the function of a note within a triad.
	Role int
)

const (
	Major Mode = iota
	Minor
)

const (
	Prime Role = iota
	Third
	Fifth
)

const (
	// MinKey is G♭ major / E♭ minor, six flats.
	MinKey = 0
	// CenterKey is C major / A minor, no accidentals.
	CenterKey = 6
	// MaxKey is F♯ major / D♯ minor, six sharps. Enharmonic to MinKey.
	MaxKey = 12

	MaxAccidentals = 6
)

const (
	FlatSymbol        = "♭"
	SharpSymbol       = "♯"
	DoubleFlatSymbol  = "𝄫"
	DoubleSharpSymbol = "𝄪"
)

var (
	Modes = []Mode{Major, Minor}
	Roles = [3]Role{Prime, Third, Fifth}

	baseNotes = [7]string{"C", "D", "E", "F", "G", "A", "B"}

	// Base note offset of the tonic for every key position.
	//               G♭ D♭ A♭ E♭ B♭ F  C  G  D  A  E  B  F♯
	majorBaseNote = [13]int{4, 1, 5, 2, 6, 3, 0, 4, 1, 5, 2, 6, 3}
	//               E♭ B♭ F  C  G  D  A  E  B  F♯ C♯ G♯ D♯
	minorBaseNote = [13]int{2, 6, 3, 0, 4, 1, 5, 2, 6, 3, 0, 4, 1}

	sharpsPerKey = [13]int{0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6}
	flatsPerKey  = [13]int{6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0}

	// Raised/lowered base notes in the order they appear in key signatures.
	//                 F♯ C♯ G♯ D♯ A♯ E♯ B♯
	sharpOrder = [7]int{3, 0, 4, 1, 5, 2, 6}
	//                 B♭ E♭ A♭ D♭ G♭ C♭ F♭
	flatOrder = [7]int{6, 2, 5, 1, 4, 0, 3}
)

func (m Mode) String() string {
	switch m {
	case Major:
		return "major"
	case Minor:
		return "minor"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode named "major" or "minor".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	}
	return 0, fmt.Errorf("unknown mode: %q", s)
}

func (m Mode) Valid() bool {
	return m == Major || m == Minor
}

func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("unknown Mode value: %d", int(m))
	}
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseMode(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (r Role) String() string {
	switch r {
	case Prime:
		return "prime"
	case Third:
		return "third"
	case Fifth:
		return "fifth"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func ValidKey(key int) bool {
	return key >= MinKey && key <= MaxKey
}

func ValidInversion(n int) bool {
	return n >= 0 && n <= 2
}

// SharpCount returns the number of sharps in the key signature at key.
func SharpCount(key int) int { return sharpsPerKey[key] }

// FlatCount returns the number of flats in the key signature at key.
func FlatCount(key int) int { return flatsPerKey[key] }

// Accidentals returns the number of sharps or flats in the key signature at key.
func Accidentals(key int) int { return sharpsPerKey[key] + flatsPerKey[key] }

// ApplyAccidental returns the name of the base note at offset (0 = C ... 6 = B)
// within key, e.g. ApplyAccidental(9, 0) is "C♯" in A major.
func ApplyAccidental(key, offset int) string {
	name := baseNotes[offset]
	if contains(sharpOrder[:sharpsPerKey[key]], offset) {
		name += SharpSymbol
	}
	if contains(flatOrder[:flatsPerKey[key]], offset) {
		name += FlatSymbol
	}
	return name
}

// AddNote returns the name of the note steps diatonic steps above offset in key.
// The third above A in A major is AddNote(9, 5, 2) = "C♯".
func AddNote(key, offset, steps int) string {
	return ApplyAccidental(key, (offset+steps)%7)
}

// Triad returns the root position triad of the tonic of key in mode.
func Triad(key int, mode Mode) Chord {
	root := tonic(key, mode)
	return Chord{
		ApplyAccidental(key, root),
		AddNote(key, root, 2),
		AddNote(key, root, 4),
	}
}

// KeyRoot returns the name of the tonic of key in mode, e.g. "E♭" for (0, Minor).
func KeyRoot(key int, mode Mode) string {
	return ApplyAccidental(key, tonic(key, mode))
}

// Scale returns the seven diatonic notes of key ordered by letter, starting at C.
func Scale(key int) [7]string {
	var scale [7]string
	for offset := range scale {
		scale[offset] = ApplyAccidental(key, offset)
	}
	return scale
}

// Inversion returns the n-th inversion of seq as a new array: n left rotations,
// taken modulo 3 so that negative n cycles backwards.
//
//	Inversion(1, Chord{"C", "E", "G"}) // {"E", "G", "C"}
//	Inversion(2, Chord{"C", "E", "G"}) // {"G", "C", "E"}
//
// The same rotation applied to Roles keeps role labels aligned with notes.
func Inversion[T any](n int, seq [3]T) [3]T {
	shift := ((n % 3) + 3) % 3
	var out [3]T
	for i := range seq {
		out[i] = seq[(i+shift)%3]
	}
	return out
}

func tonic(key int, mode Mode) int {
	if mode == Minor {
		return minorBaseNote[key]
	}
	return majorBaseNote[key]
}

func contains(offsets []int, offset int) bool {
	for _, o := range offsets {
		if o == offset {
			return true
		}
	}
	return false
}
