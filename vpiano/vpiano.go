// Package vpiano models the physical keys of a piano keyboard and maps
// spelled note names onto them.
package vpiano

import (
	"strings"

	"github.com/rapidmidiex/rmxchords/theory"
)

type (
	Note struct {
		// MIDI note number, based on C4=60
		MIDI int
		// Key within the octave, 0 = C ... 11 = B.
		Index int
		// Name of the key, ex: "C", "C♯/D♭"
		Name string
		// Denotes if note is sharp/flat ie. "black" key.
		IsAccidental bool
	}

	Notes []Note

	Octave int
)

const (
	Cneg2 Octave = iota - 2
	Cneg1
	C0
	C1
	C2
	C3
	C4
	C5
	C6
	C7
)

const OctaveLen = 12

// KeyboardOctaves is how many octaves the trainer keyboard spans.
const KeyboardOctaves = 2

const (
	flat   = theory.FlatSymbol
	sharp  = theory.SharpSymbol
	dflat  = theory.DoubleFlatSymbol
	dsharp = theory.DoubleSharpSymbol
)

var (
	// Every spelling of each of the twelve keys of an octave, starting at C.
	keysToNotes = [OctaveLen][]string{
		/*0*/ {"B" + sharp, "C", "D" + dflat},
		/*1*/ {"B" + dsharp, "C" + sharp, "D" + flat},
		/*2*/ {"C" + dsharp, "D", "E" + dflat},
		/*3*/ {"D" + sharp, "E" + flat, "F" + dflat},
		/*4*/ {"D" + dsharp, "E", "F" + flat},
		/*5*/ {"E" + sharp, "F", "G" + dflat},
		/*6*/ {"E" + dsharp, "F" + sharp, "G" + flat},
		/*7*/ {"F" + dsharp, "G", "A" + dflat},
		/*8*/ {"G" + sharp, "A" + flat},
		/*9*/ {"G" + dsharp, "A", "B" + dflat},
		/*10*/ {"A" + sharp, "B" + flat, "C" + dflat},
		/*11*/ {"A" + dsharp, "B", "C" + flat},
	}

	blackKeys = [OctaveLen]bool{1: true, 3: true, 6: true, 8: true, 10: true}
)

// KeyIndex returns the key within the octave the note name is played on.
func KeyIndex(name string) (int, bool) {
	for i, spellings := range keysToNotes {
		for _, s := range spellings {
			if s == name {
				return i, true
			}
		}
	}
	return 0, false
}

// NoteNamesToKeyIndices returns the keys that represent the given note names,
// in input order. Names that match no key are skipped.
//
//	["C", "E♭", "G"]  -> [0, 3, 7]
//	["G♭", "B♭", "D♭"] -> [6, 10, 1]
//	["F♯", "A♯", "C♯"] -> [6, 10, 1]
func NoteNamesToKeyIndices(names []string) []int {
	indices := make([]int, 0, len(names))
	for _, name := range names {
		if i, ok := KeyIndex(name); ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// MakeKeyboard creates the keys of n octaves starting at the C of the given octave, lowest first.
func MakeKeyboard(start Octave, n int) Notes {
	// MIDI number for C0
	midiC0 := 12
	notes := make(Notes, 0, n*OctaveLen)

	for i := 0; i < n*OctaveLen; i++ {
		idx := i % OctaveLen
		notes = append(notes, Note{
			MIDI:         midiC0 + (OctaveLen * int(start)) + i,
			Index:        idx,
			Name:         keyName(idx),
			IsAccidental: blackKeys[idx],
		})
	}

	return notes
}

// Place walks the keyboard from low to high and returns the position of the
// key each index is drawn on: the first matching key above the previous one.
// Indices that do not fit on the keyboard are dropped.
func (notes Notes) Place(keyIndices []int) []int {
	positions := make([]int, 0, len(keyIndices))
	next := 0
	for pos, n := range notes {
		if next == len(keyIndices) {
			break
		}
		if n.Index == keyIndices[next] {
			positions = append(positions, pos)
			next++
		}
	}
	return positions
}

// InRange reports whether midiNum is a key of an 88-key piano or above.
func InRange(midiNum int) bool {
	return midiNum > 20 && midiNum < 128
}

// keyName joins the single-accidental spellings of a key, ex: "C♯/D♭".
func keyName(index int) string {
	names := make([]string, 0, 2)
	for _, s := range keysToNotes[index] {
		if strings.Contains(s, dsharp) || strings.Contains(s, dflat) {
			continue
		}
		if blackKeys[index] || (!strings.Contains(s, sharp) && !strings.Contains(s, flat)) {
			names = append(names, s)
		}
	}
	return strings.Join(names, "/")
}
