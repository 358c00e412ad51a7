// Package naming translates keys, notes and inversions into the labels shown to the user.
package naming

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/theory"
)

// Translator labels the elements of a chord in one language.
type Translator interface {
	// Suffix follows the root name of a key, ex: " major" or "-Dur".
	Suffix(mode theory.Mode) string
	// NoteLabel is the localized name of a note, as the tonic of a key in mode.
	NoteLabel(note string, mode theory.Mode) string
	InversionLabel(n int) string
}

type locale struct {
	suffix         map[theory.Mode]string
	lowerCaseMinor bool
	translate      func(string) string
	inversions     [3]string
}

const (
	English = "english"
	German  = "german"
)

var locales = map[string]locale{
	English: {
		suffix:     map[theory.Mode]string{theory.Major: " major", theory.Minor: " minor"},
		translate:  func(name string) string { return name },
		inversions: [3]string{"root position", "first inversion", "second inversion"},
	},
	German: {
		suffix:         map[theory.Mode]string{theory.Major: "-Dur", theory.Minor: "-Moll"},
		lowerCaseMinor: true,
		translate:      germanName,
		inversions:     [3]string{"Grundstellung", "Sextakkord", "Quartsextakkord"},
	},
}

// Lookup returns the translator for lang, ex: "english".
func Lookup(lang string) (Translator, error) {
	l, ok := locales[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", rmxerr.ErrUnknownLanguage, lang)
	}
	return l, nil
}

// Languages lists the supported languages in alphabetical order.
func Languages() []string {
	out := make([]string, 0, len(locales))
	for lang := range locales {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func (l locale) Suffix(mode theory.Mode) string {
	return l.suffix[mode]
}

func (l locale) NoteLabel(note string, mode theory.Mode) string {
	name := l.translate(note)
	if l.lowerCaseMinor && mode == theory.Minor {
		name = strings.ToLower(name)
	}
	return name
}

func (l locale) InversionLabel(n int) string {
	if !theory.ValidInversion(n) {
		return fmt.Sprintf("inversion %d", n)
	}
	return l.inversions[n]
}

// KeyLabel names the key at position key in mode, ex: "E♭ minor" or "e♭-Moll".
func KeyLabel(t Translator, key int, mode theory.Mode) string {
	return t.NoteLabel(theory.KeyRoot(key, mode), mode) + t.Suffix(mode)
}

// germanName spells B as H and B♭ as B.
func germanName(name string) string {
	name = strings.Replace(name, "B", "H", 1)
	return strings.Replace(name, "H"+theory.FlatSymbol, "B", 1)
}
