// Package layout models the active OS keyboard layout: per-key symbol
// rows acquired from xmodmap, keysym classification, and the reverse
// index from characters to the key/level combinations producing them.
package layout

import (
	"strings"
	"unicode/utf8"
)

// NoSymbol is the sentinel padding layout rows where a level produces
// nothing. Rows always carry exactly Levels entries.
const NoSymbol = "NoSymbol"

// deadPrefix marks keysyms that modify the following keystroke instead
// of producing output themselves.
const deadPrefix = "dead_"

// CharClass is the outcome of resolving a keysym to a character.
type CharClass int

const (
	// CharPlain resolves to exactly one displayable character.
	CharPlain CharClass = iota
	// CharDead is a combining keysym; it produces no character alone.
	CharDead
	// CharUnknown is a multi-rune keysym with no table entry.
	CharUnknown
)

// keysymToChar translates keysym names that X reports symbolically into
// their displayable character.
var keysymToChar = map[string]string{
	"parenleft": "(", "parenright": ")",
	"bracketleft": "[", "bracketright": "]",
	"braceleft": "{", "braceright": "}",
	"less": "<", "greater": ">",
	"slash": "/", "backslash": "\\", "bar": "|",
	"asciitilde": "~", "asciicircum": "^", "grave": "`",
	"at": "@", "numbersign": "#", "dollar": "$",
	"percent": "%", "ampersand": "&", "asterisk": "*",
	"minus": "-", "underscore": "_",
	"equal": "=", "plus": "+",
	"semicolon": ";", "colon": ":",
	"quotedbl": "\"", "apostrophe": "'",
	"comma": ",", "period": ".",
	"question": "?", "exclam": "!",
	"exclamdown": "¡", "questiondown": "¿",
	"degree": "°", "notsign": "¬",
	"space": " ",
	"ntilde": "ñ", "Ntilde": "Ñ",
}

// standaloneDead maps the dead keysyms that are also usable as bare
// characters when pressed on their own. They stay dead for
// classification; the reverse index merges these in a post-pass so the
// accent keys remain reachable as plain punctuation.
var standaloneDead = map[string]string{
	"dead_grave": "`",
	"dead_acute": "´",
	"dead_tilde": "~",
}

// IsDead reports whether sym is a dead (combining) keysym.
func IsDead(sym string) bool {
	return strings.HasPrefix(sym, deadPrefix)
}

// ResolveChar resolves a keysym name to a displayable character.
// Dead keysyms classify as CharDead and carry no character, so callers
// decide the inclusion policy. A single-rune keysym with no table entry
// is the character itself.
func ResolveChar(sym string) (string, CharClass) {
	if IsDead(sym) {
		return "", CharDead
	}
	if ch, ok := keysymToChar[sym]; ok {
		return ch, CharPlain
	}
	if utf8.RuneCountInString(sym) == 1 {
		return sym, CharPlain
	}
	return "", CharUnknown
}

// StandaloneDeadChar returns the bare character for a dead keysym that
// is usable standalone, if it has one.
func StandaloneDeadChar(sym string) (string, bool) {
	ch, ok := standaloneDead[sym]
	return ch, ok
}

// PreferredLabel picks a human-readable label for a key: the first
// level (0 to 3) whose keysym resolves to a non-dead character. It
// deliberately ignores which level is cheapest to press; it only wants
// something printable. Falls back to the raw level-0 keysym.
func PreferredLabel(row Row) string {
	for _, sym := range row {
		if sym == NoSymbol {
			continue
		}
		if ch, class := ResolveChar(sym); class == CharPlain {
			return ch
		}
	}
	if ch, class := ResolveChar(row[0]); class == CharPlain {
		return ch
	}
	return row[0]
}
