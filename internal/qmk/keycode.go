// Package qmk derives QMK keycode expressions: from static layout
// occurrences on the table-resolution path, and from live key events on
// the inspector path. Both reduce to the same base-keycode tables and
// the same Shift/AltGr wrapping rule.
package qmk

import (
	"strings"

	"github.com/bodegafresh/qmkmap/internal/layout"
)

// baseKeysymToKC maps level-0 keysyms to the KC_ code of the physical
// key. QMK keycodes name key positions, so these follow the ANSI/ISO
// base placement; ntilde covers the ES/LatAm semicolon position.
var baseKeysymToKC = map[string]string{
	"ntilde":       "KC_SCLN",
	"minus":        "KC_MINS",
	"equal":        "KC_EQL",
	"bracketleft":  "KC_LBRC",
	"bracketright": "KC_RBRC",
	"backslash":    "KC_BSLS",
	"slash":        "KC_SLSH",
	"semicolon":    "KC_SCLN",
	"apostrophe":   "KC_QUOT",
	"comma":        "KC_COMM",
	"period":       "KC_DOT",
	"grave":        "KC_GRV",
	"space":        "KC_SPC",
}

// charToKC maps characters to the KC_ code of the physical key that
// produces them on the base placement. Letters and digits are handled
// by the direct rule instead.
var charToKC = map[string]string{
	"-":  "KC_MINS",
	"=":  "KC_EQL",
	"[":  "KC_LBRC",
	"]":  "KC_RBRC",
	"\\": "KC_BSLS",
	";":  "KC_SCLN",
	"'":  "KC_QUOT",
	",":  "KC_COMM",
	".":  "KC_DOT",
	"/":  "KC_SLSH",
	"`":  "KC_GRV",
	" ":  "KC_SPC",
}

// spanishOverrides maps characters whose physical key differs on
// ES/LatAm layouts to a ready-made base expression.
var spanishOverrides = map[string]string{
	"ñ": "KC_SCLN",
	"Ñ": "S(KC_SCLN)",
	"¡": "S(KC_1)",
	"¿": "RALT(KC_SLASH)",
}

const (
	unknownPrefix = "<KC_UNKNOWN:sym="
	unknownSuffix = ">"
)

// UnknownBase builds the marker for a symbol with no derivable KC_
// code. The marker always carries the offending symbol so consumers
// can find and patch it by hand instead of receiving a wrong keycode.
func UnknownBase(sym string) string {
	if sym == "" {
		sym = layout.NoSymbol
	}
	return unknownPrefix + sym + unknownSuffix
}

// IsUnknown reports whether expr contains an unknown-base marker.
func IsUnknown(expr string) bool {
	return strings.Contains(expr, unknownPrefix)
}

// SymbolFromUnknown extracts the symbol back out of an unknown-base
// marker, possibly wrapped in modifier compositions.
func SymbolFromUnknown(expr string) (string, bool) {
	start := strings.Index(expr, unknownPrefix)
	if start < 0 {
		return "", false
	}
	rest := expr[start+len(unknownPrefix):]
	end := strings.Index(rest, unknownSuffix)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// ModifierLabel is the human combination label for a level.
func ModifierLabel(lvl layout.Level) string {
	switch lvl {
	case 1:
		return "Shift"
	case 2:
		return "AltGr"
	case 3:
		return "Shift+AltGr"
	default:
		return ""
	}
}

// Wrap composes the final expression for a base keycode at a level:
// the firmware presses the physical key and applies the modifiers as a
// wrapping transform.
func Wrap(base string, lvl layout.Level) string {
	switch lvl {
	case 1:
		return "S(" + base + ")"
	case 2:
		return "RALT(" + base + ")"
	case 3:
		return "S(RALT(" + base + "))"
	default:
		return base
	}
}

func wrapFlags(base string, shift, altgr bool) string {
	switch {
	case shift && altgr:
		return "S(RALT(" + base + "))"
	case altgr:
		return "RALT(" + base + ")"
	case shift:
		return "S(" + base + ")"
	default:
		return base
	}
}

// kcFromRune applies the direct letter/digit rule: a single ASCII
// letter or digit names its own key.
func kcFromRune(s string) string {
	if len(s) != 1 {
		return ""
	}
	c := s[0]
	switch {
	case c >= 'a' && c <= 'z':
		return "KC_" + strings.ToUpper(s)
	case c >= 'A' && c <= 'Z':
		return "KC_" + s
	case c >= '0' && c <= '9':
		return "KC_" + s
	}
	return ""
}

// BaseHypothesis derives the physical KC_ code for an occurrence,
// seeded from the owning key's level-0 keysym (modifiers are applied by
// wrapping, not by choosing a different key). Stages: direct
// letter/digit rule, fixed keysym table, then the preferred-label
// heuristic; the terminal stage is the explicit unknown marker.
func BaseHypothesis(occ layout.Occurrence) string {
	base := occ.Row[0]
	if base == layout.NoSymbol {
		base = occ.Symbol
	}
	if kc := kcFromRune(base); kc != "" {
		return kc
	}
	if kc, ok := baseKeysymToKC[base]; ok {
		return kc
	}
	if kc := kcFromRune(layout.PreferredLabel(occ.Row)); kc != "" {
		return kc
	}
	return UnknownBase(base)
}

// Suggest derives a keycode expression from a live event: the resolved
// character when the backend has one, plus the observed Shift/AltGr
// flags. key annotates the unknown marker when no base can be derived
// (the raw-scancode backend has no symbol layer at all). This is the
// single contract both capture backends and the static resolver reduce
// to.
func Suggest(char, key string, shift, altgr bool) string {
	// Overrides are complete expressions; the observed modifiers are the
	// ones baked into them, so no further wrapping.
	if expr, ok := spanishOverrides[char]; ok {
		return expr
	}
	var base string
	if char != "" {
		base = kcFromRune(char)
		if base == "" {
			base = charToKC[char]
		}
		if base == "" {
			// Same physical key as the lowercase letter.
			if low := strings.ToLower(char); low != char {
				base = kcFromRune(low)
			}
		}
	}
	if base == "" {
		seed := char
		if seed == "" {
			seed = key
		}
		base = UnknownBase(seed)
	}
	return wrapFlags(base, shift, altgr)
}
