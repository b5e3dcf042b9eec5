// Package capture normalizes live key events from the two capture
// backends (focus-scoped X11 and global evdev) into one event model
// feeding the shared keycode suggestion.
package capture

import (
	"strings"

	"github.com/bodegafresh/qmkmap/internal/qmk"
)

// Source tags which backend produced an event.
type Source string

const (
	SourceX11   Source = "XKB"
	SourceEvdev Source = "evdev"
)

// Event is one normalized key press, or a backend diagnostic. Modifier
// flags are a snapshot of the owning backend's rolling state at press
// time.
type Event struct {
	Source Source
	Key    string // keysym name or evdev scancode name
	Char   string // resolved character; empty when the backend has no symbol layer
	Shift  bool
	AltL   bool
	AltR   bool
	Ctrl   bool
	Meta   bool
	Super  bool
	// Comment carries free-form diagnostics (keycode, scancode); for
	// Err events it carries the error text.
	Comment string
	Err     bool
}

// AltGr reports whether the secondary modifier was held. On Linux this
// is Right Alt or a dedicated level-3 shift key.
func (e Event) AltGr() bool {
	return e.AltR
}

// Combo renders the human modifier combination, em dash when none.
func (e Event) Combo() string {
	var mods []string
	if e.Shift {
		mods = append(mods, "Shift")
	}
	if e.Ctrl {
		mods = append(mods, "Ctrl")
	}
	if e.AltL {
		mods = append(mods, "Alt_L")
	}
	if e.AltR {
		mods = append(mods, "Alt_R (AltGr)")
	}
	if e.Meta {
		mods = append(mods, "Meta")
	}
	if e.Super {
		mods = append(mods, "Super")
	}
	if len(mods) == 0 {
		return "—"
	}
	return strings.Join(mods, "+")
}

// Suggestion derives the QMK expression for this event through the
// shared suggestion contract.
func (e Event) Suggestion() string {
	return qmk.Suggest(e.Char, e.Key, e.Shift, e.AltGr())
}
