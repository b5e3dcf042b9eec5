package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodegafresh/qmkmap/internal/layout"
)

func TestCombo(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{"no modifiers", Event{}, "—"},
		{"shift only", Event{Shift: true}, "Shift"},
		{"altgr labeled", Event{AltR: true}, "Alt_R (AltGr)"},
		{"combined order", Event{Shift: true, Ctrl: true, AltR: true}, "Shift+Ctrl+Alt_R (AltGr)"},
		{"left alt separate", Event{AltL: true, Super: true}, "Alt_L+Super"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Combo())
		})
	}
}

func TestSuggestion(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "symbolic backend with character",
			event:    Event{Source: SourceX11, Key: "a", Char: "a"},
			expected: "KC_A",
		},
		{
			name:     "shifted character",
			event:    Event{Source: SourceX11, Key: "A", Char: "A", Shift: true},
			expected: "S(KC_A)",
		},
		{
			name:     "altgr character without base keeps the marker",
			event:    Event{Source: SourceX11, Key: "at", Char: "@", AltR: true},
			expected: "RALT(<KC_UNKNOWN:sym=@>)",
		},
		{
			name:     "raw backend has no character",
			event:    Event{Source: SourceEvdev, Key: "KEY_Q", Shift: true},
			expected: "S(<KC_UNKNOWN:sym=KEY_Q>)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Suggestion())
		})
	}
}

func TestSymbolAt(t *testing.T) {
	row := layout.Row{"2", "quotedbl", "at", "NoSymbol"}
	tests := []struct {
		name     string
		shift    bool
		altgr    bool
		expected string
	}{
		{"bare", false, false, "2"},
		{"shift", true, false, "quotedbl"},
		{"altgr", false, true, "at"},
		{"empty slot falls back to level 0", true, true, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, symbolAt(row, tt.shift, tt.altgr))
		})
	}
}
