package qmk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegafresh/qmkmap/internal/layout"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		lvl      layout.Level
		expected string
	}{
		{0, "KC_A"},
		{1, "S(KC_A)"},
		{2, "RALT(KC_A)"},
		{3, "S(RALT(KC_A))"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Wrap("KC_A", tt.lvl))
	}
}

func TestModifierLabel(t *testing.T) {
	assert.Equal(t, "", ModifierLabel(0))
	assert.Equal(t, "Shift", ModifierLabel(1))
	assert.Equal(t, "AltGr", ModifierLabel(2))
	assert.Equal(t, "Shift+AltGr", ModifierLabel(3))
}

func TestUnknownMarker(t *testing.T) {
	expr := UnknownBase("guillemotleft")
	assert.Equal(t, "<KC_UNKNOWN:sym=guillemotleft>", expr)
	assert.True(t, IsUnknown(expr))
	assert.False(t, IsUnknown("KC_A"))

	sym, ok := SymbolFromUnknown(expr)
	require.True(t, ok)
	assert.Equal(t, "guillemotleft", sym)

	// The symbol survives modifier wrapping.
	sym, ok = SymbolFromUnknown(Wrap(expr, 3))
	require.True(t, ok)
	assert.Equal(t, "guillemotleft", sym)

	_, ok = SymbolFromUnknown("S(KC_1)")
	assert.False(t, ok)
}

func TestUnknownBaseEmptySymbol(t *testing.T) {
	assert.Equal(t, "<KC_UNKNOWN:sym=NoSymbol>", UnknownBase(""))
}

func TestBaseHypothesis(t *testing.T) {
	tests := []struct {
		name     string
		occ      layout.Occurrence
		expected string
	}{
		{
			name:     "letter names its own key",
			occ:      layout.Occurrence{Level: 1, Symbol: "A", Row: layout.Row{"a", "A", "NoSymbol", "NoSymbol"}},
			expected: "KC_A",
		},
		{
			name:     "digit names its own key",
			occ:      layout.Occurrence{Level: 0, Symbol: "1", Row: layout.Row{"1", "exclam", "NoSymbol", "NoSymbol"}},
			expected: "KC_1",
		},
		{
			name:     "keysym table covers the ES semicolon position",
			occ:      layout.Occurrence{Level: 0, Symbol: "ntilde", Row: layout.Row{"ntilde", "Ntilde", "asciitilde", "NoSymbol"}},
			expected: "KC_SCLN",
		},
		{
			name:     "preferred label rescues an untabled base",
			occ:      layout.Occurrence{Level: 2, Symbol: "bar", Row: layout.Row{"onehalf", "1", "bar", "NoSymbol"}},
			expected: "KC_1",
		},
		{
			name:     "unknown marker as terminal stage",
			occ:      layout.Occurrence{Level: 0, Symbol: "Escape", Row: layout.Row{"Escape", "NoSymbol", "NoSymbol", "NoSymbol"}},
			expected: "<KC_UNKNOWN:sym=Escape>",
		},
		{
			name:     "NoSymbol base falls back to the occurrence symbol",
			occ:      layout.Occurrence{Level: 1, Symbol: "x", Row: layout.Row{"NoSymbol", "x", "NoSymbol", "NoSymbol"}},
			expected: "KC_X",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseHypothesis(tt.occ))
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		char     string
		key      string
		shift    bool
		altgr    bool
		expected string
	}{
		{"plain letter", "a", "a", false, false, "KC_A"},
		{"shifted letter", "A", "A", true, false, "S(KC_A)"},
		{"digit", "7", "7", false, false, "KC_7"},
		{"punctuation from char table", ";", "semicolon", false, false, "KC_SCLN"},
		{"shifted punctuation without base", ":", "colon", true, false, "S(<KC_UNKNOWN:sym=:>)"},
		{"uppercase falls back to lowercase key", "Z", "Z", true, false, "S(KC_Z)"},
		{"spanish override carries its own modifiers", "ñ", "ntilde", false, false, "KC_SCLN"},
		{"shifted spanish override not double wrapped", "Ñ", "Ntilde", true, false, "S(KC_SCLN)"},
		{"altgr spanish override not double wrapped", "¿", "questiondown", false, true, "RALT(KC_SLASH)"},
		{"no char uses key name in marker", "", "KEY_SEMICOLON", false, true, "RALT(<KC_UNKNOWN:sym=KEY_SEMICOLON>)"},
		{"shift and altgr wrap order", "a", "a", true, true, "S(RALT(KC_A))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.char, tt.key, tt.shift, tt.altgr))
		})
	}
}
